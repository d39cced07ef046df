package lottery

import (
	"math/rand/v2"
	"slices"
	"sync"
	"time"
)

// Generator는 최근 당첨번호 빈도를 가중치로 추천 번호를 생성합니다
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator는 현재 시각을 시드로 생성기를 만듭니다
func NewGenerator() *Generator {
	seed := uint64(time.Now().UnixNano())
	return NewGeneratorWithSeed(seed, seed>>32)
}

// NewGeneratorWithSeed는 고정 시드 생성기를 만듭니다
func NewGeneratorWithSeed(seed1, seed2 uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Generate는 history의 최근 HistoryWindow 회차를 기준으로 games 게임을 생성합니다.
// 생성된 게임은 다음 게임 생성 시 윈도우 끝에 추가됩니다.
func (g *Generator) Generate(history [][]int, games int) [][]int {
	g.mu.Lock()
	defer g.mu.Unlock()

	start := max(0, len(history)-HistoryWindow)
	window := slices.Clone(history[start:])

	result := make([][]int, 0, games)
	for i := 0; i < games; i++ {
		numbers := g.predict(window)
		result = append(result, numbers)

		if len(window) >= HistoryWindow {
			window = window[1:]
		}
		window = append(window, numbers)
	}

	return result
}

// predict는 빈도 가중치로 6개를 뽑고(중복 허용) 중복 제거 후 채웁니다
func (g *Generator) predict(window [][]int) []int {
	var weights [MaxNumber + 1]int
	total := 0
	for n := MinNumber; n <= MaxNumber; n++ {
		weights[n] = 1
		total++
	}
	for _, draw := range window {
		for _, n := range draw {
			n = clamp(n)
			weights[n]++
			total++
		}
	}

	picks := make([]int, 0, NumbersPerGame)
	for len(picks) < NumbersPerGame {
		r := g.rng.IntN(total)
		for n := MinNumber; n <= MaxNumber; n++ {
			r -= weights[n]
			if r < 0 {
				picks = append(picks, n)
				break
			}
		}
	}

	return g.fillUnique(picks)
}

// fillUnique는 중복을 제거하고 부족한 개수를 무작위 번호로 채운 뒤 정렬합니다
func (g *Generator) fillUnique(numbers []int) []int {
	unique := make([]int, 0, NumbersPerGame)
	for _, n := range numbers {
		if !slices.Contains(unique, n) {
			unique = append(unique, n)
		}
	}

	for len(unique) < NumbersPerGame {
		n := g.rng.IntN(MaxNumber) + MinNumber
		if !slices.Contains(unique, n) {
			unique = append(unique, n)
		}
	}

	slices.Sort(unique)
	return unique
}

func clamp(n int) int {
	return min(max(n, MinNumber), MaxNumber)
}
