package lottery

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"lottodisplay/logger"
)

// DefaultGenerationFile은 생성 내역 저장 경로입니다
const DefaultGenerationFile = "logs/last_generation.json"

// maxSavedGames는 한 회차에 보관하는 최대 게임 수입니다
const maxSavedGames = 50

// generationMu는 생성 내역 파일의 읽기-수정-쓰기를 직렬화합니다
var generationMu sync.Mutex

// GenerationHistory는 회차별로 생성한 추천 번호를 관리하는 구조체
type GenerationHistory struct {
	Round       string          `json:"round"`       // 회차
	GeneratedAt string          `json:"generatedAt"` // 마지막 생성 시각
	Games       []GeneratedGame `json:"games"`       // 생성된 게임들
}

// GeneratedGame은 게임별 추천 번호
type GeneratedGame struct {
	Type    string `json:"type"`    // A, B, C, D, E
	Numbers []int  `json:"numbers"` // 추천 번호들
}

// SaveGeneration은 생성한 게임을 회차 내역에 추가합니다.
// 저장된 회차와 다르면 새로 시작합니다
func SaveGeneration(path, round, generatedAt string, games [][]int) error {
	generationMu.Lock()
	defer generationMu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("디렉토리 생성 실패: %w", err)
	}

	history := &GenerationHistory{Round: round}

	// 기존 파일이 있으면 읽기
	existing, err := GetLastGeneration(path)
	switch {
	case err != nil:
		logger.Warning("⚠️  기존 생성 내역을 읽지 못해 새로 시작합니다: %v", err)
	case existing != nil && existing.Round == round:
		history = existing
	}

	history.GeneratedAt = generatedAt
	for i, numbers := range games {
		history.Games = append(history.Games, GeneratedGame{
			Type:    string(rune('A' + i%GamesPerDraw)),
			Numbers: numbers,
		})
	}
	if n := len(history.Games); n > maxSavedGames {
		history.Games = history.Games[n-maxSavedGames:]
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON 마샬링 실패: %w", err)
	}

	return writeFileAtomic(path, data)
}

// writeFileAtomic은 같은 디렉토리의 임시 파일에 쓴 뒤 rename으로 교체합니다
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("임시 파일 생성 실패: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("파일 저장 실패: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("파일 저장 실패: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("파일 권한 설정 실패: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("파일 교체 실패: %w", err)
	}
	return nil
}

// GetLastGeneration은 마지막 생성 내역을 읽어옵니다. 파일이 없으면 nil을 반환합니다
func GetLastGeneration(path string) (*GenerationHistory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("파일 읽기 실패: %w", err)
	}

	var history GenerationHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("JSON 파싱 실패: %w", err)
	}

	return &history, nil
}
