package lottery

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

// DefaultHistoryFile은 과거 당첨번호 파일 경로입니다 (한 줄에 "1,2,3,4,5,6")
const DefaultHistoryFile = "lotto_numbers.txt"

// LoadHistory는 과거 당첨번호를 오래된 순서대로 읽습니다. 파일이 없으면 빈 목록을 반환합니다
func LoadHistory(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("당첨번호 파일 열기 실패: %w", err)
	}
	defer f.Close()

	var history [][]int
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		draw, err := parseDraw(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		history = append(history, draw)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("당첨번호 파일 읽기 실패: %w", err)
	}

	return history, nil
}

func parseDraw(text string) ([]int, error) {
	parts := strings.Split(text, ",")
	draw := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("번호 파싱 실패 %q: %w", p, err)
		}
		draw = append(draw, n)
	}
	return draw, nil
}

func formatDraw(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// AppendResult는 당첨번호를 파일 끝에 추가합니다.
// 마지막 줄이 같은 번호면 추가하지 않고 false를 반환합니다
func AppendResult(path string, result *LottoResult) (bool, error) {
	history, err := LoadHistory(path)
	if err != nil {
		return false, err
	}

	if len(history) > 0 && slices.Equal(history[len(history)-1], result.Numbers) {
		return false, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return false, fmt.Errorf("당첨번호 파일 열기 실패: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, formatDraw(result.Numbers)); err != nil {
		return false, fmt.Errorf("당첨번호 저장 실패: %w", err)
	}

	return true, nil
}
