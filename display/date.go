package display

import (
	"fmt"
	"time"
)

// DateLayout은 추첨일 표시 형식(YYYY-MM-DD)입니다
const DateLayout = "2006-01-02"

// NextDrawDate는 now 기준으로 다가오는 토요일(추첨일)을 반환합니다.
// now가 토요일이면 같은 날을 반환합니다.
func NextDrawDate(now time.Time) time.Time {
	diff := int(time.Saturday - now.Weekday())
	y, m, d := now.Date()
	return time.Date(y, m, d+diff, 0, 0, 0, 0, now.Location())
}

// FormatDrawDate는 추첨일을 YYYY-MM-DD 형식으로 변환합니다
func FormatDrawDate(t time.Time) string {
	return t.Format(DateLayout)
}

// InfoText는 "<회차> (<추첨일>)" 형식의 라벨을 만듭니다
func InfoText(roundLabel string, drawDate time.Time) string {
	return fmt.Sprintf("%s (%s)", roundLabel, FormatDrawDate(drawDate))
}
