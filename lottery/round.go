package lottery

import "time"

// FirstDrawDate는 로또 6/45 1회 추첨일입니다
var FirstDrawDate = time.Date(2002, time.December, 7, 0, 0, 0, 0, time.UTC)

// RoundForDate는 추첨일(토요일)의 회차를 계산합니다. 1회 이전 날짜는 0을 반환합니다.
// 추첨이 매주 토요일 빠짐없이 진행되었다고 가정합니다.
func RoundForDate(drawDate time.Time) int {
	y, m, d := drawDate.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if day.Before(FirstDrawDate) {
		return 0
	}
	days := int(day.Sub(FirstDrawDate).Hours() / 24)
	return days/7 + 1
}
