package lottery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"lottodisplay/logger"
)

// LottoResult는 당첨 결과 정보
type LottoResult struct {
	Round       string // 회차 (예: "1206")
	DrawDate    string // 추첨일 (예: "2026-01-10")
	Numbers     []int  // 당첨번호 6개
	BonusNumber int    // 보너스번호
}

// GetLatestResult는 최근 당첨번호를 가져옵니다
func (c *Client) GetLatestResult(ctx context.Context) (*LottoResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ResultURL, nil)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", "https://www.dhlottery.co.kr/")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API 호출 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API 응답 오류 (상태: %d)", resp.StatusCode)
	}

	var apiResponse struct {
		Data struct {
			List []struct {
				LtEpsd   int    `json:"ltEpsd"`   // 회차
				LtRflYmd string `json:"ltRflYmd"` // 추첨일 (YYYYMMDD)
				Tm1WnNo  int    `json:"tm1WnNo"`  // 당첨번호 1
				Tm2WnNo  int    `json:"tm2WnNo"`  // 당첨번호 2
				Tm3WnNo  int    `json:"tm3WnNo"`  // 당첨번호 3
				Tm4WnNo  int    `json:"tm4WnNo"`  // 당첨번호 4
				Tm5WnNo  int    `json:"tm5WnNo"`  // 당첨번호 5
				Tm6WnNo  int    `json:"tm6WnNo"`  // 당첨번호 6
				BnsWnNo  int    `json:"bnsWnNo"`  // 보너스번호
			} `json:"list"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("JSON 파싱 실패: %w", err)
	}

	if len(apiResponse.Data.List) == 0 {
		return nil, fmt.Errorf("당첨 정보가 없습니다")
	}

	data := apiResponse.Data.List[0]

	// 날짜 포맷 변환 (YYYYMMDD -> YYYY-MM-DD)
	dateStr := data.LtRflYmd
	if len(dateStr) == 8 {
		dateStr = fmt.Sprintf("%s-%s-%s", dateStr[0:4], dateStr[4:6], dateStr[6:8])
	}

	result := &LottoResult{
		Round:       strconv.Itoa(data.LtEpsd),
		DrawDate:    dateStr,
		Numbers:     []int{data.Tm1WnNo, data.Tm2WnNo, data.Tm3WnNo, data.Tm4WnNo, data.Tm5WnNo, data.Tm6WnNo},
		BonusNumber: data.BnsWnNo,
	}

	logger.Info("✅ 당첨번호 조회 완료: %s회 (%s)", result.Round, result.DrawDate)
	logger.Info("   당첨번호: %v, 보너스: %d", result.Numbers, result.BonusNumber)

	return result, nil
}

// CheckWinning은 추천 번호와 당첨번호를 비교하여 등수를 판정합니다
func CheckWinning(numbers []int, result *LottoResult) (rank int, matchCount int, hasBonus bool) {
	for _, n := range numbers {
		if slices.Contains(result.Numbers, n) {
			matchCount++
		}
	}
	hasBonus = slices.Contains(numbers, result.BonusNumber)

	// 등수 판정
	switch matchCount {
	case 6:
		rank = 1
	case 5:
		if hasBonus {
			rank = 2
		} else {
			rank = 3
		}
	case 4:
		rank = 4
	case 3:
		rank = 5
	default:
		rank = 0 // 낙첨
	}

	return rank, matchCount, hasBonus
}

// FormatWinningMessage는 생성 내역의 당첨 결과 메시지를 포맷합니다
func FormatWinningMessage(result *LottoResult, history *GenerationHistory) string {
	if history == nil || len(history.Games) == 0 {
		return "ℹ️ <b>당첨 확인 불가</b>\n\n저장된 추천 번호가 없습니다."
	}

	if history.Round != result.Round {
		return fmt.Sprintf("ℹ️ <b>당첨 확인 불가</b>\n\n추천 회차(%s회)와 추첨 회차(%s회)가 다릅니다.",
			history.Round, result.Round)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎰 <b>로또 %s회 추천 번호 결과</b>\n\n", result.Round)
	fmt.Fprintf(&b, "🗓 추첨일: %s\n", result.DrawDate)
	b.WriteString("🎱 당첨번호: ")
	for i, num := range result.Numbers {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "<b>%02d</b>", num)
	}
	fmt.Fprintf(&b, "\n➕ 보너스: <b>%02d</b>\n\n", result.BonusNumber)
	b.WriteString("━━━━━━━━━━━━━━━━━━━━\n\n")

	bestRank := 0
	winners := 0

	for _, game := range history.Games {
		rank, matchCount, hasBonus := CheckWinning(game.Numbers, result)

		fmt.Fprintf(&b, "🎲 [%s 게임] ", game.Type)
		for i, num := range game.Numbers {
			if i > 0 {
				b.WriteString(", ")
			}
			// 일치하는 번호는 강조
			if slices.Contains(result.Numbers, num) {
				fmt.Fprintf(&b, "✅<b>%02d</b>", num)
			} else {
				fmt.Fprintf(&b, "%02d", num)
			}
		}
		b.WriteString("\n")

		if rank > 0 {
			fmt.Fprintf(&b, "   🎉 <b>%d등</b> (%d개 일치", rank, matchCount)
			if hasBonus && rank == 2 {
				b.WriteString(" + 보너스")
			}
			b.WriteString(")\n")

			if bestRank == 0 || rank < bestRank {
				bestRank = rank
			}
			winners++
		} else {
			fmt.Fprintf(&b, "   ❌ 낙첨 (%d개 일치)\n", matchCount)
		}
	}

	b.WriteString("\n━━━━━━━━━━━━━━━━━━━━\n")

	if winners > 0 {
		fmt.Fprintf(&b, "\n🎊 <b>총 %d게임 당첨!</b>\n", winners)
		if bestRank <= 3 {
			b.WriteString("💰 <b>고액 당첨 번호였습니다!</b> 🎉\n")
		}
	} else {
		b.WriteString("\n아쉽지만 다음 기회에! 😊\n")
	}

	return b.String()
}
