package tasks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lottodisplay/config"
	"lottodisplay/display"
	"lottodisplay/logger"
	"lottodisplay/lottery"
	"lottodisplay/telegram"
)

// ResultSource는 최근 당첨번호를 조회합니다
type ResultSource interface {
	GetLatestResult(ctx context.Context) (*lottery.LottoResult, error)
}

// RefreshHistory는 최근 당첨번호를 조회해 당첨번호 파일에 추가합니다
func RefreshHistory(ctx context.Context, cfg config.Config, src ResultSource) error {
	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	logger.Info("          📥 당첨번호 이력 갱신")
	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	result, err := src.GetLatestResult(ctx)
	if err != nil {
		logger.Error("❌ 당첨번호 조회 실패: %v", err)
		return err
	}

	added, err := lottery.AppendResult(cfg.HistoryFile, result)
	if err != nil {
		logger.Error("❌ 당첨번호 저장 실패: %v", err)
		return err
	}

	if added {
		logger.Info("✅ %s회 당첨번호 추가: %v", result.Round, result.Numbers)
	} else {
		logger.Info("ℹ️  %s회 당첨번호는 이미 저장되어 있습니다", result.Round)
	}
	return nil
}

// CheckWinning은 최근 추첨 결과와 저장된 추천 번호를 비교해 알림을 보냅니다
func CheckWinning(ctx context.Context, cfg config.Config, src ResultSource, bot *telegram.Bot) error {
	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	logger.Info("          🎰 추천 번호 당첨 확인")
	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	result, err := src.GetLatestResult(ctx)
	if err != nil {
		logger.Error("❌ 당첨번호 조회 실패: %v", err)
		bot.SendMessageSafe(ctx, fmt.Sprintf("❌ <b>당첨번호 조회 실패</b>\n\n%v", err))
		return err
	}

	history, err := lottery.GetLastGeneration(cfg.GenerationFile)
	if err != nil {
		logger.Error("❌ 생성 내역 읽기 실패: %v", err)
		return err
	}

	msg := lottery.FormatWinningMessage(result, history)
	for _, line := range strings.Split(msg, "\n") {
		if line != "" {
			logger.Info("%s", line)
		}
	}
	bot.SendMessageSafe(ctx, msg)
	return nil
}

// SendWeeklyNumbers는 이번 주 추천 번호 5게임을 생성해 저장하고 알림을 보냅니다
func SendWeeklyNumbers(ctx context.Context, cfg config.Config, gen *lottery.Generator, bot *telegram.Bot, now time.Time) ([][]int, error) {
	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	logger.Info("          🎱 이번 주 추천 번호")
	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	history, err := lottery.LoadHistory(cfg.HistoryFile)
	if err != nil {
		logger.Error("❌ 당첨번호 파일 읽기 실패: %v", err)
		return nil, err
	}

	games := gen.Generate(history, lottery.GamesPerDraw)

	drawDate := display.NextDrawDate(now)
	round := lottery.RoundForDate(drawDate)
	if err := lottery.SaveGeneration(cfg.GenerationFile, fmt.Sprint(round), now.Format(time.DateTime), games); err != nil {
		logger.Warning("⚠️  생성 내역 저장 실패: %v", err)
	}

	msg := FormatNumbersMessage(round, drawDate, games)
	logger.Info("%d회 (%s) 추천 번호: %v", round, display.FormatDrawDate(drawDate), games)
	bot.SendMessageSafe(ctx, msg)

	return games, nil
}

// FormatNumbersMessage는 추천 번호 알림 메시지를 만듭니다
func FormatNumbersMessage(round int, drawDate time.Time, games [][]int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎱 <b>로또 %d회 추천 번호</b>\n", round)
	fmt.Fprintf(&b, "🗓 추첨일: %s\n\n", display.FormatDrawDate(drawDate))
	for i, game := range games {
		fmt.Fprintf(&b, "[%c] ", 'A'+i)
		for j, n := range game {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%02d", n)
		}
		b.WriteString("\n")
	}
	return b.String()
}
