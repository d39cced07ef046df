// Package display는 다가오는 추첨일과 추천 번호 5게임을 페이지에 표시합니다.
package display

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lottodisplay/logger"
)

// GamesPerPage는 한 페이지에 표시되는 게임 수입니다
const GamesPerPage = 5

// Config는 표시 컴포넌트의 설정입니다
type Config struct {
	Origin     string
	AssetBase  string
	RoundLabel string
	InfoID     string
	Slots      [GamesPerPage]string

	// Location은 추첨일 계산 기준 시간대입니다. nil이면 time.Local
	Location *time.Location
}

// DefaultConfig는 기본 요소 id와 에셋 경로를 가진 설정을 반환합니다
func DefaultConfig() Config {
	return Config{
		AssetBase:  "static/image/numbers",
		RoundLabel: "1137회차",
		InfoID:     "game-info",
		Slots:      [GamesPerPage]string{"game1", "game2", "game3", "game4", "game5"},
	}
}

// Init은 cfg.Location 기준 현재 시각으로 cfg.Origin에서 번호를 가져와 Run을 실행합니다.
// client가 nil이면 기본 클라이언트를 사용합니다
func Init(ctx context.Context, cfg Config, page *Page, client *http.Client) error {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return Run(ctx, cfg, page, NewFetcher(cfg.Origin, client), time.Now().In(loc))
}

// Run은 추첨일 라벨을 표시하고, 번호를 가져와 5개 슬롯을 모두 렌더링합니다.
// 번호 조회가 실패하면 에러를 로그로 남기고 슬롯은 건드리지 않습니다.
func Run(ctx context.Context, cfg Config, page *Page, src Source, now time.Time) error {
	logger.Debug("표시 스크립트 초기화 중...")

	drawDate := NextDrawDate(now)
	if err := page.SetText(cfg.InfoID, InfoText(cfg.RoundLabel, drawDate)); err != nil {
		logger.Error("❌ 추첨일 표시 실패: %v", err)
		return err
	}

	for _, id := range cfg.Slots {
		if !page.Has(id) {
			err := fmt.Errorf("게임 슬롯이 없습니다: #%s", id)
			logger.Error("❌ %v", err)
			return err
		}
	}

	logger.Debug("로또 번호 요청 중...")

	games, err := src.Fetch(ctx)
	if err == nil {
		err = checkGames(games)
	}
	if err != nil {
		logger.Error("❌ 로또 번호 조회 실패: %v", err)
		return err
	}

	logger.Debug("로또 번호: %v", games)

	for i, id := range cfg.Slots {
		if err := page.RenderGame(id, cfg.AssetBase, games[i]); err != nil {
			// 슬롯 존재는 위에서 확인했습니다
			return err
		}
	}

	logger.Info("✅ %s 번호 %d게임 표시 완료", InfoText(cfg.RoundLabel, drawDate), len(games))
	return nil
}
