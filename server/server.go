// Package server는 번호 생성 API와 서버 렌더링 페이지를 제공합니다.
package server

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lottodisplay/config"
	"lottodisplay/display"
	"lottodisplay/logger"
	"lottodisplay/lottery"
)

// Server는 gin 엔진과 번호 생성기를 묶습니다
type Server struct {
	cfg    config.Config
	gen    *lottery.Generator
	engine *gin.Engine
	now    func() time.Time
}

// New는 라우트가 등록된 서버를 생성합니다
func New(cfg config.Config, gen *lottery.Generator, now func() time.Time) *Server {
	if now == nil {
		now = time.Now
	}

	s := &Server{
		cfg:    cfg,
		gen:    gen,
		engine: gin.New(),
		now:    now,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := s.engine

	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(s.cfg.AllowOrigins)))

	r.GET(display.GeneratePath, s.handleGenerate)
	r.GET("/", s.handleIndex)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": s.now()})
	})
	r.Static("/static", s.cfg.StaticDir)
}

func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cc
}

// Handler는 HTTP 핸들러를 반환합니다
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run은 ctx가 끝날 때까지 서버를 실행합니다
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("🚀 서버 시작: :%s", s.cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("서버 실행 실패: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("서버 종료 실패: %w", err)
	}
	logger.Info("✅ 서버 종료")
	return nil
}

// RoundLabel은 설정된 회차 라벨을 반환합니다. "auto"면 다가오는 추첨일의 회차를 계산합니다
func RoundLabel(label string, now time.Time) string {
	if label != config.AutoRoundLabel {
		return label
	}
	return fmt.Sprintf("%d회차", lottery.RoundForDate(display.NextDrawDate(now)))
}

// DisplayConfig는 서버 설정으로 표시 컴포넌트 설정을 만듭니다
func DisplayConfig(cfg config.Config, now time.Time) display.Config {
	dc := display.DefaultConfig()
	dc.Origin = cfg.Origin
	dc.AssetBase = cfg.AssetBase
	dc.RoundLabel = RoundLabel(cfg.RoundLabel, now)
	return dc
}

// Generate는 이력을 읽어 5게임을 생성하고 생성 내역에 저장합니다
func (s *Server) Generate(ctx context.Context) ([][]int, error) {
	history, err := lottery.LoadHistory(s.cfg.HistoryFile)
	if err != nil {
		return nil, err
	}

	games := s.gen.Generate(history, lottery.GamesPerDraw)

	now := s.now()
	round := fmt.Sprint(lottery.RoundForDate(display.NextDrawDate(now)))
	if err := lottery.SaveGeneration(s.cfg.GenerationFile, round, now.Format(time.DateTime), games); err != nil {
		logger.Warning("⚠️  생성 내역 저장 실패: %v", err)
	}

	logger.Info("추천 번호 생성: %v", games)
	return games, nil
}

func (s *Server) handleGenerate(c *gin.Context) {
	games, err := s.Generate(c.Request.Context())
	if err != nil {
		logger.Error("❌ 번호 생성 실패: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, lottery.GenerateResponse{Numbers: games})
}

func (s *Server) handleIndex(c *gin.Context) {
	page, err := display.NewDefaultPage()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	now := s.now()
	// 실패해도 슬롯이 빈 페이지를 그대로 보여줍니다
	_ = display.Run(c.Request.Context(), DisplayConfig(s.cfg, now), page, display.SourceFunc(s.Generate), now)

	out, err := page.HTML()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}
