package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"lottodisplay/assets"
	"lottodisplay/config"
	"lottodisplay/display"
	"lottodisplay/logger"
	"lottodisplay/lottery"
	"lottodisplay/scheduler"
	"lottodisplay/server"
	"lottodisplay/tasks"
	"lottodisplay/telegram"
)

func main() {
	// 로그 파일 초기화
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "로그 초기화 실패: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("╔════════════════════════════════════════╗")
	logger.Info("║      로또 6/45 추천 번호 표시 서비스      ║")
	logger.Info("╚════════════════════════════════════════╝")

	// 커맨드 라인 플래그 파싱
	render := flag.Bool("render", false, "원격 오리진에서 번호를 받아 페이지를 1회 렌더링")
	origin := flag.String("origin", "", "렌더링 모드의 오리진 (기본값: 설정의 origin)")
	out := flag.String("out", "", "렌더링 결과 파일 (기본값: 표준출력)")
	serviceMode := flag.Bool("service", false, "서버 + 스케줄러 모드")
	check := flag.Bool("check", false, "추천 번호 당첨 확인만 수행")
	refresh := flag.Bool("refresh", false, "당첨번호 이력 갱신만 수행")

	flag.Parse()

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		logger.Error("❌ 설정 로드 실패: %v", err)
		os.Exit(1)
	}
	cfg.Print()

	// 텔레그램 봇 초기화
	var bot *telegram.Bot
	if cfg.TelegramEnabled() {
		bot = telegram.New(cfg.TelegramBotToken, cfg.TelegramChatID)
		logger.Info("✅ 텔레그램 봇 초기화 완료")
	} else {
		logger.Info("⚠️  텔레그램 설정이 없습니다. 알림은 전송되지 않습니다.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := lottery.NewClient()
	if err != nil {
		logger.Error("❌ 클라이언트 생성 실패: %v", err)
		os.Exit(1)
	}

	// 플래그에 따라 실행
	switch {
	case *render:
		if *origin != "" {
			cfg.Origin = *origin
		}
		err = renderOnce(ctx, cfg, client, *out)

	case *check:
		err = tasks.CheckWinning(ctx, cfg, client, bot)

	case *refresh:
		err = tasks.RefreshHistory(ctx, cfg, client)

	case *serviceMode:
		err = runService(ctx, cfg, client, bot)

	default:
		err = serve(ctx, cfg)
	}

	if err != nil {
		logger.Error("❌ 실행 실패: %v", err)
		logger.Close()
		os.Exit(1)
	}
}

// renderOnce는 기본 페이지에 번호를 렌더링해 파일이나 표준출력으로 씁니다.
// 번호 조회에 실패해도 슬롯이 빈 페이지를 씁니다
func renderOnce(ctx context.Context, cfg config.Config, client *lottery.Client, out string) error {
	page, err := display.NewDefaultPage()
	if err != nil {
		return err
	}

	dc := server.DisplayConfig(cfg, time.Now().In(scheduler.Location()))
	dc.Location = scheduler.Location()
	if err := display.Init(ctx, dc, page, client.GetHTTPClient()); err != nil {
		logger.Warning("⚠️  번호 없이 페이지를 출력합니다")
	}

	html, err := page.HTML()
	if err != nil {
		return err
	}

	if out == "" {
		_, err = fmt.Fprintln(os.Stdout, html)
		return err
	}
	if err := os.WriteFile(out, []byte(html), 0644); err != nil {
		return fmt.Errorf("페이지 저장 실패: %w", err)
	}
	logger.Info("✅ 페이지 저장: %s", out)
	return nil
}

func newServer(cfg config.Config) (*server.Server, *lottery.Generator, error) {
	numbersDir := filepath.Join(cfg.StaticDir, "image", "numbers")
	if _, err := assets.EnsureBalls(numbersDir, lottery.MinNumber, lottery.MaxNumber); err != nil {
		return nil, nil, err
	}

	gen := lottery.NewGenerator()
	now := func() time.Time { return time.Now().In(scheduler.Location()) }
	return server.New(cfg, gen, now), gen, nil
}

func serve(ctx context.Context, cfg config.Config) error {
	srv, _, err := newServer(cfg)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

// runService는 서버와 주간 스케줄러를 함께 실행합니다
func runService(ctx context.Context, cfg config.Config, client *lottery.Client, bot *telegram.Bot) error {
	logger.Info("🔄 서비스 모드 시작")

	srv, gen, err := newServer(cfg)
	if err != nil {
		return err
	}

	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	logger.Info("    예약된 스케줄:")
	logger.Info("    - 이력 갱신: 매주 토요일 오후 9시")
	logger.Info("    - 당첨 확인: 매주 토요일 오후 9시 10분")
	logger.Info("    - 추천 번호 알림: 매주 월요일 오후 1시")
	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	sched := scheduler.New()

	jobs := []struct {
		spec string
		name string
		run  func()
	}{
		{scheduler.RefreshSpec, "이력 갱신", func() { _ = tasks.RefreshHistory(ctx, cfg, client) }},
		{scheduler.CheckSpec, "당첨 확인", func() { _ = tasks.CheckWinning(ctx, cfg, client, bot) }},
		{scheduler.WeeklyNumbersSpec, "추천 번호 알림", func() {
			_, _ = tasks.SendWeeklyNumbers(ctx, cfg, gen, bot, time.Now().In(scheduler.Location()))
		}},
	}
	for _, job := range jobs {
		if err := sched.AddFunc(job.spec, job.run); err != nil {
			return fmt.Errorf("%s 스케줄 등록 실패: %w", job.name, err)
		}
	}

	sched.Start()
	logger.Info("✅ 스케줄러 시작 완료")

	err = srv.Run(ctx)

	logger.Info("⚠️  종료 신호를 받았습니다. 스케줄러를 중지합니다...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sched.Stop(stopCtx)

	logger.Info("✅ 프로그램 종료")
	return err
}
