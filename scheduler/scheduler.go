package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"lottodisplay/logger"
)

// Scheduler는 크론 스케줄러입니다
type Scheduler struct {
	cron *cron.Cron
}

// Location은 추첨 시간대(Asia/Seoul)를 반환합니다. 로드 실패 시 KST 고정 오프셋을 사용합니다
func Location() *time.Location {
	location, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		logger.Warning("⚠️  시간대 로드 실패, KST 고정 오프셋 사용: %v", err)
		return time.FixedZone("KST", 9*60*60)
	}
	return location
}

// New는 새로운 스케줄러를 생성합니다
// 주간 작업 스케줄 (Asia/Seoul)
const (
	RefreshSpec       = "0 21 * * 6"  // 토요일 21:00 당첨번호 이력 갱신
	CheckSpec         = "10 21 * * 6" // 토요일 21:10 추천 번호 당첨 확인
	WeeklyNumbersSpec = "0 13 * * 1"  // 월요일 13:00 추천 번호 알림
)

func New() *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(Location()), cron.WithChain(cron.Recover(cron.DefaultLogger))),
	}
}

// AddFunc는 크론 작업을 추가합니다
func (s *Scheduler) AddFunc(spec string, cmd func()) error {
	_, err := s.cron.AddFunc(spec, cmd)
	return err
}

// Entries는 등록된 작업 수를 반환합니다
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// Start는 스케줄러를 시작합니다
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop은 스케줄러를 중지하고 실행 중인 작업이 끝날 때까지 기다립니다
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		logger.Warning("⚠️  실행 중인 작업을 기다리지 않고 종료합니다")
	}
}
