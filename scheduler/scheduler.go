package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// DefaultLocation은 스케줄 기준 시간대입니다
const DefaultLocation = "Asia/Seoul"

// Scheduler는 크론 스케줄러입니다
type Scheduler struct {
	cron     *cron.Cron
	location *time.Location
}

// New는 한국 시간 기준 스케줄러를 생성합니다. 작업 중 panic은 로그로 남기고 계속 진행합니다.
func New() *Scheduler {
	location, err := time.LoadLocation(DefaultLocation)
	if err != nil {
		log.Printf("⚠️  시간대 로드 실패, UTC 사용: %v\n", err)
		location = time.UTC
	}

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithChain(cron.Recover(cron.PrintfLogger(log.StandardLogger()))),
		),
		location: location,
	}
}

// AddJob은 이름이 붙은 크론 작업을 추가하고 다음 실행 시각을 반환합니다
func (s *Scheduler) AddJob(spec, name string, cmd func()) (time.Time, error) {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s 스케줄 형식 오류 (%s): %w", name, spec, err)
	}

	s.cron.Schedule(sched, cron.FuncJob(func() {
		log.Printf("⏰ 예약 작업 시작: %s\n", name)
		cmd()
		log.Printf("⏰ 예약 작업 종료: %s\n", name)
	}))

	return sched.Next(time.Now().In(s.location)), nil
}

// Start는 스케줄러를 시작합니다
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop은 스케줄러를 중지하고 실행 중인 작업이 끝나기를 기다립니다
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
