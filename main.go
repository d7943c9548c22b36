package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"dhspitto/config"
	"dhspitto/logger"
	"dhspitto/scheduler"
	"dhspitto/tasks"
	"dhspitto/telegram"

	log "github.com/sirupsen/logrus"
)

func main() {
	// 커맨드 라인 플래그 파싱
	configPath := flag.String("config", "config.json", "설정 파일 경로 (없으면 기본값 사용)")
	static := flag.Bool("static", false, "브라우저 없이 HTML만 받아서 수집")
	serviceMode := flag.Bool("service", false, "스케줄러 모드 (설정된 주기마다 수집)")
	logDir := flag.String("logdir", "logs", "로그 파일 디렉토리")

	flag.Parse()

	// 로그 파일 초기화
	if err := logger.Init(*logDir); err != nil {
		log.Fatalf("로그 초기화 실패: %v", err)
	}
	defer logger.Close()

	log.Println("╔════════════════════════════════════════╗")
	log.Println("║      동행복권 스피또 잔여 현황 수집기      ║")
	log.Println("╚════════════════════════════════════════╝")
	log.Println()

	// 설정 로드
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("❌ 설정 로드 실패: %v", err)
	}

	cfg.Print()
	log.Println()

	// 텔레그램 봇 초기화
	var bot *telegram.Bot
	if cfg.TelegramEnabled() {
		bot, err = telegram.New(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️  텔레그램 봇 초기화 실패, 알림은 전송되지 않습니다: %v\n", err)
		} else {
			log.Println("✅ 텔레그램 봇 초기화 완료")
		}
	}

	mode := tasks.ModeBrowser
	if *static {
		mode = tasks.ModeStatic
	}

	if *serviceMode {
		runScheduler(cfg, mode, bot)
		return
	}

	// 저장 실패는 프로그램을 종료시킴
	if err := tasks.CollectAndExport(cfg, mode, bot); err != nil {
		logger.Fatal("❌ 결과 저장 실패: %v", err)
	}
}

// runScheduler는 시작 시 1회 수집한 뒤 설정된 주기마다 수집합니다
func runScheduler(cfg config.Config, mode tasks.Mode, bot *telegram.Bot) {
	log.Println("🔄 스케줄러 모드 시작")
	log.Println()

	sched := scheduler.New()

	collect := func() {
		if err := tasks.CollectAndExport(cfg, mode, bot); err != nil {
			log.Errorf("❌ 결과 저장 실패: %v", err)
			if bot != nil {
				bot.SendMessageSafe("❌ <b>스피또 현황 저장 실패</b>\n\n" + err.Error())
			}
		}
	}

	next, err := sched.AddJob(cfg.Schedule, "스피또 현황 수집", collect)
	if err != nil {
		logger.Fatal("❌ 수집 스케줄 등록 실패: %v", err)
	}

	// 시작 시 즉시 1회 실행
	collect()

	sched.Start()

	log.Println("✅ 스케줄러 시작 완료")
	log.Printf("   다음 수집: %s (%s)\n", next.Format("2006-01-02 15:04"), cfg.Schedule)
	log.Println("   종료하려면 Ctrl+C를 누르세요.")
	log.Println()

	// 시그널 대기
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println()
	log.Println("⚠️  종료 신호를 받았습니다.")
	sched.Stop()
	log.Println("✅ 프로그램 종료")
}
