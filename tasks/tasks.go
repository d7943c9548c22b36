package tasks

import (
	"context"
	"fmt"
	"html"
	"strings"

	"dhspitto/browser"
	"dhspitto/config"
	"dhspitto/logger"
	"dhspitto/report"
	"dhspitto/speetto"
	"dhspitto/telegram"

	log "github.com/sirupsen/logrus"
)

// Mode는 캐러셀을 읽는 방식입니다
type Mode int

const (
	// ModeBrowser는 헤드리스 브라우저로 캐러셀을 넘깁니다
	ModeBrowser Mode = iota
	// ModeStatic은 HTML을 받아 슬라이드를 순서대로 읽습니다
	ModeStatic
)

// CollectAndExport는 스피또 현황을 수집해 엑셀로 저장하고 알림을 보냅니다.
// 수집 단계의 오류는 빈 결과로 처리되고, 저장 단계의 오류만 반환됩니다.
func CollectAndExport(cfg config.Config, mode Mode, bot *telegram.Bot) error {
	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Println("          🎫 스피또 현황 수집 작업")
	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	records := Collect(context.Background(), cfg, mode)

	_, err := Export(cfg, records, bot)
	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Println()
	return err
}

// Collect는 수집 단계 전체를 실행합니다. 어떤 오류든 로그로 남기고 빈 결과를 반환합니다.
func Collect(ctx context.Context, cfg config.Config, mode Mode) []speetto.GameRecord {
	scraper, err := newScraper(cfg)
	if err != nil {
		return recoverEmpty(err)
	}

	var records []speetto.GameRecord
	switch mode {
	case ModeStatic:
		records, err = scrapeStatic(ctx, cfg, scraper)
	default:
		records, err = scrapeBrowser(ctx, cfg, scraper)
	}
	if err != nil {
		return recoverEmpty(err)
	}

	log.Printf("✅ 수집 완료: %d개 게임\n", len(records))
	return records
}

func recoverEmpty(err error) []speetto.GameRecord {
	logger.Error("오류 발생: %v", err)
	return nil
}

func newScraper(cfg config.Config) (*speetto.Scraper, error) {
	titles, err := speetto.NewTitleMatcher(cfg.Families)
	if err != nil {
		return nil, err
	}
	tiers, err := cfg.TierTable()
	if err != nil {
		return nil, err
	}
	return speetto.NewScraper(titles, speetto.NewExtractor(tiers), cfg.MaxPages), nil
}

func scrapeBrowser(ctx context.Context, cfg config.Config, scraper *speetto.Scraper) ([]speetto.GameRecord, error) {
	execPath, err := browser.ResolveExecPath(cfg.InstallBrowser, cfg.ChromePath)
	if err != nil {
		return nil, err
	}

	page := browser.NewCarouselPage(cfg.TargetURL,
		cfg.PageLoadTimeout.Duration, cfg.SettleDelay.Duration, cfg.PageDelay.Duration)

	var records []speetto.GameRecord
	err = browser.WithSession(ctx, browser.Options{
		Headless: cfg.Headless,
		ExecPath: execPath,
	}, func(s *browser.Session) error {
		var err error
		records, err = scraper.Scrape(s.Context(), page)
		return err
	})
	return records, err
}

func scrapeStatic(ctx context.Context, cfg config.Config, scraper *speetto.Scraper) ([]speetto.GameRecord, error) {
	page, err := browser.NewStaticPage(cfg.TargetURL, cfg.PageLoadTimeout.Duration)
	if err != nil {
		return nil, err
	}
	return scraper.Scrape(ctx, page)
}

// Export는 결과를 엑셀로 저장하고, 봇이 있으면 요약과 파일을 전송합니다.
// 결과가 없으면 아무것도 저장하지 않습니다.
func Export(cfg config.Config, records []speetto.GameRecord, bot *telegram.Bot) (string, error) {
	if len(records) == 0 {
		log.Println("수집된 데이터가 없습니다.")
		if bot != nil {
			bot.SendMessageSafe("ℹ️ <b>스피또 현황</b>\n\n수집된 데이터가 없습니다.")
		}
		return "", nil
	}

	path, err := report.NewExporter(cfg.OutputDir).Export(records)
	if err != nil {
		return "", err
	}

	log.Printf("수집된 데이터: %s\n", describe(records))

	if bot != nil {
		bot.SendMessageSafe(FormatSummary(records))
		bot.SendDocumentSafe(path, "")
	}
	return path, nil
}

func describe(records []speetto.GameRecord) string {
	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, fmt.Sprintf("%s %s회(1등 %s / 잔여 %s매 / 입고율 %s%%)",
			r.Name(), r.Round, r.Prize[0], r.Remaining[0], r.RestockRate))
	}
	return strings.Join(parts, ", ")
}

// FormatSummary는 텔레그램용 요약 메시지를 만듭니다
func FormatSummary(records []speetto.GameRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎫 <b>스피또 현황</b> (%d개 게임)\n", len(records)))

	for _, r := range records {
		sb.WriteString(fmt.Sprintf("\n<b>%s %s회</b>", html.EscapeString(r.Name()), html.EscapeString(r.Round)))
		if r.BaseDate != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", html.EscapeString(r.BaseDate)))
		}
		sb.WriteString("\n")

		for i := 0; i < speetto.TierCount; i++ {
			if r.Prize[i] == "" && r.Remaining[i] == "" {
				continue
			}
			sb.WriteString(fmt.Sprintf("  %d등 %s / 잔여 %s매\n",
				i+1, html.EscapeString(r.Prize[i]), html.EscapeString(r.Remaining[i])))
		}
		if r.RestockRate != "" {
			sb.WriteString(fmt.Sprintf("  입고율 %s%%\n", html.EscapeString(r.RestockRate)))
		}
	}
	return sb.String()
}
