package speetto

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// DefaultMaxPages는 캐러셀을 넘기는 최대 횟수입니다
const DefaultMaxPages = 50

// Page는 스피또 캐러셀이 있는 페이지입니다
type Page interface {
	// Load는 페이지를 열고 내용이 표시될 때까지 기다립니다
	Load(ctx context.Context) error
	// SectionText는 캐러셀 영역에 현재 표시된 텍스트를 반환합니다
	SectionText(ctx context.Context) (string, error)
	// Next는 캐러셀을 다음 장으로 넘깁니다
	Next(ctx context.Context) error
}

// Scraper는 캐러셀을 한 바퀴 돌며 게임별 현황을 수집합니다
type Scraper struct {
	titles    *TitleMatcher
	extractor *Extractor
	maxPages  int
}

// NewScraper는 새로운 수집기를 생성합니다
func NewScraper(titles *TitleMatcher, extractor *Extractor, maxPages int) *Scraper {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Scraper{
		titles:    titles,
		extractor: extractor,
		maxPages:  maxPages,
	}
}

// Scrape는 캐러셀이 처음 본 화면으로 돌아올 때까지 넘기면서 게임을 수집합니다.
// 같은 게임이 여러 장에 나오면 처음 추출한 값을 유지합니다.
func (s *Scraper) Scrape(ctx context.Context, page Page) ([]GameRecord, error) {
	if err := page.Load(ctx); err != nil {
		return nil, fmt.Errorf("페이지 로드 실패: %w", err)
	}

	seenText := make(map[string]bool)
	found := make(map[GameKey]bool)
	var records []GameRecord

	for pageNo := 1; ; pageNo++ {
		if pageNo > s.maxPages {
			log.Warnf("⚠️  최대 페이지 수(%d)에 도달하여 수집을 중단합니다", s.maxPages)
			break
		}

		text, err := page.SectionText(ctx)
		if err != nil {
			return nil, fmt.Errorf("스피또 영역 읽기 실패 (%d번째 화면): %w", pageNo, err)
		}

		// 이미 본 화면이면 캐러셀이 한 바퀴 돈 것
		if seenText[text] {
			log.Printf("   → %d번째 화면에서 처음 화면으로 돌아왔습니다", pageNo)
			break
		}
		seenText[text] = true

		for _, seg := range Segments(text, s.titles.FindAll(text)) {
			key := seg.Title.Key()
			if found[key] {
				continue
			}
			found[key] = true

			rec := s.extractor.Extract(seg.Text)
			rec.Family = seg.Title.Family
			rec.Round = seg.Title.Round
			records = append(records, rec)

			log.Printf("   → %s %s회 수집", rec.Name(), rec.Round)
		}

		if err := page.Next(ctx); err != nil {
			return nil, fmt.Errorf("다음 화면 이동 실패: %w", err)
		}
	}

	return records, nil
}
