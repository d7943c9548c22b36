package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	log "github.com/sirupsen/logrus"
)

// 동행복권 메인 페이지의 스피또 캐러셀 선택자
const (
	DefaultSectionSelector = ".speetto-new"
	DefaultNextSelector    = ".slick-next"
)

// CarouselPage는 chromedp로 조작하는 스피또 캐러셀 페이지입니다.
// 모든 메서드의 ctx는 Session.Context()에서 파생된 컨텍스트여야 합니다.
type CarouselPage struct {
	URL             string
	SectionSelector string
	NextSelector    string
	WaitTimeout     time.Duration // 캐러셀 영역이 나타날 때까지 기다리는 시간
	SettleDelay     time.Duration // 페이지 로드 후 대기
	PageDelay       time.Duration // 다음 화면으로 넘긴 후 대기
}

// NewCarouselPage는 기본 선택자를 사용하는 캐러셀 페이지를 생성합니다
func NewCarouselPage(url string, waitTimeout, settleDelay, pageDelay time.Duration) *CarouselPage {
	return &CarouselPage{
		URL:             url,
		SectionSelector: DefaultSectionSelector,
		NextSelector:    DefaultNextSelector,
		WaitTimeout:     waitTimeout,
		SettleDelay:     settleDelay,
		PageDelay:       pageDelay,
	}
}

// Load는 페이지로 이동한 뒤 동적 콘텐츠가 그려지도록 잠시 기다립니다
func (p *CarouselPage) Load(ctx context.Context) error {
	log.Printf("페이지 접속 중: %s\n", p.URL)

	if err := chromedp.Run(ctx,
		chromedp.Navigate(p.URL),
		chromedp.Sleep(p.SettleDelay),
	); err != nil {
		return fmt.Errorf("페이지 이동 실패: %w", err)
	}
	return nil
}

// SectionText는 캐러셀 영역이 나타나기를 기다린 뒤 표시된 텍스트를 읽습니다
func (p *CarouselPage) SectionText(ctx context.Context) (string, error) {
	waitCtx, cancel := context.WithTimeout(ctx, p.WaitTimeout)
	defer cancel()

	var text string
	if err := chromedp.Run(waitCtx,
		chromedp.WaitReady(p.SectionSelector, chromedp.ByQuery),
		chromedp.Text(p.SectionSelector, &text, chromedp.ByQuery),
	); err != nil {
		return "", fmt.Errorf("%s 영역을 찾을 수 없습니다: %w", p.SectionSelector, err)
	}
	return text, nil
}

// Next는 스크립트로 다음 버튼을 직접 클릭합니다.
// 버튼이 다른 요소에 가려져 있어도 동작하도록 마우스 이벤트 대신 click()을 호출합니다.
func (p *CarouselPage) Next(ctx context.Context) error {
	script := fmt.Sprintf(`(() => {
	const btn = document.querySelector(%q);
	if (!btn) return false;
	btn.click();
	return true;
})()`, p.NextSelector)

	var clicked bool
	if err := chromedp.Run(ctx, chromedp.Evaluate(script, &clicked)); err != nil {
		return fmt.Errorf("다음 버튼 클릭 실패: %w", err)
	}
	if !clicked {
		return fmt.Errorf("다음 버튼(%s)을 찾을 수 없습니다", p.NextSelector)
	}

	return chromedp.Run(ctx, chromedp.Sleep(p.PageDelay))
}
