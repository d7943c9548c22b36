package browser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// DefaultSlideSelector는 캐러셀의 한 장을 가리키는 선택자입니다.
// slick은 무한 회전을 위해 복제본(.slick-cloned)을 추가하므로 제외합니다.
const DefaultSlideSelector = ".slick-slide:not(.slick-cloned)"

// StaticPage는 브라우저 없이 HTML을 받아 캐러셀의 각 장을 순서대로 보여줍니다.
// 마지막 장 다음에는 첫 장으로 돌아갑니다.
type StaticPage struct {
	URL             string
	SectionSelector string
	SlideSelector   string

	client *http.Client
	slides []string
	idx    int
}

// NewStaticPage는 HTTP로 페이지를 가져오는 정적 캐러셀을 생성합니다
func NewStaticPage(url string, timeout time.Duration) (*StaticPage, error) {
	client, err := newHTTPClient(timeout)
	if err != nil {
		return nil, err
	}

	return &StaticPage{
		URL:             url,
		SectionSelector: DefaultSectionSelector,
		SlideSelector:   DefaultSlideSelector,
		client:          client,
	}, nil
}

// Load는 페이지를 내려받아 캐러셀 장들을 준비합니다
func (p *StaticPage) Load(ctx context.Context) error {
	log.Printf("페이지 접속 중 (정적): %s\n", p.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return fmt.Errorf("요청 생성 실패: %w", err)
	}

	req.Header.Set("User-Agent", DefaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("페이지 접속 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("페이지 접속 실패 (상태: %d)", resp.StatusCode)
	}

	return p.LoadReader(resp.Body)
}

// LoadReader는 이미 받아 둔 HTML에서 캐러셀 장들을 준비합니다
func (p *StaticPage) LoadReader(r io.Reader) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return fmt.Errorf("HTML 파싱 실패: %w", err)
	}

	section := doc.Find(p.SectionSelector).First()
	if section.Length() == 0 {
		return fmt.Errorf("%s 영역을 찾을 수 없습니다", p.SectionSelector)
	}

	p.slides = p.slides[:0]
	p.idx = 0

	section.Find(p.SlideSelector).Each(func(i int, s *goquery.Selection) {
		if text := renderText(s); text != "" {
			p.slides = append(p.slides, text)
		}
	})

	// 슬라이드 구조가 없으면 영역 전체를 한 장으로 취급
	if len(p.slides) == 0 {
		p.slides = append(p.slides, renderText(section))
	}

	log.Printf("   → 캐러셀 %d장 확인\n", len(p.slides))
	return nil
}

// SectionText는 현재 장의 텍스트를 반환합니다
func (p *StaticPage) SectionText(ctx context.Context) (string, error) {
	if len(p.slides) == 0 {
		return "", fmt.Errorf("페이지가 로드되지 않았습니다")
	}
	return p.slides[p.idx], nil
}

// Next는 다음 장으로 넘깁니다
func (p *StaticPage) Next(ctx context.Context) error {
	if len(p.slides) == 0 {
		return fmt.Errorf("페이지가 로드되지 않았습니다")
	}
	p.idx = (p.idx + 1) % len(p.slides)
	return nil
}

// renderText는 브라우저의 innerText처럼 텍스트 노드를 줄 단위로 모읍니다
func renderText(s *goquery.Selection) string {
	var lines []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if line := strings.TrimSpace(n.Data); line != "" {
				lines = append(lines, line)
			}
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range s.Nodes {
		walk(n)
	}
	return strings.Join(lines, "\n")
}
