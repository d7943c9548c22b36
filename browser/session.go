package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
	log "github.com/sirupsen/logrus"
)

// DefaultUserAgent는 브라우저와 HTTP 요청에 사용할 User-Agent입니다
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Options는 브라우저 실행 옵션입니다
type Options struct {
	Headless  bool
	ExecPath  string // 비어 있으면 시스템 브라우저를 찾습니다
	UserAgent string
}

// Session은 실행 중인 헤드리스 브라우저 세션입니다
type Session struct {
	ctx         context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// NewSession은 컨테이너 환경용(샌드박스 비활성화) 브라우저를 실행합니다
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.UserAgent(userAgent),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(log.Printf))

	// 액션 없이 Run을 호출하면 브라우저만 실행됩니다
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, fmt.Errorf("브라우저 실행 실패: %w", err)
	}

	return &Session{
		ctx:         tabCtx,
		cancelTab:   cancelTab,
		cancelAlloc: cancelAlloc,
	}, nil
}

// Context는 chromedp 액션을 실행할 컨텍스트를 반환합니다
func (s *Session) Context() context.Context {
	return s.ctx
}

// Close는 탭과 브라우저를 종료합니다
func (s *Session) Close() {
	s.cancelTab()
	s.cancelAlloc()
}

// WithSession은 세션을 열어 fn을 실행하고, 결과와 관계없이 세션을 닫습니다
func WithSession(ctx context.Context, opts Options, fn func(*Session) error) error {
	session, err := NewSession(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		session.Close()
		log.Println("   → 브라우저 종료")
	}()

	return fn(session)
}
