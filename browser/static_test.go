package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dhspitto/speetto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const carouselHTML = `<html><body>
<div class="speetto-new">
  <div class="slick-slide slick-cloned"><strong>스피또1000 92회</strong><p>복제본</p></div>
  <div class="slick-slide">
    <strong>스피또2000 58회</strong>
    <p>2025.10.18 기준</p>
    <ul>
      <li><span>1등</span><span>10억원</span><span>2매</span></li>
      <li><span>2등</span><span>1억원</span><span>5매</span></li>
      <li><span>3등</span><span>1천만원</span><span>12매</span></li>
    </ul>
    <p>판매점 입고율 <em>87%</em></p>
    <script>var x = "스피또1000 1회";</script>
  </div>
  <div class="slick-slide">
    <strong>스피또500 80회</strong>
    <p>2025.10.18 기준</p>
  </div>
  <div class="slick-slide">
    <strong>스피또1000 92회</strong>
    <p>2025.10.18 기준</p>
    <ul>
      <li><span>1등</span><span>5억원</span><span>1매</span></li>
      <li><span>2등</span><span>2천만원</span><span>30매</span></li>
      <li><span>3등</span><span>1만원</span><span>1,500매</span></li>
    </ul>
    <p><em>64%</em></p>
  </div>
</div>
</body></html>`

func newCarouselServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestStaticPage_SlidesWrapAround(t *testing.T) {
	srv := newCarouselServer(t, carouselHTML)

	page, err := NewStaticPage(srv.URL, 5*time.Second)
	require.NoError(t, err)
	require.NoError(t, page.Load(context.Background()))

	ctx := context.Background()
	first, err := page.SectionText(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first, "스피또2000 58회\n2025.10.18 기준\n1등\n10억원\n2매"))
	assert.NotContains(t, first, "var x")

	for i := 0; i < 3; i++ {
		require.NoError(t, page.Next(ctx))
	}
	again, err := page.SectionText(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestStaticPage_WholeSectionWithoutSlides(t *testing.T) {
	page, err := NewStaticPage("", time.Second)
	require.NoError(t, err)

	err = page.LoadReader(strings.NewReader(`<div class="speetto-new"><b>스피또2000 3회</b> <i>5억원</i></div>`))
	require.NoError(t, err)

	text, err := page.SectionText(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "스피또2000 3회\n5억원", text)
}

func TestStaticPage_Errors(t *testing.T) {
	page, err := NewStaticPage("", time.Second)
	require.NoError(t, err)

	_, err = page.SectionText(context.Background())
	assert.Error(t, err)
	assert.Error(t, page.Next(context.Background()))
	assert.Error(t, page.LoadReader(strings.NewReader(`<div class="other"></div>`)))

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)
	page.URL = srv.URL
	assert.Error(t, page.Load(context.Background()))
}

func TestStaticPage_ScrapeCarousel(t *testing.T) {
	srv := newCarouselServer(t, carouselHTML)

	page, err := NewStaticPage(srv.URL, 5*time.Second)
	require.NoError(t, err)

	titles, err := speetto.NewTitleMatcher(speetto.DefaultFamilies)
	require.NoError(t, err)
	scraper := speetto.NewScraper(titles, speetto.NewExtractor(nil), 10)

	records, err := scraper.Scrape(context.Background(), page)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "스피또2000", records[0].Name())
	assert.Equal(t, "58", records[0].Round)
	assert.Equal(t, "2025.10.18 기준", records[0].BaseDate)
	assert.Equal(t, [speetto.TierCount]string{"10억원", "1억원", "1천만원"}, records[0].Prize)
	assert.Equal(t, [speetto.TierCount]string{"2", "5", "12"}, records[0].Remaining)
	assert.Equal(t, "87", records[0].RestockRate)

	assert.Equal(t, "92", records[1].Round)
	assert.Equal(t, [speetto.TierCount]string{"1", "30", "1500"}, records[1].Remaining)
	assert.Equal(t, "64", records[1].RestockRate)
}
