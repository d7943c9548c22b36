package speetto

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultFamilies는 수집 대상 게임 종류입니다 (스피또500은 제외)
var DefaultFamilies = []string{"1000", "2000"}

// Title은 섹션 텍스트에서 찾은 게임 제목입니다
type Title struct {
	Text   string // 페이지에 표시된 원문 (예: "스피또1000 45회")
	Family string
	Round  string
}

// Key는 제목의 (종류, 회차) 키를 반환합니다
func (t Title) Key() GameKey {
	return GameKey{Family: t.Family, Round: t.Round}
}

// TitleMatcher는 허용된 게임 종류의 제목만 찾아냅니다
type TitleMatcher struct {
	re *regexp.Regexp
}

// NewTitleMatcher는 주어진 게임 종류에 대한 제목 패턴을 생성합니다
func NewTitleMatcher(families []string) (*TitleMatcher, error) {
	if len(families) == 0 {
		return nil, fmt.Errorf("게임 종류가 비어 있습니다")
	}

	quoted := make([]string, 0, len(families))
	for _, f := range families {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, fmt.Errorf("빈 게임 종류가 포함되어 있습니다")
		}
		quoted = append(quoted, regexp.QuoteMeta(f))
	}

	pattern := fmt.Sprintf(`스피또\s*(%s)\s*(\d+)회`, strings.Join(quoted, "|"))
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("제목 패턴 생성 실패: %w", err)
	}

	return &TitleMatcher{re: re}, nil
}

// FindAll은 텍스트에 나타나는 모든 제목을 등장 순서대로 반환합니다
func (m *TitleMatcher) FindAll(text string) []Title {
	matches := m.re.FindAllStringSubmatch(text, -1)
	titles := make([]Title, 0, len(matches))
	for _, match := range matches {
		titles = append(titles, Title{
			Text:   match[0],
			Family: match[1],
			Round:  match[2],
		})
	}
	return titles
}

// Match는 문자열이 허용된 게임 제목을 포함하는지 확인합니다
func (m *TitleMatcher) Match(s string) bool {
	return m.re.MatchString(s)
}
