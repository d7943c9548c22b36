package speetto

import "strings"

// Segment는 한 게임에 해당하는 텍스트 조각입니다
type Segment struct {
	Title Title
	Text  string
}

// SegmentText는 title이 처음 나타나는 위치부터, 그 뒤에 가장 가까이
// 나타나는 다른 제목 직전까지의 텍스트를 잘라냅니다.
// 뒤따르는 제목이 없으면 텍스트 끝까지 반환합니다.
func SegmentText(text, title string, titles []string) string {
	start := strings.Index(text, title)
	if start < 0 {
		return ""
	}

	end := len(text)
	for _, other := range titles {
		if other == title {
			continue
		}
		pos := strings.Index(text, other)
		if pos > start && pos < end {
			end = pos
		}
	}

	return text[start:end]
}

// Segments는 텍스트에 나타난 제목마다 조각을 잘라 등장 순서대로 반환합니다.
// 같은 제목이 여러 번 나오면 첫 번째만 사용합니다.
func Segments(text string, titles []Title) []Segment {
	raw := make([]string, 0, len(titles))
	for _, t := range titles {
		raw = append(raw, t.Text)
	}

	seen := make(map[string]bool, len(titles))
	segments := make([]Segment, 0, len(titles))
	for _, t := range titles {
		if seen[t.Text] {
			continue
		}
		seen[t.Text] = true

		segments = append(segments, Segment{
			Title: t,
			Text:  SegmentText(text, t.Text, raw),
		})
	}
	return segments
}
