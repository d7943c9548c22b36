package speetto

import (
	"regexp"
	"strings"
)

const (
	baseDateMarker = "기준"
	ticketUnit     = "매"
	percentSign    = "%"
)

var (
	ticketPattern  = regexp.MustCompile(`(\d[\d,]*)\s*매`)
	percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
)

// Extractor는 게임별 텍스트 조각에서 당첨 정보를 뽑아냅니다
type Extractor struct {
	Tiers TierTable
}

// NewExtractor는 당첨금 표를 사용하는 추출기를 생성합니다. nil이면 기본 표를 씁니다.
func NewExtractor(tiers TierTable) *Extractor {
	if tiers == nil {
		tiers = DefaultTierTable
	}
	return &Extractor{Tiers: tiers}
}

// Extract는 텍스트 조각을 줄 단위로 읽어 레코드를 채웁니다.
// 찾지 못한 항목은 빈 문자열로 남고, 오류를 반환하지 않습니다.
func (e *Extractor) Extract(block string) GameRecord {
	var rec GameRecord

	foundAmount := false
	var counts []string

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)

		// 기준일 (첫 줄만)
		if rec.BaseDate == "" && strings.Contains(line, baseDateMarker) {
			rec.BaseDate = trimmed
		}

		// 당첨금
		if won, ok := ParseWon(line); ok {
			if tier, ok := e.Tiers.Lookup(won); ok && rec.Prize[tier.index()] == "" {
				rec.Prize[tier.index()] = trimmed
			}
			foundAmount = true
		}

		// 잔여 매수 (당첨금 줄 이후부터)
		if foundAmount && strings.Contains(line, ticketUnit) {
			counts = append(counts, ticketCount(line))
		}

		// 판매점 입고율 (마지막 줄 기준)
		if strings.Contains(line, percentSign) {
			rec.RestockRate = percentValue(line)
		}
	}

	for i := 0; i < len(counts) && i < TierCount; i++ {
		rec.Remaining[i] = counts[i]
	}

	return rec
}

func ticketCount(line string) string {
	if m := ticketPattern.FindStringSubmatch(line); m != nil {
		return strings.ReplaceAll(m[1], ",", "")
	}
	s := strings.ReplaceAll(line, ticketUnit, "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

func percentValue(line string) string {
	if m := percentPattern.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return strings.TrimSpace(strings.ReplaceAll(line, percentSign, ""))
}
