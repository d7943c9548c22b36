package speetto

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// 단위가 붙은 금액 표기 (예: "10억원", "1억 5천만원", "5천원").
	// 단위 없는 숫자는 마지막 묶음으로만 올 수 있어 "2 10억원"의 2는 금액에 섞이지 않습니다.
	wonPattern = regexp.MustCompile(`(?:\d[\d,]*\s*(?:천만|백만|십만|억|만|천)\s*)+(?:\d[\d,]*\s*)?원`)
	// 금액 안의 숫자-단위 묶음
	wonTermPattern = regexp.MustCompile(`(\d[\d,]*)\s*(천만|백만|십만|억|만|천)?`)
)

var wonUnits = map[string]int64{
	"억":  100_000_000,
	"천만": 10_000_000,
	"백만": 1_000_000,
	"십만": 100_000,
	"만":  10_000,
	"천":  1_000,
}

// ParseWon은 문자열에서 처음 나타나는 한글 단위 금액을 원 단위 정수로 변환합니다.
// 억/천만/백만/십만/만/천 중 하나 이상의 단위가 있어야 금액으로 인정합니다.
func ParseWon(s string) (int64, bool) {
	for _, loc := range wonPattern.FindAllStringIndex(s, -1) {
		amount := s[loc[0]:loc[1]]

		var total int64
		hasUnit := false
		for _, term := range wonTermPattern.FindAllStringSubmatch(amount, -1) {
			n, err := strconv.ParseInt(strings.ReplaceAll(term[1], ",", ""), 10, 64)
			if err != nil {
				continue
			}
			mul := int64(1)
			if term[2] != "" {
				mul = wonUnits[term[2]]
				hasUnit = true
			}
			total += n * mul
		}

		if hasUnit && total > 0 {
			return total, true
		}
	}
	return 0, false
}

// TierTable은 당첨금(원)으로 등수를 찾는 표입니다.
// 문구가 아니라 금액 값으로 찾기 때문에 "12억원"은 "2억원"을 포함하더라도
// 2억과 다른 금액이라 매칭되지 않고, "100만원"은 "1백만원"과 같은 금액으로 매칭됩니다.
type TierTable map[int64]Tier

// DefaultTierTable은 스피또 1000/2000 상품의 알려진 당첨금 표입니다
var DefaultTierTable = TierTable{
	1_000_000_000: Tier1, // 10억원
	500_000_000:   Tier1, // 5억원
	200_000_000:   Tier1, // 2억원
	100_000_000:   Tier2, // 1억원
	20_000_000:    Tier2, // 2천만원
	1_000_000:     Tier2, // 1백만원
	10_000_000:    Tier3, // 1천만원
	10_000:        Tier3, // 1만원
	5_000:         Tier3, // 5천원
}

// NewTierTable은 등수별 금액 문구 목록으로 표를 만듭니다.
// 키는 "1", "2", "3" 이고 값은 "10억원" 같은 금액 문구입니다.
func NewTierTable(amounts map[string][]string) (TierTable, error) {
	table := make(TierTable)

	// 오류 메시지가 항상 같은 순서로 나오도록 정렬합니다
	keys := make([]string, 0, len(amounts))
	for k := range amounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		n, err := strconv.Atoi(k)
		if err != nil || !Tier(n).valid() {
			return nil, fmt.Errorf("알 수 없는 등수: %q", k)
		}
		for _, text := range amounts[k] {
			won, ok := ParseWon(text)
			if !ok {
				return nil, fmt.Errorf("%s등 금액을 해석할 수 없습니다: %q", k, text)
			}
			if prev, exists := table[won]; exists && prev != Tier(n) {
				return nil, fmt.Errorf("금액 %q 이(가) %d등과 %s등에 중복되었습니다", text, prev, k)
			}
			table[won] = Tier(n)
		}
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("당첨금 표가 비어 있습니다")
	}
	return table, nil
}

// Lookup은 금액에 해당하는 등수를 반환합니다
func (t TierTable) Lookup(won int64) (Tier, bool) {
	tier, ok := t[won]
	return tier, ok
}
