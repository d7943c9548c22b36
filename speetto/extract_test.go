package speetto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const spitto2000Block = `스피또2000 58회
2025.10.18 기준
1등
10억원
2매
2등
1억원
5매
3등
1천만원
12매
판매점 입고율
87%`

func TestExtract_AllTiers(t *testing.T) {
	rec := NewExtractor(nil).Extract(spitto2000Block)

	assert.Equal(t, "2025.10.18 기준", rec.BaseDate)
	assert.Equal(t, [TierCount]string{"10억원", "1억원", "1천만원"}, rec.Prize)
	assert.Equal(t, [TierCount]string{"2", "5", "12"}, rec.Remaining)
	assert.Equal(t, "87", rec.RestockRate)
}

func TestExtract_Spitto1000Amounts(t *testing.T) {
	block := "스피또1000 92회\n1등 5억원\n잔여 1,234매\n2등 2천만원\n잔여 3,000매\n3등 1만원\n잔여 120,500매"
	rec := NewExtractor(nil).Extract(block)

	assert.Equal(t, [TierCount]string{"1등 5억원", "2등 2천만원", "3등 1만원"}, rec.Prize)
	assert.Equal(t, [TierCount]string{"1234", "3000", "120500"}, rec.Remaining)
}

func TestExtract_NoAmountsNoPercent(t *testing.T) {
	block := "스피또2000 58회\n2025.10.18 기준\n판매중\n남은 수량 12매"
	rec := NewExtractor(nil).Extract(block)

	assert.Equal(t, "2025.10.18 기준", rec.BaseDate)
	assert.Equal(t, [TierCount]string{}, rec.Prize)
	assert.Equal(t, [TierCount]string{}, rec.Remaining)
	assert.Empty(t, rec.RestockRate)
}

func TestExtract_EmptyBlock(t *testing.T) {
	assert.Equal(t, GameRecord{}, NewExtractor(nil).Extract(""))
}

func TestExtract_TicketCountsInEncounterOrder(t *testing.T) {
	block := "1등 10억원\n1매\n2매\n3매\n4매"
	rec := NewExtractor(nil).Extract(block)

	assert.Equal(t, [TierCount]string{"1", "2", "3"}, rec.Remaining)
}

func TestExtract_FewerThanThreeCounts(t *testing.T) {
	block := "1등 10억원\n1매\n2등 1억원\n7매"
	rec := NewExtractor(nil).Extract(block)

	assert.Equal(t, [TierCount]string{"1", "7", ""}, rec.Remaining)
}

func TestExtract_CountsBeforeAmountIgnored(t *testing.T) {
	block := "총 발행 40,000,000매\n1등 10억원\n2매"
	rec := NewExtractor(nil).Extract(block)

	assert.Equal(t, [TierCount]string{"2", "", ""}, rec.Remaining)
}

func TestExtract_UnknownAmountDropped(t *testing.T) {
	block := "1등 3억원\n4매"
	rec := NewExtractor(nil).Extract(block)

	assert.Equal(t, [TierCount]string{}, rec.Prize)
	// 금액 줄로는 인정되므로 잔여 매수는 수집됨
	assert.Equal(t, "4", rec.Remaining[0])
}

func TestExtract_FirstAmountPerTierWins(t *testing.T) {
	block := "1등 10억원\n1등 5억원"
	rec := NewExtractor(nil).Extract(block)

	assert.Equal(t, "1등 10억원", rec.Prize[0])
}

func TestExtract_LastPercentWins(t *testing.T) {
	block := "입고율 10%\n입고율 55.5%"
	rec := NewExtractor(nil).Extract(block)

	assert.Equal(t, "55.5", rec.RestockRate)
}

func TestExtract_FirstBaseDateWins(t *testing.T) {
	block := "2025.10.18 기준\n2025.10.19 기준"
	rec := NewExtractor(nil).Extract(block)

	assert.Equal(t, "2025.10.18 기준", rec.BaseDate)
}

func TestExtract_CustomTierTable(t *testing.T) {
	table, err := NewTierTable(map[string][]string{
		"1": {"3억원"},
		"2": {"300만원"},
	})
	assert.NoError(t, err)

	rec := NewExtractor(table).Extract("1등 3억원\n2등 3백만원\n3등 1천만원")

	assert.Equal(t, [TierCount]string{"1등 3억원", "2등 3백만원", ""}, rec.Prize)
}

func TestExtract_BareNumberBeforeAmount(t *testing.T) {
	// 잔여 매수 열이 당첨금 열 앞에 오는 표
	block := "2 10억원\n2매\n잔여 3 1억원\n3매\n5\t1천만원\n5매"
	rec := NewExtractor(nil).Extract(block)

	assert.Equal(t, [TierCount]string{"2 10억원", "잔여 3 1억원", "5\t1천만원"}, rec.Prize)
	assert.Equal(t, [TierCount]string{"2", "3", "5"}, rec.Remaining)
}

func TestExtract_TierByAmountValue(t *testing.T) {
	// 12억원은 문구에 "2억원"이 들어 있어도 표에 없는 금액이라 버려짐
	rec := NewExtractor(nil).Extract("1등 12억원")
	assert.Equal(t, [TierCount]string{}, rec.Prize)

	// 100만원은 1백만원과 같은 금액이라 2등으로 분류됨
	rec = NewExtractor(nil).Extract("2등 100만원")
	assert.Equal(t, [TierCount]string{"", "2등 100만원", ""}, rec.Prize)
}
