package speetto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWon(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"10억원", 1_000_000_000, true},
		{"1등 5억원", 500_000_000, true},
		{"2천만원", 20_000_000, true},
		{"1백만원", 1_000_000, true},
		{"100만원", 1_000_000, true},
		{"1억 5천만원", 150_000_000, true},
		{"5천원", 5_000, true},
		{"1,000만 원", 10_000_000, true},
		{"2 10억원", 1_000_000_000, true},
		{"잔여 3 1억원", 100_000_000, true},
		{"2\t1천만원", 10_000_000, true},
		{"1억 2000원", 100_002_000, true},
		{"5,000원", 0, false},
		{"12매", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseWon(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultTierTable(t *testing.T) {
	literals := map[Tier][]string{
		Tier1: {"10억원", "5억원", "2억원"},
		Tier2: {"1억원", "2천만원", "1백만원"},
		Tier3: {"1천만원", "1만원", "5천원"},
	}

	for want, amounts := range literals {
		for _, a := range amounts {
			won, ok := ParseWon(a)
			require.True(t, ok, a)

			got, ok := DefaultTierTable.Lookup(won)
			require.True(t, ok, a)
			assert.Equal(t, want, got, a)
		}
	}
}

func TestNewTierTable_Errors(t *testing.T) {
	_, err := NewTierTable(map[string][]string{"4": {"1억원"}})
	assert.Error(t, err)

	_, err = NewTierTable(map[string][]string{"1": {"많이"}})
	assert.Error(t, err)

	_, err = NewTierTable(map[string][]string{"1": {"1억원"}, "2": {"1억원"}})
	assert.Error(t, err)

	_, err = NewTierTable(map[string][]string{})
	assert.Error(t, err)
}
