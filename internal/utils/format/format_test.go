package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name   string
		amount uint64
		want   string
	}{
		{"zero", 0, "0.0000"},
		{"one token", 1_000_000_000, "1.0000"},
		{"tenth of a token", 100_000_000, "0.1000"},
		{"fee-sized amount", 2_500_000, "0.0025"},
		{"rounds dropped digits up", 12_500_000, "0.0125"},
		{"rounds half up", 50_000, "0.0001"},
		{"rounds below half down", 49_999, "0.0000"},
		{"carries into whole tokens", 999_999_999, "1.0000"},
		{"large volume", 14_000_000_000, "14.0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokens(tt.amount))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "1.00%", Percent(100))
	assert.Equal(t, "0.50%", Percent(50))
	assert.Equal(t, "0.25%", Percent(25))
	assert.Equal(t, "0.10%", Percent(10))
	assert.Equal(t, "0.00%", Percent(0))
	assert.Equal(t, "100.00%", Percent(10_000))
	assert.Equal(t, "0.23%", Percent(23))
}
