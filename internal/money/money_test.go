package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2.675", "2.68"}, // half rounds away from zero
		{"-2.675", "-2.68"},
		{"2.674", "2.67"},
		{"2.676", "2.68"},
		{"19.99", "19.99"},
		{"6.663333333333333", "6.66"},
		{"0.005", "0.01"},
		{"-0.005", "-0.01"},
		{"0", "0"},
	}
	for _, tt := range tests {
		got := Round2(dec(tt.in))
		assert.True(t, got.Equal(dec(tt.want)), "Round2(%s) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestRound2_Idempotent(t *testing.T) {
	for _, s := range []string{"2.675", "-13.331", "0.004999", "19.99", "100", "-0.005"} {
		once := Round2(dec(s))
		twice := Round2(once)
		require.True(t, once.Equal(twice), "Round2 not idempotent for %s: %s vs %s", s, once, twice)
	}
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(dec("0")))
	assert.True(t, IsZero(dec("0.009")))
	assert.True(t, IsZero(dec("-0.0099")))
	assert.False(t, IsZero(dec("0.01")))
	assert.False(t, IsZero(dec("-0.01")))
	assert.False(t, IsZero(dec("10")))
}

func TestParse(t *testing.T) {
	d, err := Parse("12.34")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec("12.34")))

	_, err = Parse("not-a-number")
	require.Error(t, err)
}
