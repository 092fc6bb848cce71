package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnnualMonthly(t *testing.T) {
	assert.True(t, Annual(decimal.NewFromInt(1200)).Equal(decimal.NewFromInt(14400)))
	assert.True(t, Monthly(decimal.NewFromInt(14400)).Equal(decimal.NewFromInt(1200)))
}

func TestRound(t *testing.T) {
	got := Round(decimal.NewFromFloat(1501.8654))
	assert.Equal(t, "1501.87", got.StringFixed(2))
}

func TestMinMax(t *testing.T) {
	a := decimal.NewFromInt(3)
	b := decimal.NewFromInt(7)
	assert.True(t, Max(a, b).Equal(b))
	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, Max(b, b).Equal(b))
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(0), "$0.00"},
		{decimal.NewFromFloat(5.5), "$5.50"},
		{decimal.NewFromInt(999), "$999.00"},
		{decimal.NewFromInt(1000), "$1,000.00"},
		{decimal.NewFromFloat(1234567.891), "$1,234,567.89"},
		{decimal.NewFromFloat(-1501.87), "-$1,501.87"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.in))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "6.5%", FormatPercent(decimal.NewFromFloat(0.065)))
	assert.Equal(t, "100.0%", FormatPercent(decimal.NewFromInt(1)))
}
