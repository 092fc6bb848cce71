package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finsim/wealth-simulator/internal/domain"
)

func TestPassiveIncomeForYear(t *testing.T) {
	base := domain.PassiveIncomeStream{
		Name:             "dividends",
		StartYear:        0,
		MonthlyAmount:    decimal.NewFromInt(1000),
		AnnualGrowthRate: decimal.NewFromFloat(0.03),
	}

	t.Run("compounds from its own start year", func(t *testing.T) {
		got := PassiveIncomeForYear(5, base, decimal.Zero)
		f, _ := got.Float64()
		assert.InDelta(t, 13911.29, f, 0.01)
	})

	t.Run("first active year pays the base amount", func(t *testing.T) {
		stream := base
		stream.StartYear = 3
		got := PassiveIncomeForYear(3, stream, decimal.Zero)
		assert.True(t, got.Equal(decimal.NewFromInt(12000)), "got %s", got)
	})

	t.Run("late start shifts the compounding base", func(t *testing.T) {
		early := PassiveIncomeForYear(7, base, decimal.Zero)

		late := base
		late.StartYear = 2
		shifted := PassiveIncomeForYear(9, late, decimal.Zero)
		assert.True(t, early.Equal(shifted), "want %s, got %s", early, shifted)
	})

	t.Run("inactive before start year", func(t *testing.T) {
		stream := base
		stream.StartYear = 4
		assert.True(t, PassiveIncomeForYear(3, stream, decimal.Zero).IsZero())
	})

	t.Run("end year is exclusive", func(t *testing.T) {
		end := 6
		stream := base
		stream.EndYear = &end
		assert.False(t, PassiveIncomeForYear(5, stream, decimal.Zero).IsZero())
		assert.True(t, PassiveIncomeForYear(6, stream, decimal.Zero).IsZero())
		assert.True(t, PassiveIncomeForYear(7, stream, decimal.Zero).IsZero())
	})

	t.Run("taxable stream falls back to the default rate", func(t *testing.T) {
		stream := base
		stream.Taxable = true
		got := PassiveIncomeForYear(0, stream, decimal.NewFromFloat(0.25))
		assert.True(t, got.Equal(decimal.NewFromInt(9000)), "got %s", got)
	})

	t.Run("stream tax rate overrides the default", func(t *testing.T) {
		rate := decimal.NewFromFloat(0.10)
		stream := base
		stream.Taxable = true
		stream.TaxRate = &rate
		got := PassiveIncomeForYear(0, stream, decimal.NewFromFloat(0.25))
		assert.True(t, got.Equal(decimal.NewFromInt(10800)), "got %s", got)
	})

	t.Run("untaxed stream ignores rates entirely", func(t *testing.T) {
		rate := decimal.NewFromFloat(0.50)
		stream := base
		stream.TaxRate = &rate
		got := PassiveIncomeForYear(0, stream, decimal.NewFromFloat(0.25))
		assert.True(t, got.Equal(decimal.NewFromInt(12000)), "got %s", got)
	})
}

func TestTotalPassiveIncome(t *testing.T) {
	streams := []domain.PassiveIncomeStream{
		{Name: "a", StartYear: 0, MonthlyAmount: decimal.NewFromInt(100)},
		{Name: "b", StartYear: 0, MonthlyAmount: decimal.NewFromInt(50)},
		{Name: "not yet", StartYear: 9, MonthlyAmount: decimal.NewFromInt(999)},
	}
	got := TotalPassiveIncome(1, streams, decimal.Zero)
	assert.True(t, got.Equal(decimal.NewFromInt(1800)), "got %s", got)

	assert.True(t, TotalPassiveIncome(1, nil, decimal.Zero).IsZero())
}
