package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finsim/wealth-simulator/internal/domain"
)

// PassiveIncomeForYear computes a single stream's annual contribution in
// the given projection year. Growth compounds from the stream's own start
// year, not from year 0 of the simulation, so two streams starting in
// different years never share a compounding base. A stream contributes
// nothing before its start year or at/after its end year.
func PassiveIncomeForYear(year int, stream domain.PassiveIncomeStream, defaultTaxRate decimal.Decimal) decimal.Decimal {
	if year < stream.StartYear {
		return decimal.Zero
	}
	if stream.EndYear != nil && year >= *stream.EndYear {
		return decimal.Zero
	}
	yearsActive := int64(year - stream.StartYear)
	growth := one.Add(stream.AnnualGrowthRate).Pow(decimal.NewFromInt(yearsActive))
	annual := stream.MonthlyAmount.Mul(twelve).Mul(growth)
	if stream.Taxable {
		rate := defaultTaxRate
		if stream.TaxRate != nil {
			rate = *stream.TaxRate
		}
		annual = annual.Mul(one.Sub(rate))
	}
	return annual
}

// TotalPassiveIncome sums all streams' contributions for a year.
func TotalPassiveIncome(year int, streams []domain.PassiveIncomeStream, defaultTaxRate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, stream := range streams {
		total = total.Add(PassiveIncomeForYear(year, stream, defaultTaxRate))
	}
	return total
}
