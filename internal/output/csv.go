package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/finsim/wealth-simulator/internal/calculation"
	"github.com/finsim/wealth-simulator/internal/domain"
)

// WriteProjectionCSV writes the cash-flow projection with one row per year.
// Amounts are plain decimal strings at cent precision so spreadsheets parse
// them as numbers.
func WriteProjectionCSV(w io.Writer, rows []domain.CashFlowRow) error {
	cw := csv.NewWriter(w)
	header := []string{
		"year", "age", "take_home", "pension_contrib", "passive_income",
		"rental_income", "living_expenses", "mortgage_payment",
		"available_savings", "events",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Year),
			strconv.Itoa(row.Age),
			row.TakeHome.StringFixed(2),
			row.PensionContrib.StringFixed(2),
			row.PassiveIncome.StringFixed(2),
			row.RentalIncome.StringFixed(2),
			row.LivingExpenses.StringFixed(2),
			row.MortgagePayment.StringFixed(2),
			row.AvailableSavings.StringFixed(2),
			row.Events,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBandsCSV writes one row per year of percentile bands.
func WriteBandsCSV(w io.Writer, bands []calculation.PercentileBand) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"year", "p10", "p25", "p50", "p75", "p90"}); err != nil {
		return err
	}
	for year, band := range bands {
		record := []string{
			strconv.Itoa(year),
			band.P10.StringFixed(2),
			band.P25.StringFixed(2),
			band.P50.StringFixed(2),
			band.P75.StringFixed(2),
			band.P90.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
