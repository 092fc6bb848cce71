package output

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/finsim/wealth-simulator/internal/calculation"
	"github.com/finsim/wealth-simulator/internal/domain"
)

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteResultJSON writes the full per-path result grids as indented JSON.
func WriteResultJSON(w io.Writer, result *domain.SimulationResult) error {
	return encodeJSON(w, result)
}

// simulationSummary is the compact JSON report for a finished run.
type simulationSummary struct {
	NumPaths      int                             `json:"n_simulations"`
	Years         int                             `json:"years"`
	NetWorthBands []calculation.PercentileBand    `json:"net_worth_bands"`
	RealBands     []calculation.PercentileBand    `json:"real_net_worth_bands"`
	Growth        calculation.GrowthProbabilities `json:"growth_probabilities"`
}

// WriteSummaryJSON writes percentile bands and growth probabilities rather
// than the raw grids.
func WriteSummaryJSON(w io.Writer, result *domain.SimulationResult) error {
	return encodeJSON(w, simulationSummary{
		NumPaths:      result.NumPaths,
		Years:         result.Years,
		NetWorthBands: calculation.PercentileBandsByYear(result.NetWorth),
		RealBands:     calculation.PercentileBandsByYear(result.RealNetWorth),
		Growth:        calculation.ComputeGrowthProbabilities(result),
	})
}

// WriteProjectionJSON writes the deterministic cash-flow rows as JSON.
func WriteProjectionJSON(w io.Writer, rows []domain.CashFlowRow) error {
	return encodeJSON(w, rows)
}

// WriteBreakdownJSON writes the year-1 ledger as JSON.
func WriteBreakdownJSON(w io.Writer, breakdown *domain.YearOneBreakdown) error {
	return encodeJSON(w, breakdown)
}
