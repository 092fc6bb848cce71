package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finsim/wealth-simulator/internal/domain"
)

// PercentileBand is the spread of a metric across all paths at one year.
type PercentileBand struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// PercentileBandsByYear computes the percentile band for every year column
// of a [path][year] grid. The input grid is not modified.
func PercentileBandsByYear(grid [][]decimal.Decimal) []PercentileBand {
	if len(grid) == 0 {
		return nil
	}
	years := len(grid[0])
	bands := make([]PercentileBand, years)
	column := make([]decimal.Decimal, len(grid))
	for year := 0; year < years; year++ {
		for path := range grid {
			column[path] = grid[path][year]
		}
		sort.Slice(column, func(i, j int) bool {
			return column[i].LessThan(column[j])
		})
		bands[year] = PercentileBand{
			P10: percentileOf(column, 10),
			P25: percentileOf(column, 25),
			P50: percentileOf(column, 50),
			P75: percentileOf(column, 75),
			P90: percentileOf(column, 90),
		}
	}
	return bands
}

// TerminalPercentile returns the given percentile of final-year net worth.
func TerminalPercentile(result *domain.SimulationResult, percentile int) decimal.Decimal {
	column := make([]decimal.Decimal, result.NumPaths)
	for path := range result.NetWorth {
		column[path] = result.NetWorth[path][result.Years]
	}
	sort.Slice(column, func(i, j int) bool {
		return column[i].LessThan(column[j])
	})
	return percentileOf(column, percentile)
}

// MedianFinal is the median final-year net worth across paths.
func MedianFinal(result *domain.SimulationResult) decimal.Decimal {
	return TerminalPercentile(result, 50)
}

// GrowthProbabilities summarizes how often paths end above their starting
// net worth.
type GrowthProbabilities struct {
	AboveInitial   decimal.Decimal `json:"above_initial"`
	DoubledInitial decimal.Decimal `json:"doubled_initial"`
}

// ComputeGrowthProbabilities counts the fraction of paths whose final net
// worth exceeds the initial net worth, and the fraction that at least
// doubled it. Path 0's opening column defines the shared initial value.
func ComputeGrowthProbabilities(result *domain.SimulationResult) GrowthProbabilities {
	if result.NumPaths == 0 {
		return GrowthProbabilities{}
	}
	initial := result.NetWorth[0][0]
	doubled := initial.Mul(decimal.NewFromInt(2))

	var above, twice int64
	for path := range result.NetWorth {
		final := result.NetWorth[path][result.Years]
		if final.GreaterThan(initial) {
			above++
		}
		if final.GreaterThan(doubled) {
			twice++
		}
	}
	total := decimal.NewFromInt(int64(result.NumPaths))
	return GrowthProbabilities{
		AboveInitial:   decimal.NewFromInt(above).Div(total),
		DoubledInitial: decimal.NewFromInt(twice).Div(total),
	}
}

// percentileOf indexes into a sorted slice by rank. The slice must be
// non-empty and sorted ascending.
func percentileOf(sorted []decimal.Decimal, percentile int) decimal.Decimal {
	idx := len(sorted) * percentile / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
