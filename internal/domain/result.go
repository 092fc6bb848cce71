package domain

import (
	"github.com/shopspring/decimal"
)

// SimulationResult holds the full per-path, per-year output of a simulation
// run. Wealth arrays are indexed [path][year] with years+1 columns (column 0
// is the initial state); InflationRates has years columns, one realized draw
// per simulated year. The result is created once per driver invocation and
// is immutable after return; downstream percentile reporting requires the
// complete distribution, never a subset.
type SimulationResult struct {
	NetWorth        [][]decimal.Decimal `json:"net_worth"`
	RealNetWorth    [][]decimal.Decimal `json:"real_net_worth"`
	LiquidWealth    [][]decimal.Decimal `json:"liquid_wealth"`
	PensionWealth   [][]decimal.Decimal `json:"pension_wealth"`
	PropertyValue   [][]decimal.Decimal `json:"property_value"`
	MortgageBalance [][]decimal.Decimal `json:"mortgage_balance"`
	InflationRates  [][]decimal.Decimal `json:"inflation_rates"`

	NumPaths int `json:"n_simulations"`
	Years    int `json:"years"`
}

// NewSimulationResult allocates a result grid for the given dimensions.
func NewSimulationResult(numPaths, years int) *SimulationResult {
	return &SimulationResult{
		NetWorth:        newGrid(numPaths, years+1),
		RealNetWorth:    newGrid(numPaths, years+1),
		LiquidWealth:    newGrid(numPaths, years+1),
		PensionWealth:   newGrid(numPaths, years+1),
		PropertyValue:   newGrid(numPaths, years+1),
		MortgageBalance: newGrid(numPaths, years+1),
		InflationRates:  newGrid(numPaths, years),
		NumPaths:        numPaths,
		Years:           years,
	}
}

func newGrid(rows, cols int) [][]decimal.Decimal {
	grid := make([][]decimal.Decimal, rows)
	backing := make([]decimal.Decimal, rows*cols)
	for i := range grid {
		grid[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return grid
}

// CashFlowRow is one year of the deterministic cash-flow projection.
// AvailableSavings = take-home + passive + rental − expenses − mortgage
// (all annualized). Rows are immutable once produced; Events lists the
// names of events landing in this exact year.
type CashFlowRow struct {
	Year             int             `json:"year"`
	Age              int             `json:"age"`
	TakeHome         decimal.Decimal `json:"take_home"`
	PensionContrib   decimal.Decimal `json:"pension_contrib"`
	PassiveIncome    decimal.Decimal `json:"passive_income"`
	RentalIncome     decimal.Decimal `json:"rental_income"`
	LivingExpenses   decimal.Decimal `json:"living_expenses"`
	MortgagePayment  decimal.Decimal `json:"mortgage_payment"`
	AvailableSavings decimal.Decimal `json:"available_savings"`
	Events           string          `json:"events"`
}

// Verdict classifies a year's cash flow by the sign of available savings.
const (
	VerdictSurplus = "surplus"
	VerdictDeficit = "deficit"
)

// LedgerLine is a single labelled amount in the year-1 breakdown.
type LedgerLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// YearOneBreakdown is the line-item ledger for the first projection year.
// It uses the exact arithmetic of the multi-year builder's first row, so
// the two can never disagree for the same inputs.
type YearOneBreakdown struct {
	Lines     []LedgerLine    `json:"lines"`
	Available decimal.Decimal `json:"available"`
	Verdict   string          `json:"verdict"`
}
