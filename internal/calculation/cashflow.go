package calculation

import (
	"github.com/finsim/wealth-simulator/internal/domain"
)

// DefaultProjectionCap bounds the deterministic projection length for
// user-facing reports.
const DefaultProjectionCap = 10

// BuildCashFlowProjection produces the deterministic single-path ledger for
// years 0 through min(cfg.Years, maxYears) inclusive, so the default cap
// yields eleven rows and row 0 carries the un-inflated starting figures.
// It shares the income, event, and passive-income arithmetic with the
// stochastic driver but draws no randomness and applies no inflation, so
// every figure is in today's money. A maxYears of zero or less falls back
// to DefaultProjectionCap.
func (e *Engine) BuildCashFlowProjection(cfg *domain.SimulationConfig, maxYears int) ([]domain.CashFlowRow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if maxYears <= 0 {
		maxYears = DefaultProjectionCap
	}
	years := cfg.Years
	if years > maxYears {
		years = maxYears
	}

	base := MonthlyFigures{
		Expenses: cfg.MonthlyExpenses,
		Mortgage: cfg.MonthlyMortgagePayment,
	}

	rows := make([]domain.CashFlowRow, 0, years+1)
	for year := 0; year <= years; year++ {
		figures, label := ApplyEventsThrough(year, cfg.Events, base)
		income := HouseholdIncomeForYear(year, cfg)
		passive := TotalPassiveIncome(year, cfg.PassiveIncomeStreams, cfg.EffectiveTaxRate)

		takeHome := income.TotalTakeHome()
		rental := figures.Rental.Mul(twelve)
		expenses := figures.Expenses.Mul(twelve)
		mortgage := figures.Mortgage.Mul(twelve)
		available := takeHome.Add(passive).Add(rental).Sub(expenses).Sub(mortgage)

		rows = append(rows, domain.CashFlowRow{
			Year:             year,
			Age:              cfg.StartingAge + year,
			TakeHome:         takeHome,
			PensionContrib:   income.TotalPensionContribution(),
			PassiveIncome:    passive,
			RentalIncome:     rental,
			LivingExpenses:   expenses,
			MortgagePayment:  mortgage,
			AvailableSavings: available,
			Events:           label,
		})
	}
	e.Logger.Debugf("built cash-flow projection: %d rows", len(rows))
	return rows, nil
}

// BuildYearOneBreakdown renders the first projection year as a labelled
// ledger and classifies it as surplus or deficit. It uses the year-0
// arithmetic of the multi-year builder, so the gross figure carries no
// salary inflation. Optional lines (passive and rental income) appear only
// when nonzero.
func (e *Engine) BuildYearOneBreakdown(cfg *domain.SimulationConfig) (*domain.YearOneBreakdown, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	figures, _ := ApplyEventsThrough(0, cfg.Events, MonthlyFigures{
		Expenses: cfg.MonthlyExpenses,
		Mortgage: cfg.MonthlyMortgagePayment,
	})
	income := HouseholdIncomeForYear(0, cfg)
	passive := TotalPassiveIncome(0, cfg.PassiveIncomeStreams, cfg.EffectiveTaxRate)

	gross := income.TotalGross()
	pension := income.TotalPensionContribution()
	takeHome := income.TotalTakeHome()
	tax := gross.Sub(pension).Sub(takeHome)
	rental := figures.Rental.Mul(twelve)
	expenses := figures.Expenses.Mul(twelve)
	mortgage := figures.Mortgage.Mul(twelve)

	lines := []domain.LedgerLine{
		{Label: "Gross income", Amount: gross},
		{Label: "Pension contributions", Amount: pension.Neg()},
		{Label: "Tax", Amount: tax.Neg()},
		{Label: "Take-home income", Amount: takeHome},
	}
	if !passive.IsZero() {
		lines = append(lines, domain.LedgerLine{Label: "Passive income", Amount: passive})
	}
	if !rental.IsZero() {
		lines = append(lines, domain.LedgerLine{Label: "Rental income", Amount: rental})
	}
	lines = append(lines,
		domain.LedgerLine{Label: "Living expenses", Amount: expenses.Neg()},
		domain.LedgerLine{Label: "Mortgage payments", Amount: mortgage.Neg()},
	)

	available := takeHome.Add(passive).Add(rental).Sub(expenses).Sub(mortgage)
	verdict := domain.VerdictSurplus
	if available.IsNegative() {
		verdict = domain.VerdictDeficit
	}

	return &domain.YearOneBreakdown{
		Lines:     lines,
		Available: available,
		Verdict:   verdict,
	}, nil
}
