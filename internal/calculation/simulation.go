package calculation

import (
	"context"
	"math"
	"math/rand"
	"runtime"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/finsim/wealth-simulator/internal/domain"
)

// minInflation floors each realized inflation draw. Deep deflation beyond
// this bound is outside the model's support.
const minInflation = -0.05

// statePrecision bounds the decimal coefficient growth of per-path state
// between years. Well above cent precision, well below unbounded.
const statePrecision = int32(10)

// RunSimulation evolves NumPaths independent wealth paths over the
// configured horizon and returns the full per-path, per-year result grids.
//
// Each path derives its own generator from the master seed and the path
// index, so results are bit-identical for a given (seed, config) pair
// regardless of worker scheduling, and adding paths never perturbs the
// paths that came before. Cancellation via ctx aborts the whole batch;
// no partial result is returned.
func (e *Engine) RunSimulation(ctx context.Context, cfg *domain.SimulationConfig) (*domain.SimulationResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result := domain.NewSimulationResult(cfg.NumPaths, cfg.Years)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.GOMAXPROCS(0), cfg.NumPaths))

	for path := 0; path < cfg.NumPaths; path++ {
		path := path
		g.Go(func() error {
			rng := rand.New(rand.NewSource(pathSeed(cfg.Seed, path)))
			return e.simulatePath(ctx, cfg, rng, result, path)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.Logger.Infof("simulation complete: %d paths over %d years", cfg.NumPaths, cfg.Years)
	return result, nil
}

// simulatePath fills row `path` of every result grid. Workers touch
// disjoint rows, so no locking is needed.
func (e *Engine) simulatePath(ctx context.Context, cfg *domain.SimulationConfig, rng *rand.Rand, result *domain.SimulationResult, path int) error {
	liquid := cfg.InitialLiquidWealth
	pension := decimal.Zero
	property := cfg.InitialPropertyValue
	mortgage := cfg.InitialMortgage

	// Events scheduled for year 0 restate the opening balance sheet.
	liquid, property, mortgage = applyBalanceSheetEvents(0, cfg.Events, liquid, property, mortgage)

	base := MonthlyFigures{
		Expenses: cfg.MonthlyExpenses,
		Mortgage: cfg.MonthlyMortgagePayment,
	}

	cumInflation := one
	recordYear(result, path, 0, liquid, pension, property, mortgage, cumInflation)

	for year := 1; year <= cfg.Years; year++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		// One market draw per year feeds both liquid and pension wealth.
		marketReturn := drawLogNormalReturn(rng, cfg.ExpectedReturn, cfg.ReturnVolatility)
		inflation := drawInflation(rng, cfg.ExpectedInflation, cfg.InflationVolatility)
		cumInflation = cumInflation.Mul(one.Add(inflation))
		result.InflationRates[path][year-1] = inflation

		// Cash flows for the year use the monthly figures as they stood at
		// the end of the previous year; this year's events land afterwards.
		figures, _ := ApplyEventsThrough(year-1, cfg.Events, base)
		income := HouseholdIncomeForYear(year, cfg)
		passive := TotalPassiveIncome(year, cfg.PassiveIncomeStreams, cfg.EffectiveTaxRate)

		expenses := figures.Expenses.Mul(twelve).Mul(cumInflation)
		rental := figures.Rental.Mul(twelve).Mul(cumInflation)
		passiveIncome := passive.Mul(cumInflation)
		// The mortgage payment is contractually fixed and never inflates.
		mortgagePayment := figures.Mortgage.Mul(twelve)

		available := income.TotalTakeHome().
			Add(rental).
			Add(passiveIncome).
			Sub(expenses).
			Sub(mortgagePayment)

		liquid = liquid.Mul(one.Add(marketReturn)).Add(available)
		pension = pension.Mul(one.Add(marketReturn)).Add(income.TotalPensionContribution())
		property = property.Mul(one.Add(cfg.PropertyAppreciation))
		mortgage = amortizeYear(mortgage, cfg.MortgageInterestRate, figures.Mortgage)

		liquid, property, mortgage = applyBalanceSheetEvents(year, cfg.Events, liquid, property, mortgage)

		liquid = liquid.Round(statePrecision)
		pension = pension.Round(statePrecision)
		property = property.Round(statePrecision)
		mortgage = mortgage.Round(statePrecision)
		cumInflation = cumInflation.Round(statePrecision)

		recordYear(result, path, year, liquid, pension, property, mortgage, cumInflation)
	}
	return nil
}

func recordYear(result *domain.SimulationResult, path, year int, liquid, pension, property, mortgage, cumInflation decimal.Decimal) {
	net := liquid.Add(pension).Add(property).Sub(mortgage)
	result.LiquidWealth[path][year] = liquid
	result.PensionWealth[path][year] = pension
	result.PropertyValue[path][year] = property
	result.MortgageBalance[path][year] = mortgage
	result.NetWorth[path][year] = net
	result.RealNetWorth[path][year] = net.Div(cumInflation)
}

// amortizeYear advances the mortgage balance through twelve monthly
// payments. Interest accrues on the running balance; the principal portion
// is never negative, so an underwater payment leaves the balance growing by
// unpaid interest rather than shrinking.
func amortizeYear(balance, annualRate, monthlyPayment decimal.Decimal) decimal.Decimal {
	if balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	monthlyRate := annualRate.Div(twelve)
	for month := 0; month < 12; month++ {
		interest := balance.Mul(monthlyRate)
		principal := monthlyPayment.Sub(interest)
		if principal.IsNegative() {
			principal = decimal.Zero
		}
		balance = balance.Sub(principal)
		if balance.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero
		}
	}
	return balance
}

// pathSeed mixes the master seed with the path index so every path gets an
// independent, order-insensitive generator.
func pathSeed(master int64, path int) int64 {
	z := uint64(master) + uint64(path+1)*0x9E3779B97F4A7C15
	z ^= z >> 30
	z *= 0xBF58476D1CE4E5B9
	z ^= z >> 27
	z *= 0x94D049BB133111EB
	z ^= z >> 31
	return int64(z)
}

// drawLogNormalReturn samples an annual market return whose gross factor
// (1 + r) is log-normal with the configured arithmetic mean kept as the
// location parameter's base, so zero volatility reproduces the expected
// return exactly.
func drawLogNormalReturn(rng *rand.Rand, expectedReturn, volatility decimal.Decimal) decimal.Decimal {
	mean, _ := expectedReturn.Float64()
	sigma, _ := volatility.Float64()
	mu := math.Log1p(mean) - 0.5*sigma*sigma
	return decimal.NewFromFloat(math.Expm1(mu + sigma*rng.NormFloat64()))
}

// drawInflation samples a normal annual inflation rate, floored at
// minInflation.
func drawInflation(rng *rand.Rand, expectedInflation, volatility decimal.Decimal) decimal.Decimal {
	mean, _ := expectedInflation.Float64()
	sigma, _ := volatility.Float64()
	rate := mean + sigma*rng.NormFloat64()
	if rate < minInflation {
		rate = minInflation
	}
	return decimal.NewFromFloat(rate)
}
