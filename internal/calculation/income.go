package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finsim/wealth-simulator/internal/domain"
)

// EarnerIncome is one earner's result for a projection year.
type EarnerIncome struct {
	Gross               decimal.Decimal
	TakeHome            decimal.Decimal
	PensionContribution decimal.Decimal
	Retired             bool
}

// HouseholdIncome combines the primary earner and the spouse for one year.
type HouseholdIncome struct {
	Primary EarnerIncome
	Spouse  EarnerIncome
}

// TotalTakeHome is the household take-home for the year.
func (h HouseholdIncome) TotalTakeHome() decimal.Decimal {
	return h.Primary.TakeHome.Add(h.Spouse.TakeHome)
}

// TotalGross is the combined gross figure (flat pension income counts as
// gross for a retired earner, since no deductions apply to it).
func (h HouseholdIncome) TotalGross() decimal.Decimal {
	return h.Primary.Gross.Add(h.Spouse.Gross)
}

// TotalPensionContribution is the household pension contribution; it is
// zero for every earner already retired.
func (h HouseholdIncome) TotalPensionContribution() decimal.Decimal {
	return h.Primary.PensionContribution.Add(h.Spouse.PensionContribution)
}

// HouseholdIncomeForYear computes take-home income for a projection year.
//
// A working earner's gross grows with salary inflation from the base year;
// take-home subtracts the tax and pension rates straight-line from gross
// (gross × (1 − tax − pension), not nested). From the year the earner's age
// reaches the retirement age, take-home is the configured flat pension
// income exactly, with no salary inflation, tax, or contribution adjustment.
//
// The spouse, when present, mirrors the primary's transition independently
// using the household tax and pension rates; an absent or retired spouse
// contributes zero.
func HouseholdIncomeForYear(year int, cfg *domain.SimulationConfig) HouseholdIncome {
	growth := one.Add(cfg.SalaryInflation).Pow(decimal.NewFromInt(int64(year)))

	primary := earnerIncomeForYear(
		cfg.StartingAge+year, cfg.RetirementAge,
		cfg.GrossAnnualIncome, growth,
		cfg.EffectiveTaxRate, cfg.PensionContributionRate,
		cfg.PensionIncome,
	)

	var spouse EarnerIncome
	if cfg.Spouse != nil {
		spouse = earnerIncomeForYear(
			cfg.Spouse.Age+year, cfg.Spouse.RetirementAge,
			cfg.Spouse.GrossAnnualIncome, growth,
			cfg.EffectiveTaxRate, cfg.PensionContributionRate,
			decimal.Zero,
		)
	}

	return HouseholdIncome{Primary: primary, Spouse: spouse}
}

func earnerIncomeForYear(age, retirementAge int, baseGross, salaryGrowth, taxRate, pensionRate, pensionIncome decimal.Decimal) EarnerIncome {
	if age >= retirementAge {
		return EarnerIncome{
			Gross:    pensionIncome,
			TakeHome: pensionIncome,
			Retired:  true,
		}
	}
	gross := baseGross.Mul(salaryGrowth)
	return EarnerIncome{
		Gross:               gross,
		TakeHome:            gross.Mul(one.Sub(taxRate).Sub(pensionRate)),
		PensionContribution: gross.Mul(pensionRate),
	}
}
