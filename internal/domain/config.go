package domain

import (
	"github.com/shopspring/decimal"
)

// SimulationConfig is the immutable input bundle for both the stochastic
// simulation driver and the deterministic cash-flow projection builder.
// Monetary fields may be negative (representing debt or deficit) unless
// noted otherwise; rates are decimals (0.25 for 25%).
type SimulationConfig struct {
	// Starting balance sheet
	InitialLiquidWealth  decimal.Decimal `yaml:"initial_liquid_wealth" json:"initial_liquid_wealth"`
	InitialPropertyValue decimal.Decimal `yaml:"initial_property_value" json:"initial_property_value"`
	InitialMortgage      decimal.Decimal `yaml:"initial_mortgage" json:"initial_mortgage"`

	// Income and contributions
	GrossAnnualIncome       decimal.Decimal `yaml:"gross_annual_income" json:"gross_annual_income"`
	EffectiveTaxRate        decimal.Decimal `yaml:"effective_tax_rate" json:"effective_tax_rate"`
	PensionContributionRate decimal.Decimal `yaml:"pension_contribution_rate" json:"pension_contribution_rate"`

	// Monthly budget
	MonthlyExpenses        decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`
	MonthlyMortgagePayment decimal.Decimal `yaml:"monthly_mortgage_payment" json:"monthly_mortgage_payment"`

	// Property and mortgage assumptions
	PropertyAppreciation decimal.Decimal `yaml:"property_appreciation" json:"property_appreciation"`
	MortgageInterestRate decimal.Decimal `yaml:"mortgage_interest_rate" json:"mortgage_interest_rate"`

	// Market assumptions
	ExpectedReturn      decimal.Decimal `yaml:"expected_return" json:"expected_return"`
	ReturnVolatility    decimal.Decimal `yaml:"return_volatility" json:"return_volatility"`
	ExpectedInflation   decimal.Decimal `yaml:"expected_inflation" json:"expected_inflation"`
	InflationVolatility decimal.Decimal `yaml:"inflation_volatility" json:"inflation_volatility"`
	SalaryInflation     decimal.Decimal `yaml:"salary_inflation" json:"salary_inflation"`

	// Horizon and sampling
	Years    int   `yaml:"years" json:"years"`
	NumPaths int   `yaml:"n_simulations" json:"n_simulations"`
	Seed     int64 `yaml:"random_seed" json:"random_seed"`

	// Retirement transition
	StartingAge   int             `yaml:"starting_age" json:"starting_age"`
	RetirementAge int             `yaml:"retirement_age" json:"retirement_age"`
	PensionIncome decimal.Decimal `yaml:"pension_income" json:"pension_income"`

	// Optional household extensions
	Spouse               *SpouseProfile        `yaml:"spouse,omitempty" json:"spouse,omitempty"`
	PassiveIncomeStreams []PassiveIncomeStream `yaml:"passive_income_streams,omitempty" json:"passive_income_streams,omitempty"`
	Events               EventList             `yaml:"events,omitempty" json:"events,omitempty"`
}

// SpouseProfile mirrors the primary earner's retirement transition
// independently. The household tax and pension contribution rates apply;
// a retired or absent spouse contributes zero take-home.
type SpouseProfile struct {
	Age               int             `yaml:"age" json:"age"`
	RetirementAge     int             `yaml:"retirement_age" json:"retirement_age"`
	GrossAnnualIncome decimal.Decimal `yaml:"gross_annual_income" json:"gross_annual_income"`
}

// PassiveIncomeStream is a recurring income source that compounds from its
// own start year. EndYear is exclusive; nil means open-ended. TaxRate, when
// nil on a taxable stream, falls back to the config's effective tax rate.
type PassiveIncomeStream struct {
	Name             string           `yaml:"name" json:"name"`
	StartYear        int              `yaml:"start_year" json:"start_year"`
	EndYear          *int             `yaml:"end_year,omitempty" json:"end_year,omitempty"`
	MonthlyAmount    decimal.Decimal  `yaml:"monthly_amount" json:"monthly_amount"`
	AnnualGrowthRate decimal.Decimal  `yaml:"annual_growth_rate" json:"annual_growth_rate"`
	Taxable          bool             `yaml:"taxable" json:"taxable"`
	TaxRate          *decimal.Decimal `yaml:"tax_rate,omitempty" json:"tax_rate,omitempty"`
}

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalNegOne = decimal.NewFromInt(-1)
)

// Validate checks the configuration for semantically invalid combinations.
// Zero wealth, mortgage, or income values are valid; a batch call must fail
// fast on the first offending field before any path is computed.
func (c *SimulationConfig) Validate() error {
	if c.NumPaths < 1 {
		return &InvalidParameterError{Field: "n_simulations", Reason: "must be at least 1"}
	}
	if c.Years < 0 {
		return &InvalidParameterError{Field: "years", Reason: "must not be negative"}
	}
	if c.StartingAge < 0 {
		return &InvalidParameterError{Field: "starting_age", Reason: "must not be negative"}
	}
	if c.RetirementAge < 0 {
		return &InvalidParameterError{Field: "retirement_age", Reason: "must not be negative"}
	}
	if err := validateRate("effective_tax_rate", c.EffectiveTaxRate); err != nil {
		return err
	}
	if err := validateRate("pension_contribution_rate", c.PensionContributionRate); err != nil {
		return err
	}
	if c.EffectiveTaxRate.Add(c.PensionContributionRate).GreaterThan(decimalOne) {
		return &InvalidParameterError{Field: "pension_contribution_rate", Reason: "tax and pension rates must not exceed 1 combined"}
	}
	if c.MortgageInterestRate.IsNegative() {
		return &InvalidParameterError{Field: "mortgage_interest_rate", Reason: "must not be negative"}
	}
	if c.ReturnVolatility.IsNegative() {
		return &InvalidParameterError{Field: "return_volatility", Reason: "must not be negative"}
	}
	if c.InflationVolatility.IsNegative() {
		return &InvalidParameterError{Field: "inflation_volatility", Reason: "must not be negative"}
	}
	if c.ExpectedReturn.LessThanOrEqual(decimalNegOne) {
		return &InvalidParameterError{Field: "expected_return", Reason: "must be greater than -100%"}
	}
	if c.Spouse != nil {
		if c.Spouse.Age < 0 {
			return &InvalidParameterError{Field: "spouse.age", Reason: "must not be negative"}
		}
		if c.Spouse.RetirementAge < 0 {
			return &InvalidParameterError{Field: "spouse.retirement_age", Reason: "must not be negative"}
		}
	}
	for i, s := range c.PassiveIncomeStreams {
		if s.StartYear < 0 {
			return &InvalidParameterError{Field: indexedField("passive_income_streams", i, "start_year"), Reason: "must not be negative"}
		}
		if s.EndYear != nil && *s.EndYear < s.StartYear {
			return &InvalidParameterError{Field: indexedField("passive_income_streams", i, "end_year"), Reason: "must not precede start_year"}
		}
		if s.TaxRate != nil {
			if err := validateRate(indexedField("passive_income_streams", i, "tax_rate"), *s.TaxRate); err != nil {
				return err
			}
		}
	}
	for i, ev := range c.Events {
		if ev.EventYear() < 0 {
			return &InvalidParameterError{Field: indexedField("events", i, "year"), Reason: "must not be negative"}
		}
	}
	return nil
}

func validateRate(field string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimalOne) {
		return &InvalidParameterError{Field: field, Reason: "must be between 0 and 1"}
	}
	return nil
}
