package config

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/finsim/wealth-simulator/internal/domain"
)

// Load reads and validates a simulation configuration from a YAML file.
func Load(path string) (*domain.SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file: %w", err)
	}
	return parse(data)
}

// LoadFromReader reads and validates a simulation configuration from YAML.
func LoadFromReader(r io.Reader) (*domain.SimulationConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*domain.SimulationConfig, error) {
	var cfg domain.SimulationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// WriteExample writes a complete, valid example configuration to path. It
// refuses to overwrite an existing file.
func WriteExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing file %s", path)
	}
	data, err := yaml.Marshal(ExampleConfig())
	if err != nil {
		return fmt.Errorf("encoding example configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing example configuration: %w", err)
	}
	return nil
}

// ExampleConfig returns a fully populated configuration that exercises
// every optional feature: a spouse, passive income streams, and one event
// of each kind that affects the monthly ledger.
func ExampleConfig() *domain.SimulationConfig {
	endYear := 20
	streamTax := decimal.NewFromFloat(0.15)
	return &domain.SimulationConfig{
		InitialLiquidWealth:  decimal.NewFromInt(150000),
		InitialPropertyValue: decimal.NewFromInt(450000),
		InitialMortgage:      decimal.NewFromInt(300000),

		GrossAnnualIncome:       decimal.NewFromInt(80000),
		EffectiveTaxRate:        decimal.NewFromFloat(0.25),
		PensionContributionRate: decimal.NewFromFloat(0.08),

		MonthlyExpenses:        decimal.NewFromInt(2500),
		MonthlyMortgagePayment: decimal.NewFromFloat(1501.87),

		PropertyAppreciation: decimal.NewFromFloat(0.03),
		MortgageInterestRate: decimal.NewFromFloat(0.035),

		ExpectedReturn:      decimal.NewFromFloat(0.06),
		ReturnVolatility:    decimal.NewFromFloat(0.15),
		ExpectedInflation:   decimal.NewFromFloat(0.02),
		InflationVolatility: decimal.NewFromFloat(0.01),
		SalaryInflation:     decimal.NewFromFloat(0.03),

		Years:    30,
		NumPaths: 1000,
		Seed:     42,

		StartingAge:   35,
		RetirementAge: 67,
		PensionIncome: decimal.NewFromInt(30000),

		Spouse: &domain.SpouseProfile{
			Age:               33,
			RetirementAge:     65,
			GrossAnnualIncome: decimal.NewFromInt(55000),
		},
		PassiveIncomeStreams: []domain.PassiveIncomeStream{
			{
				Name:             "Dividend portfolio",
				StartYear:        1,
				MonthlyAmount:    decimal.NewFromInt(200),
				AnnualGrowthRate: decimal.NewFromFloat(0.04),
				Taxable:          true,
				TaxRate:          &streamTax,
			},
			{
				Name:             "Book royalties",
				StartYear:        3,
				EndYear:          &endYear,
				MonthlyAmount:    decimal.NewFromInt(350),
				AnnualGrowthRate: decimal.NewFromFloat(-0.05),
				Taxable:          false,
			},
		},
		Events: domain.EventList{
			domain.RentalIncome{
				Year:          2,
				Name:          "Let the spare flat",
				MonthlyAmount: decimal.NewFromInt(900),
			},
			domain.ExpenseChange{
				Year:         5,
				Name:         "School fees",
				MonthlyDelta: decimal.NewFromInt(600),
			},
			domain.Windfall{
				Year:   8,
				Name:   "Inheritance",
				Amount: decimal.NewFromInt(50000),
			},
			domain.PropertySale{
				Year:         22,
				Name:         "Downsize",
				SalePrice:    decimal.NewFromInt(700000),
				SellingCosts: decimal.NewFromInt(21000),
			},
		},
	}
}
