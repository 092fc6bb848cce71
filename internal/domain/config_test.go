package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validConfig() *SimulationConfig {
	return &SimulationConfig{
		InitialLiquidWealth:     decimal.NewFromInt(50000),
		GrossAnnualIncome:       decimal.NewFromInt(70000),
		EffectiveTaxRate:        decimal.NewFromFloat(0.22),
		PensionContributionRate: decimal.NewFromFloat(0.06),
		ExpectedReturn:          decimal.NewFromFloat(0.05),
		Years:                   20,
		NumPaths:                100,
		StartingAge:             40,
		RetirementAge:           67,
	}
}

func TestSimulationConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	cases := []struct {
		name   string
		mutate func(*SimulationConfig)
		field  string
	}{
		{"no paths", func(c *SimulationConfig) { c.NumPaths = 0 }, "n_simulations"},
		{"negative years", func(c *SimulationConfig) { c.Years = -1 }, "years"},
		{"negative starting age", func(c *SimulationConfig) { c.StartingAge = -1 }, "starting_age"},
		{"negative retirement age", func(c *SimulationConfig) { c.RetirementAge = -5 }, "retirement_age"},
		{"tax rate above one", func(c *SimulationConfig) { c.EffectiveTaxRate = decimal.NewFromFloat(1.5) }, "effective_tax_rate"},
		{"negative pension rate", func(c *SimulationConfig) { c.PensionContributionRate = decimal.NewFromFloat(-0.1) }, "pension_contribution_rate"},
		{
			"tax plus pension above one",
			func(c *SimulationConfig) {
				c.EffectiveTaxRate = decimal.NewFromFloat(0.6)
				c.PensionContributionRate = decimal.NewFromFloat(0.5)
			},
			"pension_contribution_rate",
		},
		{"negative mortgage rate", func(c *SimulationConfig) { c.MortgageInterestRate = decimal.NewFromFloat(-0.01) }, "mortgage_interest_rate"},
		{"negative return volatility", func(c *SimulationConfig) { c.ReturnVolatility = decimal.NewFromFloat(-0.2) }, "return_volatility"},
		{"negative inflation volatility", func(c *SimulationConfig) { c.InflationVolatility = decimal.NewFromFloat(-0.2) }, "inflation_volatility"},
		{"total loss expected return", func(c *SimulationConfig) { c.ExpectedReturn = decimal.NewFromInt(-1) }, "expected_return"},
		{
			"negative spouse age",
			func(c *SimulationConfig) { c.Spouse = &SpouseProfile{Age: -1, RetirementAge: 65} },
			"spouse.age",
		},
		{
			"stream end before start",
			func(c *SimulationConfig) {
				end := 2
				c.PassiveIncomeStreams = []PassiveIncomeStream{{Name: "x", StartYear: 5, EndYear: &end}}
			},
			"passive_income_streams[0].end_year",
		},
		{
			"stream tax rate out of range",
			func(c *SimulationConfig) {
				rate := decimal.NewFromInt(3)
				c.PassiveIncomeStreams = []PassiveIncomeStream{{Name: "x", TaxRate: &rate}}
			},
			"passive_income_streams[0].tax_rate",
		},
		{
			"negative event year",
			func(c *SimulationConfig) { c.Events = EventList{Windfall{Year: -2, Name: "w"}} },
			"events[0].year",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			var invalid *InvalidParameterError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.field, invalid.Field)
		})
	}

	t.Run("zero wealth and income are valid", func(t *testing.T) {
		cfg := validConfig()
		cfg.InitialLiquidWealth = decimal.Zero
		cfg.GrossAnnualIncome = decimal.Zero
		cfg.InitialMortgage = decimal.NewFromInt(-5000)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("zero years is a valid horizon", func(t *testing.T) {
		cfg := validConfig()
		cfg.Years = 0
		assert.NoError(t, cfg.Validate())
	})
}

func TestSimulationConfigYAMLRoundTrip(t *testing.T) {
	end := 12
	rate := decimal.NewFromFloat(0.15)
	cfg := validConfig()
	cfg.Spouse = &SpouseProfile{Age: 38, RetirementAge: 65, GrossAnnualIncome: decimal.NewFromInt(45000)}
	cfg.PassiveIncomeStreams = []PassiveIncomeStream{{
		Name:             "dividends",
		StartYear:        1,
		EndYear:          &end,
		MonthlyAmount:    decimal.NewFromInt(300),
		AnnualGrowthRate: decimal.NewFromFloat(0.04),
		Taxable:          true,
		TaxRate:          &rate,
	}}
	cfg.Events = EventList{
		PropertyPurchase{Year: 3, Name: "Buy", PropertyPrice: decimal.NewFromInt(400000), DownPayment: decimal.NewFromInt(80000), MortgageAmount: decimal.NewFromInt(320000), NewMonthlyPayment: decimal.NewFromInt(1600)},
		Windfall{Year: 7, Name: "Bonus", Amount: decimal.NewFromInt(25000)},
	}

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	var decoded SimulationConfig
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	assert.True(t, decoded.GrossAnnualIncome.Equal(cfg.GrossAnnualIncome))
	require.NotNil(t, decoded.Spouse)
	assert.Equal(t, 38, decoded.Spouse.Age)
	require.Len(t, decoded.PassiveIncomeStreams, 1)
	require.NotNil(t, decoded.PassiveIncomeStreams[0].EndYear)
	assert.Equal(t, 12, *decoded.PassiveIncomeStreams[0].EndYear)
	require.Len(t, decoded.Events, 2)

	purchase, ok := decoded.Events[0].(PropertyPurchase)
	require.True(t, ok, "got %T", decoded.Events[0])
	assert.True(t, purchase.NewMonthlyPayment.Equal(decimal.NewFromInt(1600)))
	windfall, ok := decoded.Events[1].(Windfall)
	require.True(t, ok, "got %T", decoded.Events[1])
	assert.Equal(t, "Bonus", windfall.Name)
}
