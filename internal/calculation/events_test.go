package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finsim/wealth-simulator/internal/domain"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestApplyEventsThrough(t *testing.T) {
	base := MonthlyFigures{Expenses: dec(2000), Mortgage: dec(1000)}
	events := []domain.FinancialEvent{
		domain.PropertyPurchase{Year: 2, Name: "Buy Flat", NewMonthlyPayment: dec(1200)},
		domain.ExpenseChange{Year: 2, Name: "Kids", MonthlyDelta: dec(500)},
	}

	t.Run("events before the target year leave figures untouched", func(t *testing.T) {
		figures, label := ApplyEventsThrough(1, events, base)
		assert.True(t, figures.Expenses.Equal(dec(2000)))
		assert.True(t, figures.Mortgage.Equal(dec(1000)))
		assert.Empty(t, label)
	})

	t.Run("same-year events apply in input order and share the label", func(t *testing.T) {
		figures, label := ApplyEventsThrough(2, events, base)
		assert.True(t, figures.Expenses.Equal(dec(2500)), "got %s", figures.Expenses)
		assert.True(t, figures.Mortgage.Equal(dec(1200)), "got %s", figures.Mortgage)
		assert.Equal(t, "Buy Flat, Kids", label)
	})

	t.Run("cumulative effects persist but labels do not", func(t *testing.T) {
		figures, label := ApplyEventsThrough(5, events, base)
		assert.True(t, figures.Expenses.Equal(dec(2500)))
		assert.True(t, figures.Mortgage.Equal(dec(1200)))
		assert.Empty(t, label)
	})

	t.Run("sale clears the mortgage payment", func(t *testing.T) {
		withSale := append(events, domain.PropertySale{Year: 4, Name: "Sell Flat"})
		figures, _ := ApplyEventsThrough(4, withSale, base)
		assert.True(t, figures.Mortgage.IsZero())
	})

	t.Run("rental income replaces rather than accumulates", func(t *testing.T) {
		rentals := []domain.FinancialEvent{
			domain.RentalIncome{Year: 1, Name: "First tenant", MonthlyAmount: dec(800)},
			domain.RentalIncome{Year: 3, Name: "Rent rise", MonthlyAmount: dec(950)},
		}
		figures, _ := ApplyEventsThrough(3, rentals, base)
		assert.True(t, figures.Rental.Equal(dec(950)), "got %s", figures.Rental)
	})

	t.Run("windfalls carry no monthly effect", func(t *testing.T) {
		windfall := []domain.FinancialEvent{
			domain.Windfall{Year: 1, Name: "Bonus", Amount: dec(10000)},
			domain.OneTimeExpense{Year: 1, Name: "Roof", Amount: dec(8000)},
		}
		figures, label := ApplyEventsThrough(1, windfall, base)
		assert.True(t, figures.Expenses.Equal(base.Expenses))
		assert.True(t, figures.Mortgage.Equal(base.Mortgage))
		assert.Equal(t, "Bonus, Roof", label)
	})
}

func TestApplyBalanceSheetEvents(t *testing.T) {
	t.Run("purchase moves the down payment and adds the loan", func(t *testing.T) {
		events := []domain.FinancialEvent{domain.PropertyPurchase{
			Year:           3,
			PropertyPrice:  dec(400000),
			DownPayment:    dec(80000),
			MortgageAmount: dec(320000),
		}}
		liquid, property, mortgage := applyBalanceSheetEvents(3, events, dec(100000), dec(0), dec(0))
		assert.True(t, liquid.Equal(dec(20000)), "got %s", liquid)
		assert.True(t, property.Equal(dec(400000)))
		assert.True(t, mortgage.Equal(dec(320000)))
	})

	t.Run("sale nets out the outstanding balance and costs", func(t *testing.T) {
		events := []domain.FinancialEvent{domain.PropertySale{
			Year:         6,
			SalePrice:    dec(500000),
			SellingCosts: dec(15000),
		}}
		liquid, property, mortgage := applyBalanceSheetEvents(6, events, dec(10000), dec(480000), dec(200000))
		assert.True(t, liquid.Equal(dec(295000)), "got %s", liquid)
		assert.True(t, property.IsZero())
		assert.True(t, mortgage.IsZero())
	})

	t.Run("only the exact year fires", func(t *testing.T) {
		events := []domain.FinancialEvent{domain.Windfall{Year: 2, Amount: dec(5000)}}
		liquid, _, _ := applyBalanceSheetEvents(1, events, dec(1000), dec(0), dec(0))
		assert.True(t, liquid.Equal(dec(1000)))
		liquid, _, _ = applyBalanceSheetEvents(3, events, dec(1000), dec(0), dec(0))
		assert.True(t, liquid.Equal(dec(1000)))
	})

	t.Run("windfall and one-time expense adjust liquid wealth", func(t *testing.T) {
		events := []domain.FinancialEvent{
			domain.Windfall{Year: 1, Amount: dec(20000)},
			domain.OneTimeExpense{Year: 1, Amount: dec(3000)},
		}
		liquid, _, _ := applyBalanceSheetEvents(1, events, dec(1000), dec(0), dec(0))
		assert.True(t, liquid.Equal(dec(18000)), "got %s", liquid)
	})
}
