package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finsim/wealth-simulator/internal/domain"
)

// MonthlyFigures are the running monthly cash-flow amounts that financial
// events act on.
type MonthlyFigures struct {
	Expenses decimal.Decimal
	Mortgage decimal.Decimal
	Rental   decimal.Decimal
}

// ApplyEventsThrough applies every event whose year is at or before the
// target year to the base monthly figures, in input-list order. The effect
// is cumulative: a purchase replaces the monthly mortgage payment, a sale
// zeroes it, an expense change adds its delta, and rental income replaces
// the running rental figure. Windfalls and one-time expenses carry no
// monthly effect; their one-off liquid-wealth impact is applied by the
// simulation driver at the exact event year.
//
// The returned label joins the names of events landing in the target year
// itself; cumulative effects from earlier years stay silent.
func ApplyEventsThrough(year int, events []domain.FinancialEvent, base MonthlyFigures) (MonthlyFigures, string) {
	figures := base
	var names []string
	for _, ev := range events {
		if ev.EventYear() > year {
			continue
		}
		switch e := ev.(type) {
		case domain.PropertyPurchase:
			figures.Mortgage = e.NewMonthlyPayment
		case domain.PropertySale:
			figures.Mortgage = decimal.Zero
		case domain.ExpenseChange:
			figures.Expenses = figures.Expenses.Add(e.MonthlyDelta)
		case domain.RentalIncome:
			figures.Rental = e.MonthlyAmount
		case domain.Windfall, domain.OneTimeExpense:
			// balance-sheet only
		}
		if ev.EventYear() == year {
			names = append(names, ev.EventName())
		}
	}
	return figures, strings.Join(names, ", ")
}

// applyBalanceSheetEvents applies the one-off wealth impacts of events
// landing in exactly the given year: purchase down payments and new loans,
// sale proceeds (the sale pays off the full outstanding balance), windfalls
// and one-time expenses. Monthly-figure effects are ApplyEventsThrough's
// job and are not repeated here.
func applyBalanceSheetEvents(year int, events []domain.FinancialEvent, liquid, property, mortgage decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	for _, ev := range events {
		if ev.EventYear() != year {
			continue
		}
		switch e := ev.(type) {
		case domain.PropertyPurchase:
			liquid = liquid.Sub(e.DownPayment)
			property = property.Add(e.PropertyPrice)
			mortgage = mortgage.Add(e.MortgageAmount)
		case domain.PropertySale:
			proceeds := e.SalePrice.Sub(mortgage).Sub(e.SellingCosts)
			liquid = liquid.Add(proceeds)
			property = decimal.Zero
			mortgage = decimal.Zero
		case domain.Windfall:
			liquid = liquid.Add(e.Amount)
		case domain.OneTimeExpense:
			liquid = liquid.Sub(e.Amount)
		case domain.ExpenseChange, domain.RentalIncome:
			// monthly cash flow only
		}
	}
	return liquid, property, mortgage
}
