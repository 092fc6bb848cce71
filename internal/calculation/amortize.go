package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// MonthlyMortgagePayment converts a loan into its fixed monthly payment
// using the standard annuity formula P·i·(1+i)^n / ((1+i)^n − 1) with
// i = annualRate/12 and n = 12·termYears.
//
// The limit cases are evaluated in closed form rather than caught as
// errors: zero principal or zero months pays nothing, and a zero rate pays
// P/n. Negative inputs clamp to the same limits; the payment is a derived
// display quantity, not a validated business constraint.
func MonthlyMortgagePayment(principal, annualRate decimal.Decimal, termYears int) decimal.Decimal {
	months := int64(termYears) * 12
	if principal.Sign() <= 0 || months <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(months)
	if annualRate.Sign() <= 0 {
		return principal.Div(n)
	}
	monthlyRate := annualRate.Div(twelve)
	compound := one.Add(monthlyRate).Pow(n)
	return principal.Mul(monthlyRate).Mul(compound).Div(compound.Sub(one))
}
