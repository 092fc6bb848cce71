package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/finsim/wealth-simulator/internal/calculation"
	"github.com/finsim/wealth-simulator/internal/domain"
	"github.com/finsim/wealth-simulator/pkg/money"
)

// WriteBreakdownTable renders the year-1 ledger as an aligned console table.
func WriteBreakdownTable(w io.Writer, breakdown *domain.YearOneBreakdown) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year 1 Cash Flow\t\t")
	for _, line := range breakdown.Lines {
		fmt.Fprintf(tw, "%s\t%s\t\n", line.Label, money.Format(line.Amount))
	}
	fmt.Fprintf(tw, "%s\t%s\t\n", strings.ToUpper(breakdown.Verdict), money.Format(breakdown.Available))
	return tw.Flush()
}

// WriteProjectionTable renders the cash-flow projection as a console table.
func WriteProjectionTable(w io.Writer, rows []domain.CashFlowRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tAge\tTake-Home\tPassive\tRental\tExpenses\tMortgage\tAvailable\tEvents\t")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Year, row.Age,
			money.Format(row.TakeHome),
			money.Format(row.PassiveIncome),
			money.Format(row.RentalIncome),
			money.Format(row.LivingExpenses),
			money.Format(row.MortgagePayment),
			money.Format(row.AvailableSavings),
			row.Events,
		)
	}
	return tw.Flush()
}

// WriteSummaryTable renders terminal percentiles and growth probabilities
// for a finished run.
func WriteSummaryTable(w io.Writer, result *domain.SimulationResult) error {
	growth := calculation.ComputeGrowthProbabilities(result)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Net worth after %d years (%d paths)\t\t\n", result.Years, result.NumPaths)
	for _, p := range []int{10, 25, 50, 75, 90} {
		fmt.Fprintf(tw, "P%d\t%s\t\n", p, money.Format(calculation.TerminalPercentile(result, p)))
	}
	fmt.Fprintf(tw, "Ended above start\t%s\t\n", money.FormatPercent(growth.AboveInitial))
	fmt.Fprintf(tw, "At least doubled\t%s\t\n", money.FormatPercent(growth.DoubledInitial))
	return tw.Flush()
}
