package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/finsim/wealth-simulator/internal/calculation"
	"github.com/finsim/wealth-simulator/internal/config"
	"github.com/finsim/wealth-simulator/internal/output"
	"github.com/finsim/wealth-simulator/internal/storage"
)

var (
	configPath string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wealthsim",
		Short: "Household wealth projection and Monte Carlo simulation",
		Long: `wealthsim projects a household's finances over a multi-decade horizon.

It runs stochastic multi-path simulations of net worth (liquid investments,
pension, property, and mortgage) and deterministic cash-flow projections,
driven by a single YAML configuration file.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSimulateCmd())
	root.AddCommand(newProjectionCmd())
	root.AddCommand(newBreakdownCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newRunsCmd())
	return root
}

func newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	if verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			engine.SetLogger(calculation.NewZapLogger(logger))
		}
	}
	return engine
}

func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func newSimulateCmd() *cobra.Command {
	var (
		outputPath string
		format     string
		storePath  string
		runName    string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the multi-path wealth simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			result, err := newEngine().RunSimulation(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if storePath != "" {
				store, err := storage.Open(storePath)
				if err != nil {
					return err
				}
				defer store.Close()
				id, err := store.SaveRun(cmd.Context(), runName, cfg, result)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved run %d to %s\n", id, storePath)
			}

			w, closeFn, err := openOutput(outputPath)
			if err != nil {
				return err
			}
			defer closeFn()

			switch format {
			case "table":
				return output.WriteSummaryTable(w, result)
			case "json":
				return output.WriteSummaryJSON(w, result)
			case "full":
				return output.WriteResultJSON(w, result)
			case "csv":
				return output.WriteBandsCSV(w, calculation.PercentileBandsByYear(result.NetWorth))
			default:
				return fmt.Errorf("unknown format %q (want table, json, full, or csv)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json, full, or csv")
	cmd.Flags().StringVar(&storePath, "store", "", "SQLite file to persist the run in")
	cmd.Flags().StringVar(&runName, "name", "unnamed run", "display name when persisting the run")
	return cmd
}

func newProjectionCmd() *cobra.Command {
	var (
		outputPath string
		format     string
		years      int
	)

	cmd := &cobra.Command{
		Use:   "projection",
		Short: "Build the deterministic cash-flow projection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			rows, err := newEngine().BuildCashFlowProjection(cfg, years)
			if err != nil {
				return err
			}

			w, closeFn, err := openOutput(outputPath)
			if err != nil {
				return err
			}
			defer closeFn()

			switch format {
			case "table":
				return output.WriteProjectionTable(w, rows)
			case "json":
				return output.WriteProjectionJSON(w, rows)
			case "csv":
				return output.WriteProjectionCSV(w, rows)
			default:
				return fmt.Errorf("unknown format %q (want table, json, or csv)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json, or csv")
	cmd.Flags().IntVar(&years, "years", calculation.DefaultProjectionCap, "number of years to project")
	return cmd
}

func newBreakdownCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Show the first-year cash-flow ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			breakdown, err := newEngine().BuildYearOneBreakdown(cfg)
			if err != nil {
				return err
			}

			switch format {
			case "table":
				return output.WriteBreakdownTable(cmd.OutOrStdout(), breakdown)
			case "json":
				return output.WriteBreakdownJSON(cmd.OutOrStdout(), breakdown)
			default:
				return fmt.Errorf("unknown format %q (want table or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or json")
	return cmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write an example configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteExample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote example configuration to %s\n", path)
			return nil
		},
	}
}

func newRunsCmd() *cobra.Command {
	var storePath string

	runs := &cobra.Command{
		Use:   "runs",
		Short: "Manage persisted simulation runs",
	}
	runs.PersistentFlags().StringVar(&storePath, "store", "wealthsim.db", "SQLite file holding persisted runs")

	list := &cobra.Command{
		Use:   "list",
		Short: "List persisted runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.Open(storePath)
			if err != nil {
				return err
			}
			defer store.Close()

			summaries, err := store.ListRuns(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range summaries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d paths x %d years\n",
					s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.Name, s.NumPaths, s.Years)
			}
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a persisted run's summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid run id %q", args[0])
			}
			store, err := storage.Open(storePath)
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.LoadRun(cmd.Context(), id)
			if err != nil {
				return err
			}
			return output.WriteSummaryTable(cmd.OutOrStdout(), run.Result)
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a persisted run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid run id %q", args[0])
			}
			store, err := storage.Open(storePath)
			if err != nil {
				return err
			}
			defer store.Close()
			return store.DeleteRun(cmd.Context(), id)
		},
	}

	runs.AddCommand(list, show, del)
	return runs
}
