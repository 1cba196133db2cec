package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/planwell/retirement-compare/internal/calculation"
	"github.com/planwell/retirement-compare/internal/config"
	"github.com/planwell/retirement-compare/internal/domain"
	"github.com/planwell/retirement-compare/internal/output"
	"github.com/planwell/retirement-compare/internal/server"
)

var (
	rulesFile string
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plancompare",
		Short: "Compare Traditional vs Roth 401(k) outcomes",
		Long: `plancompare projects Traditional and Roth 401(k) strategies over a
working career, finds the optimal contribution split, and reports the
after-tax outcome of each approach.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "optional YAML tax rules file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine details to stderr")

	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newLimitsCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildEngine() (*calculation.ComparisonEngine, error) {
	var rules *domain.TaxRules
	if rulesFile != "" {
		parsed, err := config.NewRulesParser().LoadFromFile(rulesFile)
		if err != nil {
			return nil, err
		}
		rules = parsed
	}
	engine := calculation.NewComparisonEngineWithRules(rules)
	if verbose {
		engine.SetLogger(calculation.StderrLogger{})
	}
	return engine, nil
}

func newCompareCmd() *cobra.Command {
	var inputFile string
	var format string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run a comparison from a YAML request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine()
			if err != nil {
				return err
			}

			var req domain.ComparisonRequest
			if inputFile != "" {
				loaded, err := config.LoadRequest(inputFile)
				if err != nil {
					return err
				}
				req = *loaded
			} else {
				req = domain.DefaultComparisonRequest()
			}

			result, err := engine.Compare(&req)
			if err != nil {
				return err
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q (available: %v)", format, output.AvailableFormatterNames())
			}
			data, err := formatter.Format(result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "YAML request file (defaults to a sample request)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, console-verbose, csv, json")
	return cmd
}

func newLimitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limits <year>",
		Short: "Show 401(k) contribution limits for a plan year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be an integer: %q", args[0])
			}

			engine, err := buildEngine()
			if err != nil {
				return err
			}
			limits, ok := engine.LimitsForYear(year)
			if !ok {
				return fmt.Errorf("year %d not supported", year)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Plan year %d\n", limits.Year)
			fmt.Fprintf(cmd.OutOrStdout(), "  Base limit:         %s\n", output.FormatCurrency(limits.BaseLimit))
			fmt.Fprintf(cmd.OutOrStdout(), "  Catch-up (age %d+): %s\n", limits.CatchupAge, output.FormatCurrency(limits.CatchupLimit))
			fmt.Fprintf(cmd.OutOrStdout(), "  Total with catch-up: %s\n", output.FormatCurrency(limits.TotalWithCatchup))
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	var addr string
	var staticDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comparison API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; environment variables win in production.
			_ = godotenv.Load()

			if addr == "" {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				addr = ":" + port
			}
			if staticDir == "" {
				staticDir = os.Getenv("STATIC_DIR")
			}

			engine, err := buildEngine()
			if err != nil {
				return err
			}

			srv := server.New(server.Config{Addr: addr, StaticDir: staticDir}, engine)
			fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", addr)
			return srv.Run()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to :$PORT or :8080)")
	cmd.Flags().StringVar(&staticDir, "static", "", "directory of static frontend files to serve")
	return cmd
}
