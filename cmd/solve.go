package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"linetemp/calculator"
	"linetemp/model"
)

var (
	asJSON bool

	solveCmd = &cobra.Command{
		Use:   "solve <scenario.yaml>",
		Short: "Solve the equilibrium temperature of every span in a scenario file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			cfg := loadConfig()
			s, err := model.LoadScenario(args[0])
			if err != nil {
				return err
			}
			sol, err := calculator.NewCalculator(cfg).Solve(ctx, s)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sol)
			}
			return printSolution(cmd.OutOrStdout(), cmd.ErrOrStderr(), sol)
		},
	}
)

func init() {
	solveCmd.Flags().BoolVar(&asJSON, "json", false, "print the solution as JSON")
}

// printSolution 表格写到 out，汇总行写到 errOut
func printSolution(out, errOut io.Writer, sol *model.Solution) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SPAN\tT (C)\tJOULE (W/m)\tRADIATIVE (W/m)\tITER\tCONVERGED")
	for _, s := range sol.Spans {
		fmt.Fprintf(w, "%s\t%.3f\t%.4f\t%.4f\t%d\t%t\n",
			s.Name, s.Temperature, s.Terms["joule"], s.Terms["radiative"], s.Iterations, s.Converged)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(errOut, "%d spans solved in %s\n", len(sol.Spans), sol.Elapsed)
	return err
}
