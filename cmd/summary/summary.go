// Package summary handles the overall ledger summary
package summary

import (
	"io"

	"fjacquet/budget-csv/cmd/common"
	"fjacquet/budget-csv/cmd/root"
	"fjacquet/budget-csv/internal/chart"
	"fjacquet/budget-csv/internal/logging"

	"github.com/spf13/cobra"
)

var plot bool

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize income, expense and net saving",
	Long: `Summarize the whole ledger: total income, total expense, net saving and the
income and expense of every month. With --plot the monthly income and expense,
monthly net saving and income versus expense proportion charts are drawn.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&plot, "plot", "p", false, "Draw the summary charts")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()
	var renderer *chart.Renderer
	if plot {
		renderer = c.NewRenderer(cmd.OutOrStdout())
	}
	if err := runSummary(c.GetStore(), cmd.OutOrStdout(), renderer, root.GetLogger()); err != nil {
		root.Log.Fatalf("Error summarizing ledger: %v", err)
	}
}

func runSummary(l common.Ledger, out io.Writer, renderer *chart.Renderer, log logging.Logger) error {
	_, err := common.ShowSummary(l, out, renderer, log)
	return err
}
