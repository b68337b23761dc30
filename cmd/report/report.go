// Package report handles writing the chart datasets to report files
package report

import (
	"context"
	"fmt"
	"io"

	"fjacquet/budget-csv/cmd/common"
	"fjacquet/budget-csv/cmd/root"
	"fjacquet/budget-csv/internal/logging"
	reporting "fjacquet/budget-csv/internal/report"
	"fjacquet/budget-csv/internal/summary"

	"github.com/spf13/cobra"
)

// Options holds the report command flags
type Options struct {
	Format    string
	OutputDir string
}

var opts Options

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Write the summary datasets to json, yaml or csv files",
	Long: `Write the monthly, proportion and daily datasets behind the summary charts
to <output-dir>/<dataset>.<format>. Format and directory default to report.format and report.directory.`,
	Run: reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&opts.Format, "format", "F", "", "Report format: json, yaml or csv")
	Cmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", "", "Directory receiving the report files")
}

func reportFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()
	o := opts
	if o.Format == "" {
		o.Format = c.GetConfig().Report.Format
	}
	if o.OutputDir == "" {
		o.OutputDir = c.GetConfig().Report.Directory
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := runReport(ctx, c.GetStore(), c.GetReportGenerator(), o, cmd.OutOrStdout(), root.GetLogger()); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
}

func runReport(ctx context.Context, l common.Ledger, g *reporting.Generator, o Options, out io.Writer, log logging.Logger) ([]string, error) {
	records, err := l.All()
	if err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}
	// Every dataset derives from the same read
	paths, err := g.WriteFiles(ctx, o.OutputDir, o.Format, reporting.Datasets(summary.Summarize(records), records))
	if err != nil {
		return nil, err
	}

	log.Info("Report written",
		logging.F(logging.FieldFormat, o.Format),
		logging.F(logging.FieldReportCount, len(paths)))
	for _, p := range paths {
		if _, err := fmt.Fprintln(out, p); err != nil {
			return nil, err
		}
	}
	return paths, nil
}
