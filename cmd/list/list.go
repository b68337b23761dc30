// Package list handles viewing transactions within a date range
package list

import (
	"io"
	"time"

	"fjacquet/budget-csv/cmd/common"
	"fjacquet/budget-csv/cmd/root"
	"fjacquet/budget-csv/internal/chart"
	"fjacquet/budget-csv/internal/dateutils"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/validation"

	"github.com/spf13/cobra"
)

// Options holds the list command flags
type Options struct {
	Start string
	End   string
	Plot  bool
}

var (
	opts Options
	now  = time.Now
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions within a date range",
	Long: `List the transactions between a start and an end date, both inclusive, followed by
the total income, total expense and net saving of the range.
Without --end the range ends today; without --start it begins query.default_days before the end.`,
	Run: listFunc,
}

func init() {
	Cmd.Flags().StringVarP(&opts.Start, "start", "s", "", "Start date in dd-mm-yyyy format")
	Cmd.Flags().StringVarP(&opts.End, "end", "e", "", "End date in dd-mm-yyyy format (default today)")
	Cmd.Flags().BoolVarP(&opts.Plot, "plot", "p", false, "Draw the daily income and expense chart")
}

func listFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()
	var renderer *chart.Renderer
	if opts.Plot {
		renderer = c.NewRenderer(cmd.OutOrStdout())
	}
	if _, err := runList(c.GetStore(), opts, c.GetConfig().Query.DefaultDays, now(), cmd.OutOrStdout(), renderer, root.GetLogger()); err != nil {
		root.Log.Fatalf("Error listing transactions: %v", err)
	}
}

func runList(l common.Ledger, o Options, defaultDays int, now time.Time, out io.Writer, renderer *chart.Renderer, log logging.Logger) ([]models.Record, error) {
	start, end, err := resolveRange(o, defaultDays, now)
	if err != nil {
		return nil, err
	}
	return common.ViewRange(l, start, end, out, renderer, log)
}

// resolveRange fills in the missing bounds of the requested range
func resolveRange(o Options, defaultDays int, now time.Time) (models.Date, models.Date, error) {
	end, err := validation.ParseDate(o.End, now)
	if err != nil {
		return models.Date{}, models.Date{}, err
	}

	var start models.Date
	if o.Start == "" {
		start = models.DateOf(dateutils.DaysAgo(end.Time(), defaultDays))
	} else if start, err = validation.ParseRequiredDate(o.Start); err != nil {
		return models.Date{}, models.Date{}, err
	}
	return start, end, nil
}
