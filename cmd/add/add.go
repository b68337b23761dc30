// Package add handles recording a new income or expense entry
package add

import (
	"io"
	"time"

	"fjacquet/budget-csv/cmd/common"
	"fjacquet/budget-csv/cmd/root"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/validation"

	"github.com/spf13/cobra"
)

// Options holds the add command flags
type Options struct {
	Date        string
	Amount      string
	Category    string
	Description string
}

var (
	opts Options
	now  = time.Now
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add an income or expense entry",
	Long: `Add an income or expense entry to the ledger.
The date uses the dd-mm-yyyy format and defaults to today. The amount must be greater than zero.
The category is I or Income, E or Expense.`,
	Run: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "Transaction date in dd-mm-yyyy format (default today)")
	Cmd.Flags().StringVarP(&opts.Amount, "amount", "a", "", "Transaction amount, greater than zero")
	Cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Category: I (Income) or E (Expense)")
	Cmd.Flags().StringVarP(&opts.Description, "description", "m", "", "Description (optional)")
	_ = Cmd.MarkFlagRequired("amount")
	_ = Cmd.MarkFlagRequired("category")
}

func addFunc(cmd *cobra.Command, args []string) {
	store := root.GetContainer().GetStore()
	if err := runAdd(store, opts, now(), cmd.OutOrStdout(), root.GetLogger()); err != nil {
		root.Log.Fatalf("Error adding entry: %v", err)
	}
}

func runAdd(l common.Ledger, o Options, now time.Time, out io.Writer, log logging.Logger) error {
	record, err := validation.NewRecord(o.Date, o.Amount, o.Category, o.Description, now)
	if err != nil {
		return err
	}
	return common.AddRecord(l, record, out, log)
}
