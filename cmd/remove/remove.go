// Package remove handles deletion of every entry recorded on a given date
package remove

import (
	"io"

	"fjacquet/budget-csv/cmd/common"
	"fjacquet/budget-csv/cmd/root"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/validation"

	"github.com/spf13/cobra"
)

var date string

// Cmd represents the delete command
var Cmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Delete all entries of a date",
	Long: `Delete every entry recorded on the given dd-mm-yyyy date.
Entries have no identity beyond their date, so all entries sharing the date are removed.
The ledger file is left untouched when no entry matches.`,
	Run: deleteFunc,
}

func init() {
	Cmd.Flags().StringVarP(&date, "date", "d", "", "Date of the entries to delete, dd-mm-yyyy")
	_ = Cmd.MarkFlagRequired("date")
}

func deleteFunc(cmd *cobra.Command, args []string) {
	store := root.GetContainer().GetStore()
	if _, err := runDelete(store, date, cmd.OutOrStdout(), root.GetLogger()); err != nil {
		root.Log.Fatalf("Error deleting entries: %v", err)
	}
}

func runDelete(l common.Ledger, input string, out io.Writer, log logging.Logger) (bool, error) {
	d, err := validation.ParseRequiredDate(input)
	if err != nil {
		return false, err
	}
	return common.DeleteRecords(l, d, out, log)
}
