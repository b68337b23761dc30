// Package export handles copying the ledger into a SQLite database
package export

import (
	"context"
	"fmt"
	"io"

	"fjacquet/budget-csv/cmd/common"
	"fjacquet/budget-csv/cmd/root"
	sqliteexport "fjacquet/budget-csv/internal/export"
	"fjacquet/budget-csv/internal/logging"

	"github.com/spf13/cobra"
)

var sqlitePath string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to a SQLite database",
	Long: `Export every ledger entry, in file order, into the records table of a SQLite database.
Previous content of the table is replaced and each export is logged in the exports table.`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&sqlitePath, "sqlite", "s", "", "SQLite database file (default from export.sqlite_path)")
}

func exportFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()
	path := sqlitePath
	if path == "" {
		path = c.GetConfig().Export.SQLitePath
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := runExport(ctx, c.GetStore(), c.GetExporter(), path, c.GetStore().Path(), cmd.OutOrStdout(), root.GetLogger()); err != nil {
		root.Log.Fatalf("Error exporting ledger: %v", err)
	}
}

func runExport(ctx context.Context, l common.Ledger, e *sqliteexport.SQLiteExporter, dbPath, source string, out io.Writer, log logging.Logger) (sqliteexport.Result, error) {
	records, err := l.All()
	if err != nil {
		return sqliteexport.Result{}, fmt.Errorf("error reading ledger: %w", err)
	}

	result, err := e.Export(ctx, dbPath, source, records)
	if err != nil {
		return sqliteexport.Result{}, err
	}

	log.Debug("Export finished", logging.F(logging.FieldOutputFile, dbPath))
	_, err = fmt.Fprintf(out, "Exported %d entries to %s (export %s)\n", result.RecordCount, dbPath, result.ID)
	return result, err
}
