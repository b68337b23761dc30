// Package initialize handles creation of the ledger file
package initialize

import (
	"fmt"
	"io"

	"fjacquet/budget-csv/cmd/common"
	"fjacquet/budget-csv/cmd/root"
	"fjacquet/budget-csv/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the init command
var Cmd = &cobra.Command{
	Use:   "init",
	Short: "Create the ledger file if it does not exist",
	Long: `Create the ledger CSV file with its header row if it does not exist yet.
An existing file is left untouched, so running init twice is harmless.`,
	Run: initFunc,
}

func initFunc(cmd *cobra.Command, args []string) {
	store := root.GetContainer().GetStore()
	if err := runInit(store, store.Path(), cmd.OutOrStdout(), root.GetLogger()); err != nil {
		root.Log.Fatalf("Error initializing ledger: %v", err)
	}
}

func runInit(l common.Ledger, path string, out io.Writer, log logging.Logger) error {
	if err := l.Initialize(); err != nil {
		return err
	}
	log.Debug("Ledger initialized", logging.F(logging.FieldFile, path))
	_, err := fmt.Fprintf(out, "Ledger ready at %s\n", path)
	return err
}
