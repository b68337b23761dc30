// Package interactive provides a menu driven session over the ledger
package interactive

import (
	"errors"
	"fmt"
	"io"
	"time"

	"fjacquet/budget-csv/cmd/common"
	"fjacquet/budget-csv/cmd/root"
	"fjacquet/budget-csv/internal/chart"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/prompt"
	"fjacquet/budget-csv/internal/validation"

	"github.com/spf13/cobra"
)

const menu = `
1. Add a new transaction
2. View transactions and summary within a date range
3. Delete transactions by date
4. Show overall summary
5. Exit
`

var now = time.Now

// Cmd represents the interactive command
var Cmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run an interactive menu session",
	Long: `Run a menu driven session to add, view, delete and summarize ledger entries.
Invalid answers are asked again; the session ends on Exit or end of input.`,
	Run: interactiveFunc,
}

func interactiveFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()
	session := &session{
		ledger:   c.GetStore(),
		prompter: prompt.New(cmd.InOrStdin(), cmd.OutOrStdout(), prompt.DefaultMaxAttempts),
		out:      cmd.OutOrStdout(),
		renderer: c.NewRenderer(cmd.OutOrStdout()),
		log:      root.GetLogger(),
	}
	if err := session.run(); err != nil {
		root.Log.Fatalf("Interactive session failed: %v", err)
	}
}

type session struct {
	ledger   common.Ledger
	prompter *prompt.Prompter
	out      io.Writer
	renderer *chart.Renderer
	log      logging.Logger
}

// run shows the menu until the user exits. Ledger errors are reported and the menu shown again.
func (s *session) run() error {
	for {
		if _, err := fmt.Fprint(s.out, menu); err != nil {
			return err
		}
		choice, err := s.prompter.Choice("Enter your choice (1-5): ", "1", "2", "3", "4", "5")
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case "1":
			err = s.add()
		case "2":
			err = s.view()
		case "3":
			err = s.delete()
		case "4":
			_, err = common.ShowSummary(s.ledger, s.out, s.renderer, s.log)
		case "5":
			_, err = fmt.Fprintln(s.out, "Exiting...")
			return err
		}

		if errors.Is(err, prompt.ErrAborted) {
			return s.finish(err)
		}
		if err != nil {
			s.log.WithError(err).Warn("Menu action failed")
			if _, werr := fmt.Fprintf(s.out, "Error: %v\n", err); werr != nil {
				return werr
			}
		}
	}
}

// finish ends the session quietly when the input ran out
func (s *session) finish(err error) error {
	if errors.Is(err, prompt.ErrAborted) {
		_, werr := fmt.Fprintln(s.out, "\nExiting...")
		return werr
	}
	return err
}

func (s *session) add() error {
	date, err := s.prompter.Date("Enter the date of the transaction (dd-mm-yyyy) or press enter for today's date: ", true, now())
	if err != nil {
		return err
	}
	amount, err := s.prompter.Amount("Enter the amount: ")
	if err != nil {
		return err
	}
	category, err := s.prompter.Category("Enter the category ('I' for Income or 'E' for Expense): ")
	if err != nil {
		return err
	}
	description, err := s.prompter.Description("Enter a description (optional): ")
	if err != nil {
		return err
	}
	return common.AddRecord(s.ledger, models.NewRecord(date, amount, category, description), s.out, s.log)
}

func (s *session) view() error {
	start, err := s.prompter.Date("Enter the start date (dd-mm-yyyy): ", false, now())
	if err != nil {
		return err
	}
	end, err := prompt.Ask(s.prompter, "Enter the end date (dd-mm-yyyy): ", func(input string) (models.Date, error) {
		end, err := validation.ParseRequiredDate(input)
		if err != nil {
			return models.Date{}, err
		}
		return end, validation.ValidateRange(start, end)
	})
	if err != nil {
		return err
	}
	plot, err := s.prompter.Choice("Do you want to see a plot? (y/n) ", "y", "n", "Y", "N")
	if err != nil {
		return err
	}

	var renderer *chart.Renderer
	if plot == "y" || plot == "Y" {
		renderer = s.renderer
	}
	_, err = common.ViewRange(s.ledger, start, end, s.out, renderer, s.log)
	return err
}

func (s *session) delete() error {
	date, err := s.prompter.Date("Enter the date of the entries to delete (dd-mm-yyyy): ", false, now())
	if err != nil {
		return err
	}
	_, err = common.DeleteRecords(s.ledger, date, s.out, s.log)
	return err
}
