// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fjacquet/budget-csv/internal/chart"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/summary"
	"fjacquet/budget-csv/internal/validation"
)

// Ledger is the set of store operations the command handlers rely on.
// ledger.Store implements it.
type Ledger interface {
	Initialize() error
	Append(record models.Record) error
	DeleteByDate(date models.Date) (bool, error)
	QueryRange(start, end models.Date) ([]models.Record, error)
	Summarize() (models.Summary, error)
	All() ([]models.Record, error)
}

// AddRecord appends an already validated record and confirms it on out
func AddRecord(l Ledger, record models.Record, out io.Writer, log logging.Logger) error {
	if err := l.Append(record); err != nil {
		return fmt.Errorf("error adding entry: %w", err)
	}
	log.Debug("Entry appended",
		logging.F(logging.FieldDate, record.Date.String()),
		logging.F(logging.FieldAmount, models.FormatAmount(record.Amount)),
		logging.F(logging.FieldCategory, record.Category.String()))
	_, err := fmt.Fprintln(out, "Entry added successfully")
	return err
}

// DeleteRecords removes every entry of date and reports whether any existed
func DeleteRecords(l Ledger, date models.Date, out io.Writer, log logging.Logger) (bool, error) {
	deleted, err := l.DeleteByDate(date)
	if err != nil {
		return false, fmt.Errorf("error deleting entries: %w", err)
	}
	log.Debug("Delete by date finished",
		logging.F(logging.FieldDate, date.String()),
		logging.F(logging.FieldDeleted, deleted))

	if deleted {
		_, err = fmt.Fprintf(out, "Entries for %s have been deleted.\n", date)
	} else {
		_, err = fmt.Fprintf(out, "No entries for %s to delete.\n", date)
	}
	return deleted, err
}

// ViewRange prints the transactions between start and end inclusive followed by their totals.
// With a renderer the daily income and expense chart is drawn as well.
func ViewRange(l Ledger, start, end models.Date, out io.Writer, renderer *chart.Renderer, log logging.Logger) ([]models.Record, error) {
	if err := validation.ValidateRange(start, end); err != nil {
		return nil, err
	}
	records, err := l.QueryRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("error reading transactions: %w", err)
	}
	log.Debug("Range queried",
		logging.F(logging.FieldStartDate, start.String()),
		logging.F(logging.FieldEndDate, end.String()),
		logging.F(logging.FieldCount, len(records)))

	if len(records) == 0 {
		_, err := fmt.Fprintln(out, "No transactions found in the given date range")
		return records, err
	}

	if _, err := fmt.Fprintf(out, "Transactions from %s to %s\n", start, end); err != nil {
		return nil, err
	}
	if err := WriteRecords(out, records); err != nil {
		return nil, err
	}

	totals := summary.RangeTotals(records)
	if _, err := fmt.Fprintf(out, "\nSummary\nTotal Income: %s\nTotal Expense: %s\nNet Saving: %s\n",
		models.FormatMoney(totals.Income),
		models.FormatMoney(totals.Expense),
		models.FormatMoney(totals.NetSaving)); err != nil {
		return nil, err
	}

	if renderer != nil {
		if _, err := fmt.Fprintln(out); err != nil {
			return nil, err
		}
		if err := renderer.Daily(chart.DailySeries(records)); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// ShowSummary prints the overall totals and the monthly breakdown of the whole ledger.
// With a renderer the monthly, net saving and proportion charts follow.
func ShowSummary(l Ledger, out io.Writer, renderer *chart.Renderer, log logging.Logger) (models.Summary, error) {
	s, err := l.Summarize()
	if err != nil {
		return models.Summary{}, fmt.Errorf("error summarizing ledger: %w", err)
	}
	bars := chart.MonthlyBars(s)
	log.Debug("Ledger summarized", logging.F(logging.FieldCount, len(bars)))

	if _, err := fmt.Fprintf(out, "Total Income: %s\nTotal Expense: %s\nNet Saving: %s\n",
		models.FormatMoney(s.TotalIncome),
		models.FormatMoney(s.TotalExpense),
		models.FormatMoney(s.NetSaving)); err != nil {
		return models.Summary{}, err
	}

	if len(bars) > 0 {
		if _, err := fmt.Fprintln(out); err != nil {
			return models.Summary{}, err
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "Month\tIncome\tExpense\tNet Saving\t")
		for _, b := range bars {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", b.Month,
				models.FormatMoney(b.Income), models.FormatMoney(b.Expense), models.FormatMoney(b.NetSaving))
		}
		if err := tw.Flush(); err != nil {
			return models.Summary{}, err
		}
	}

	if renderer != nil {
		for _, draw := range []func() error{
			func() error { return renderer.MonthlyIncomeExpense(bars) },
			func() error { return renderer.MonthlyNetSaving(bars) },
			func() error { return renderer.Proportion(chart.NewProportion(s)) },
		} {
			if _, err := fmt.Fprintln(out); err != nil {
				return models.Summary{}, err
			}
			if err := draw(); err != nil {
				return models.Summary{}, err
			}
		}
	}
	return s, nil
}

// WriteRecords prints records as an aligned table
func WriteRecords(out io.Writer, records []models.Record) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "date\tamount\tcategory\tdescription")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Date, models.FormatAmount(r.Amount), r.Category, r.Description)
	}
	return tw.Flush()
}
