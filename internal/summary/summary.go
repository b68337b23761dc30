// Package summary derives totals and monthly series from a set of ledger records.
package summary

import (
	"sort"

	"fjacquet/budget-csv/internal/models"

	"github.com/shopspring/decimal"
)

// Summarize computes total income, total expense, net saving and the per-month
// income and expense series. Records with an unknown category are ignored.
func Summarize(records []models.Record) models.Summary {
	s := models.NewSummary()

	for _, r := range records {
		month := r.Date.Month()
		switch r.Category {
		case models.CategoryIncome:
			s.TotalIncome = s.TotalIncome.Add(r.Amount)
			s.MonthlyIncome[month] = s.MonthlyIncome[month].Add(r.Amount)
		case models.CategoryExpense:
			s.TotalExpense = s.TotalExpense.Add(r.Amount)
			s.MonthlyExpense[month] = s.MonthlyExpense[month].Add(r.Amount)
		}
	}

	s.NetSaving = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// RangeTotals sums income and expense over records, typically the result of a range query
func RangeTotals(records []models.Record) models.Totals {
	totals := models.Totals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, r := range records {
		switch r.Category {
		case models.CategoryIncome:
			totals.Income = totals.Income.Add(r.Amount)
		case models.CategoryExpense:
			totals.Expense = totals.Expense.Add(r.Amount)
		}
	}
	totals.NetSaving = totals.Income.Sub(totals.Expense)
	return totals
}

// Months returns the sorted union of the month keys of both series
func Months(s models.Summary) []models.Month {
	seen := make(map[models.Month]struct{}, len(s.MonthlyIncome)+len(s.MonthlyExpense))
	for m := range s.MonthlyIncome {
		seen[m] = struct{}{}
	}
	for m := range s.MonthlyExpense {
		seen[m] = struct{}{}
	}
	return sortedMonths(seen)
}

// SeriesMonths returns the sorted keys of a single series
func SeriesMonths(series models.MonthlySeries) []models.Month {
	seen := make(map[models.Month]struct{}, len(series))
	for m := range series {
		seen[m] = struct{}{}
	}
	return sortedMonths(seen)
}

// Align reindexes series against months, filling missing months with zero.
// The result has one value per month, in the order given.
func Align(series models.MonthlySeries, months []models.Month) []decimal.Decimal {
	values := make([]decimal.Decimal, len(months))
	for i, m := range months {
		if v, ok := series[m]; ok {
			values[i] = v
		} else {
			values[i] = decimal.Zero
		}
	}
	return values
}

func sortedMonths(set map[models.Month]struct{}) []models.Month {
	months := make([]models.Month, 0, len(set))
	for m := range set {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i] < months[j]
	})
	return months
}
