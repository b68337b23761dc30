// Package chart shapes ledger data into the datasets behind the summary charts
// and renders them as horizontal text bar charts.
package chart

import (
	"sort"

	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/summary"

	"github.com/shopspring/decimal"
)

// MonthlyBar pairs the income, expense and net saving of one month
type MonthlyBar struct {
	Month     models.Month    `json:"month" yaml:"month" csv:"month"`
	Income    decimal.Decimal `json:"income" yaml:"income" csv:"income"`
	Expense   decimal.Decimal `json:"expense" yaml:"expense" csv:"expense"`
	NetSaving decimal.Decimal `json:"net_saving" yaml:"net_saving" csv:"net_saving"`
}

// Proportion holds the income and expense totals with their percentage share of the sum
type Proportion struct {
	Income       decimal.Decimal `json:"income" yaml:"income" csv:"income"`
	Expense      decimal.Decimal `json:"expense" yaml:"expense" csv:"expense"`
	IncomeShare  decimal.Decimal `json:"income_share" yaml:"income_share" csv:"income_share"`
	ExpenseShare decimal.Decimal `json:"expense_share" yaml:"expense_share" csv:"expense_share"`
}

// DailyPoint is the income and expense booked on one day
type DailyPoint struct {
	Date    models.Date     `json:"date" yaml:"date" csv:"date"`
	Income  decimal.Decimal `json:"income" yaml:"income" csv:"income"`
	Expense decimal.Decimal `json:"expense" yaml:"expense" csv:"expense"`
}

var hundred = decimal.NewFromInt(100)

// MonthlyBars lines up both monthly series on the union of their months.
// A month present in only one series gets zero for the other.
func MonthlyBars(s models.Summary) []MonthlyBar {
	months := summary.Months(s)
	income := summary.Align(s.MonthlyIncome, months)
	expense := summary.Align(s.MonthlyExpense, months)

	bars := make([]MonthlyBar, len(months))
	for i, m := range months {
		bars[i] = MonthlyBar{
			Month:     m,
			Income:    income[i],
			Expense:   expense[i],
			NetSaving: income[i].Sub(expense[i]),
		}
	}
	return bars
}

// NewProportion computes the shares of income and expense, rounded to two decimals.
// Both shares are zero when there is nothing to divide.
func NewProportion(s models.Summary) Proportion {
	p := Proportion{
		Income:       s.TotalIncome,
		Expense:      s.TotalExpense,
		IncomeShare:  decimal.Zero,
		ExpenseShare: decimal.Zero,
	}
	total := s.TotalIncome.Add(s.TotalExpense)
	if total.IsZero() {
		return p
	}
	p.IncomeShare = s.TotalIncome.Mul(hundred).Div(total).Round(2)
	p.ExpenseShare = s.TotalExpense.Mul(hundred).Div(total).Round(2)
	return p
}

// DailySeries sums income and expense per day, sorted by date
func DailySeries(records []models.Record) []DailyPoint {
	byDate := make(map[models.Date]*DailyPoint)
	for _, r := range records {
		if !r.Category.IsValid() {
			continue
		}
		p, ok := byDate[r.Date]
		if !ok {
			p = &DailyPoint{Date: r.Date, Income: decimal.Zero, Expense: decimal.Zero}
			byDate[r.Date] = p
		}
		if r.IsIncome() {
			p.Income = p.Income.Add(r.Amount)
		} else {
			p.Expense = p.Expense.Add(r.Amount)
		}
	}

	points := make([]DailyPoint, 0, len(byDate))
	for _, p := range byDate {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
