package models

import (
	"github.com/shopspring/decimal"
)

// MonthlySeries maps a month to the amount summed over it.
// A month without records of the series' category is absent, never zero-filled.
type MonthlySeries map[Month]decimal.Decimal

// Summary holds the aggregate statistics over a full record set
type Summary struct {
	TotalIncome    decimal.Decimal `json:"total_income" yaml:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense" yaml:"total_expense"`
	NetSaving      decimal.Decimal `json:"net_saving" yaml:"net_saving"`
	MonthlyIncome  MonthlySeries   `json:"monthly_income" yaml:"monthly_income"`
	MonthlyExpense MonthlySeries   `json:"monthly_expense" yaml:"monthly_expense"`
}

// NewSummary returns an all-zero summary with empty, non-nil series
func NewSummary() Summary {
	return Summary{
		TotalIncome:    decimal.Zero,
		TotalExpense:   decimal.Zero,
		NetSaving:      decimal.Zero,
		MonthlyIncome:  MonthlySeries{},
		MonthlyExpense: MonthlySeries{},
	}
}

// Totals is the income, expense and net saving of a set of records
type Totals struct {
	Income    decimal.Decimal `json:"income" yaml:"income"`
	Expense   decimal.Decimal `json:"expense" yaml:"expense"`
	NetSaving decimal.Decimal `json:"net_saving" yaml:"net_saving"`
}
