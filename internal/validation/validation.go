// Package validation checks user input before it reaches the ledger.
// The ledger itself stores whatever it is given, so every command goes through here first.
package validation

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/parsererror"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a strictly positive amount
func ParseAmount(input string) (decimal.Decimal, error) {
	amount, err := models.ParseAmount(input)
	if err != nil {
		return decimal.Zero, &parsererror.ValidationError{
			Field:  models.ColumnAmount,
			Value:  input,
			Reason: "not a number",
		}
	}
	if !amount.IsPositive() {
		return decimal.Zero, &parsererror.ValidationError{
			Field:  models.ColumnAmount,
			Value:  input,
			Reason: "must be greater than zero",
		}
	}
	return amount, nil
}

// ParseCategory accepts Income or Expense, or their one-letter codes I and E, in any case
func ParseCategory(input string) (models.Category, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "i", "income":
		return models.CategoryIncome, nil
	case "e", "expense":
		return models.CategoryExpense, nil
	case "":
		return "", &parsererror.ValidationError{
			Field:  models.ColumnCategory,
			Reason: "value required ('I' for Income or 'E' for Expense)",
		}
	default:
		return "", &parsererror.ValidationError{
			Field:  models.ColumnCategory,
			Value:  input,
			Reason: "enter 'I' for Income or 'E' for Expense",
		}
	}
}

// ParseDate parses a DD-MM-YYYY date. An empty input stands for the day of now.
func ParseDate(input string, now time.Time) (models.Date, error) {
	if strings.TrimSpace(input) == "" {
		return models.DateOf(now), nil
	}
	return ParseRequiredDate(input)
}

// ParseRequiredDate parses a DD-MM-YYYY date and rejects empty input
func ParseRequiredDate(input string) (models.Date, error) {
	if strings.TrimSpace(input) == "" {
		return models.Date{}, &parsererror.ValidationError{
			Field:  models.ColumnDate,
			Reason: "value required in dd-mm-yyyy format",
		}
	}
	date, err := models.ParseDate(input)
	if err != nil {
		return models.Date{}, &parsererror.ValidationError{
			Field:  models.ColumnDate,
			Value:  input,
			Reason: "please enter the date in dd-mm-yyyy format",
		}
	}
	return date, nil
}

// ValidateRange rejects a range whose start lies after its end
func ValidateRange(start, end models.Date) error {
	if start.After(end) {
		return &parsererror.ValidationError{
			Field:  "range",
			Value:  fmt.Sprintf("%s..%s", start, end),
			Reason: "start date must not be after end date",
		}
	}
	return nil
}

// NewRecord validates every raw field and assembles the record to append
func NewRecord(date, amount, category, description string, now time.Time) (models.Record, error) {
	d, err := ParseDate(date, now)
	if err != nil {
		return models.Record{}, err
	}
	a, err := ParseAmount(amount)
	if err != nil {
		return models.Record{}, err
	}
	c, err := ParseCategory(category)
	if err != nil {
		return models.Record{}, err
	}
	return models.NewRecord(d, a, c, description), nil
}

// IsValidOutputFormat checks if the given report format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case "json", "yaml", "csv":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'json', 'yaml', 'csv'", format)
	}
}
