// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/budget-csv/internal/dateutils"

	"github.com/shopspring/decimal"
)

// Category classifies a record as money coming in or going out
type Category string

const (
	CategoryIncome  Category = "Income"
	CategoryExpense Category = "Expense"
)

// Categories lists the accepted category values in display order
var Categories = []Category{CategoryIncome, CategoryExpense}

// IsValid reports whether c is one of the two known categories
func (c Category) IsValid() bool {
	return c == CategoryIncome || c == CategoryExpense
}

func (c Category) String() string {
	return string(c)
}

// Date is a calendar day without time of day.
// The zero value is not a valid ledger date.
type Date struct {
	t time.Time
}

// NewDate returns the Date for the given year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf keeps only the calendar day of t
func DateOf(t time.Time) Date {
	return Date{t: dateutils.TruncateToDay(t)}
}

// ParseDate parses the canonical DD-MM-YYYY form
func ParseDate(s string) (Date, error) {
	t, err := dateutils.ParseLedgerDate(s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// MustParseDate is like ParseDate but panics on error. Meant for tests and constants.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the day as a UTC midnight time.Time
func (d Date) Time() time.Time {
	return d.t
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// String renders the date in the canonical DD-MM-YYYY form
func (d Date) String() string {
	return dateutils.FormatLedgerDate(d.t)
}

// Before reports whether d is an earlier day than other
func (d Date) Before(other Date) bool {
	return dateutils.CompareDates(d.t, other.t) < 0
}

// After reports whether d is a later day than other
func (d Date) After(other Date) bool {
	return dateutils.CompareDates(d.t, other.t) > 0
}

// Equal reports whether d and other are the same day
func (d Date) Equal(other Date) bool {
	return dateutils.CompareDates(d.t, other.t) == 0
}

// Within reports whether start <= d <= end
func (d Date) Within(start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}

// Month returns the year+month key the day belongs to
func (d Date) Month() Month {
	return NewMonth(d.t.Year(), d.t.Month())
}

// MarshalText implements encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Month is a year+month key rendered as YYYY-MM.
// Keys sort chronologically when compared as strings.
type Month string

// NewMonth builds the key for year and month
func NewMonth(year int, month time.Month) Month {
	return Month(fmt.Sprintf("%04d-%02d", year, int(month)))
}

func (m Month) String() string {
	return string(m)
}

// Record is a single income or expense entry of the ledger
type Record struct {
	Date        Date            `json:"date" yaml:"date"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Category    Category        `json:"category" yaml:"category"`
	Description string          `json:"description" yaml:"description"`
}

// NewRecord creates a record, trimming surrounding whitespace from the description
func NewRecord(date Date, amount decimal.Decimal, category Category, description string) Record {
	return Record{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: strings.TrimSpace(description),
	}
}

// IsIncome returns true if the record is an income entry
func (r Record) IsIncome() bool {
	return r.Category == CategoryIncome
}

// IsExpense returns true if the record is an expense entry
func (r Record) IsExpense() bool {
	return r.Category == CategoryExpense
}
