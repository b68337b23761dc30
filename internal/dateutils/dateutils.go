// Package dateutils provides the date operations shared by the ledger and its commands.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts used throughout the application
const (
	// DateLayoutLedger is the canonical DD-MM-YYYY layout persisted in the ledger file
	DateLayoutLedger = "02-01-2006"
	DateLayoutISO    = "2006-01-02"
	// MonthLayout renders a year+month key such as 2025-01
	MonthLayout = "2006-01"
)

var spaces = regexp.MustCompile(`\s+`)

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return spaces.ReplaceAllString(dateStr, " ")
}

// ParseLedgerDate parses a DD-MM-YYYY string into a UTC day.
// Only the canonical layout is accepted; two-digit day and month are required.
func ParseLedgerDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	t, err := time.Parse(DateLayoutLedger, cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q, expected DD-MM-YYYY: %w", dateStr, err)
	}
	return t, nil
}

// FormatLedgerDate formats a time as DD-MM-YYYY
func FormatLedgerDate(date time.Time) string {
	return date.Format(DateLayoutLedger)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// TruncateToDay drops the time-of-day and location, keeping the calendar day as seen in date's location
func TruncateToDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysAgo returns the calendar day that lies n days before now
func DaysAgo(now time.Time, n int) time.Time {
	return TruncateToDay(now).AddDate(0, 0, -n)
}

// CompareDates compares two dates at day precision and returns:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1 = TruncateToDay(date1)
	date2 = TruncateToDay(date2)

	switch {
	case date1.Before(date2):
		return -1
	case date1.After(date2):
		return 1
	default:
		return 0
	}
}
