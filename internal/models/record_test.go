package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryIncome.IsValid())
	assert.True(t, CategoryExpense.IsValid())
	assert.False(t, Category("income").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("02-01-2025")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.January, 2), d)
	assert.Equal(t, "02-01-2025", d.String())

	_, err = ParseDate("2025-01-02")
	assert.Error(t, err)
}

func TestDate_Comparisons(t *testing.T) {
	first := NewDate(2025, time.January, 1)
	second := NewDate(2025, time.January, 2)
	third := NewDate(2025, time.January, 3)

	assert.True(t, first.Before(second))
	assert.True(t, third.After(second))
	assert.True(t, second.Equal(MustParseDate("02-01-2025")))

	assert.True(t, second.Within(first, third))
	assert.True(t, first.Within(first, third), "start is inclusive")
	assert.True(t, third.Within(first, third), "end is inclusive")
	assert.False(t, second.Within(third, first), "inverted range matches nothing")
}

func TestDateOf_DropsTimeOfDay(t *testing.T) {
	d := DateOf(time.Date(2025, time.June, 30, 23, 59, 0, 0, time.UTC))
	assert.True(t, d.Equal(NewDate(2025, time.June, 30)))
}

func TestDate_Month(t *testing.T) {
	assert.Equal(t, Month("2025-01"), NewDate(2025, time.January, 31).Month())
	assert.Equal(t, Month("0999-12"), NewDate(999, time.December, 1).Month())
	assert.True(t, NewMonth(2024, time.December) < NewMonth(2025, time.January))
}

func TestDate_TextRoundTripInJSON(t *testing.T) {
	rec := NewRecord(NewDate(2025, time.March, 4), decimal.NewFromInt(12), CategoryExpense, "  lunch ")
	assert.Equal(t, "lunch", rec.Description)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"date":"04-03-2025"`)

	var decoded Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Date.Equal(rec.Date))
	assert.True(t, decoded.Amount.Equal(rec.Amount))
	assert.Equal(t, CategoryExpense, decoded.Category)
}

func TestMustParseDate_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseDate("not a date") })
}

func TestRecord_CategoryHelpers(t *testing.T) {
	income := Record{Category: CategoryIncome}
	expense := Record{Category: CategoryExpense}
	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())
	assert.True(t, expense.IsExpense())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{"integer", "100", "100", false},
		{"fraction", "40.5", "40.5", false},
		{"padded", " 7.25 ", "7.25", false},
		{"negative kept", "-3", "-3", false},
		{"empty", "", "", true},
		{"currency symbol", "$5", "", true},
		{"garbage", "ten", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, FormatAmount(got))
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$100.00", FormatMoney(decimal.NewFromInt(100)))
	assert.Equal(t, "$0.00", FormatMoney(decimal.Zero))
	assert.Equal(t, "-$12.50", FormatMoney(decimal.RequireFromString("-12.5")))
}

func TestNewSummary_IsEmpty(t *testing.T) {
	s := NewSummary()
	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.NetSaving.IsZero())
	assert.NotNil(t, s.MonthlyIncome)
	assert.Empty(t, s.MonthlyExpense)
}
