package chart

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/budget-csv/internal/models"

	"github.com/guptarohit/asciigraph"
	"github.com/shopspring/decimal"
)

// DefaultWidth is the bar length used for the largest value when none is configured
const DefaultWidth = 40

// dailyHeight is the number of rows of the daily line chart
const dailyHeight = 10

const (
	incomeMark  = "#"
	expenseMark = "="
	savingMark  = "+"
	deficitMark = "-"
)

// Renderer draws chart datasets as text bar charts
type Renderer struct {
	w     io.Writer
	width int
}

// NewRenderer creates a Renderer writing to w. Bars of the largest value span width cells.
func NewRenderer(w io.Writer, width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{w: w, width: width}
}

// MonthlyIncomeExpense draws the paired monthly income and expense bars
func (r *Renderer) MonthlyIncomeExpense(bars []MonthlyBar) error {
	if len(bars) == 0 {
		return r.empty("Monthly Income vs Expense")
	}
	peak := decimal.Zero
	for _, b := range bars {
		peak = decimal.Max(peak, b.Income, b.Expense)
	}

	var sb strings.Builder
	sb.WriteString("Monthly Income vs Expense\n")
	for _, b := range bars {
		fmt.Fprintf(&sb, "%s  income  %s %s\n", b.Month, r.bar(b.Income, peak, incomeMark), models.FormatMoney(b.Income))
		fmt.Fprintf(&sb, "%s  expense %s %s\n", strings.Repeat(" ", len(b.Month)), r.bar(b.Expense, peak, expenseMark), models.FormatMoney(b.Expense))
	}
	return r.write(sb.String())
}

// MonthlyNetSaving draws one bar per month, marking deficits separately
func (r *Renderer) MonthlyNetSaving(bars []MonthlyBar) error {
	if len(bars) == 0 {
		return r.empty("Monthly Net Saving")
	}
	peak := decimal.Zero
	for _, b := range bars {
		peak = decimal.Max(peak, b.NetSaving.Abs())
	}

	var sb strings.Builder
	sb.WriteString("Monthly Net Saving\n")
	for _, b := range bars {
		mark := savingMark
		if b.NetSaving.IsNegative() {
			mark = deficitMark
		}
		fmt.Fprintf(&sb, "%s  %s %s\n", b.Month, r.bar(b.NetSaving.Abs(), peak, mark), models.FormatMoney(b.NetSaving))
	}
	return r.write(sb.String())
}

// Proportion draws the income and expense shares of the total
func (r *Renderer) Proportion(p Proportion) error {
	if p.Income.IsZero() && p.Expense.IsZero() {
		return r.empty("Income vs Expense Proportion")
	}

	var sb strings.Builder
	sb.WriteString("Income vs Expense Proportion\n")
	fmt.Fprintf(&sb, "income   %s %s%%\n", r.bar(p.IncomeShare, hundred, incomeMark), p.IncomeShare.StringFixed(1))
	fmt.Fprintf(&sb, "expense  %s %s%%\n", r.bar(p.ExpenseShare, hundred, expenseMark), p.ExpenseShare.StringFixed(1))
	return r.write(sb.String())
}

// Daily plots daily income and expense as one line chart each over the dates of points
func (r *Renderer) Daily(points []DailyPoint) error {
	if len(points) == 0 {
		return r.empty("Daily Transactions")
	}

	income := make([]float64, len(points))
	expense := make([]float64, len(points))
	for i, p := range points {
		income[i] = p.Income.InexactFloat64()
		expense[i] = p.Expense.InexactFloat64()
	}

	span := fmt.Sprintf("%s .. %s", points[0].Date, points[len(points)-1].Date)

	var sb strings.Builder
	sb.WriteString("Daily Transactions\n")
	sb.WriteString(r.line(income, "income "+span))
	sb.WriteString("\n")
	sb.WriteString(r.line(expense, "expense "+span))
	sb.WriteString("\n")
	return r.write(sb.String())
}

// line plots one daily series, stretched to the renderer width
func (r *Renderer) line(series []float64, caption string) string {
	options := []asciigraph.Option{
		asciigraph.Height(dailyHeight),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	}
	if len(series) > 1 {
		options = append(options, asciigraph.Width(r.width))
	}
	return asciigraph.Plot(series, options...)
}

// bar scales value against peak into a fixed-width cell, padded with spaces.
// Any non-zero value gets at least one mark.
func (r *Renderer) bar(value, peak decimal.Decimal, mark string) string {
	n := 0
	if peak.IsPositive() && value.IsPositive() {
		n = int(value.Mul(decimal.NewFromInt(int64(r.width))).Div(peak).Round(0).IntPart())
		if n == 0 {
			n = 1
		}
		if n > r.width {
			n = r.width
		}
	}
	return strings.Repeat(mark, n) + strings.Repeat(" ", r.width-n)
}

func (r *Renderer) empty(title string) error {
	return r.write(title + "\n(no data)\n")
}

func (r *Renderer) write(s string) error {
	if _, err := io.WriteString(r.w, s); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}
