package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a plain decimal amount such as "100" or "40.5".
// Thousand separators and currency symbols are not accepted.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(amountStr)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	dec, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", amountStr, err)
	}
	return dec, nil
}

// FormatAmount renders an amount the way it is stored in the ledger file
func FormatAmount(amount decimal.Decimal) string {
	return amount.String()
}

// FormatMoney renders an amount for display with two decimals, e.g. $1234.50
func FormatMoney(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Abs().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}
