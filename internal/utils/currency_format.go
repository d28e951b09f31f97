package utils

import (
	"github.com/SscSPs/currency_registry/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
// Example: amount 12.3456 with JPY (precision 0) returns "12"
// Example: amount -0.0005 with KWD (precision 3) returns "-0.001"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency *domain.CurrencyDefinition) string {
	return FormatWithPrecision(amount, currency.Precision())
}

// FormatWithPrecision formats an amount with the given precision, keeping trailing zeros.
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}
