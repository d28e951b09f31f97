package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		sizes  []int
		sep    string
		want   string
	}{
		{name: "no sizes", digits: "1234567", sizes: nil, sep: ",", want: "1234567"},
		{name: "no separator", digits: "1234567", sizes: []int{3}, sep: "", want: "1234567"},
		{name: "shorter than group", digits: "12", sizes: []int{3}, sep: ",", want: "12"},
		{name: "exact group", digits: "123", sizes: []int{3}, sep: ",", want: "123"},
		{name: "repeating last size", digits: "1234567", sizes: []int{3}, sep: ",", want: "1,234,567"},
		{name: "indian grouping", digits: "123456789", sizes: []int{3, 2}, sep: ",", want: "12,34,56,789"},
		{name: "zero stops grouping", digits: "123456789", sizes: []int{3, 0}, sep: ",", want: "123456,789"},
		{name: "multi byte separator", digits: "1234567", sizes: []int{3}, sep: " ", want: "1 234 567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, groupDigits(tt.digits, tt.sizes, tt.sep))
		})
	}
}

func TestNumberFormatRules_FormatCurrency_Rounding(t *testing.T) {
	rules := usRules()

	tests := []struct {
		amount string
		want   string
	}{
		{amount: "0.125", want: "$0.13"},
		{amount: "-0.125", want: "-$0.13"},
		{amount: "2.675", want: "$2.68"},
		{amount: "0.57", want: "$0.57"},
		{amount: "0", want: "$0.00"},
		{amount: "-0.004", want: "$0.00"},
		{amount: "999.995", want: "$1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.FormatCurrency(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestNumberFormatRules_FormatCurrency_Patterns(t *testing.T) {
	positive := []string{"$1.50", "1.50$", "$ 1.50", "1.50 $"}
	for pattern, want := range positive {
		rules := usRules()
		rules.CurrencyPositivePattern = pattern
		assert.Equal(t, want, rules.FormatCurrency(decimal.RequireFromString("1.5")), "positive pattern %d", pattern)
	}

	negative := []string{
		"($1.50)", "-$1.50", "$-1.50", "$1.50-",
		"(1.50$)", "-1.50$", "1.50-$", "1.50$-",
		"-1.50 $", "-$ 1.50", "1.50 $-", "$ 1.50-",
		"$ -1.50", "1.50- $", "($ 1.50)", "(1.50 $)",
	}
	for pattern, want := range negative {
		rules := usRules()
		rules.CurrencyNegativePattern = pattern
		assert.Equal(t, want, rules.FormatCurrency(decimal.RequireFromString("-1.5")), "negative pattern %d", pattern)
	}
}

func TestNumberFormatRules_FormatCurrency_OutOfRangePatterns(t *testing.T) {
	rules := usRules()
	rules.CurrencyPositivePattern = 9
	rules.CurrencyNegativePattern = -1

	assert.Equal(t, "$1.00", rules.FormatCurrency(decimal.NewFromInt(1)))
	assert.Equal(t, "-$1.00", rules.FormatCurrency(decimal.NewFromInt(-1)))
}

func TestNumberFormatRules_FormatCurrency_CustomNegativeSign(t *testing.T) {
	rules := usRules()
	rules.NegativeSign = "−"
	assert.Equal(t, "−$3.00", rules.FormatCurrency(decimal.NewFromInt(-3)))

	rules.NegativeSign = ""
	assert.Equal(t, "-$3.00", rules.FormatCurrency(decimal.NewFromInt(-3)))
}

func TestNumberFormatRules_FormatCurrency_ZeroDigits(t *testing.T) {
	rules := usRules()
	rules.CurrencyDecimalDigits = 0
	assert.Equal(t, "$1,001", rules.FormatCurrency(decimal.RequireFromString("1000.5")))
}

func TestNumberFormatRules_Clone(t *testing.T) {
	original := usRules()
	clone := original.Clone()
	clone.CurrencyGroupSizes[0] = 2
	clone.CurrencySymbol = "€"

	assert.Equal(t, []int{3}, original.CurrencyGroupSizes)
	assert.Equal(t, "$", original.CurrencySymbol)

	var empty NumberFormatRules
	assert.Nil(t, empty.Clone().CurrencyGroupSizes)
}
