package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Placement patterns for currency values. '$' is the symbol, 'n' the number
// and '-' the negative sign; everything else is copied verbatim.
var (
	positiveCurrencyPatterns = [...]string{"$n", "n$", "$ n", "n $"}
	negativeCurrencyPatterns = [...]string{
		"($n)", "-$n", "$-n", "$n-",
		"(n$)", "-n$", "n-$", "n$-",
		"-n $", "-$ n", "n $-", "$ n-",
		"$ -n", "n- $", "($ n)", "(n $)",
	}
)

// NumberFormatRules are the locale baseline rules used to render a currency
// amount. A CurrencyDefinition overrides some of them per currency.
type NumberFormatRules struct {
	CurrencySymbol           string `json:"currencySymbol" mapstructure:"currency_symbol"`
	CurrencyDecimalSeparator string `json:"currencyDecimalSeparator" mapstructure:"currency_decimal_separator"`
	CurrencyGroupSeparator   string `json:"currencyGroupSeparator" mapstructure:"currency_group_separator"`

	// CurrencyGroupSizes lists digit group sizes from the decimal point leftwards.
	// The last size repeats; a size of 0 leaves the remaining digits ungrouped.
	CurrencyGroupSizes      []int  `json:"currencyGroupSizes" mapstructure:"currency_group_sizes"`
	CurrencyDecimalDigits   int    `json:"currencyDecimalDigits" mapstructure:"currency_decimal_digits"`
	CurrencyPositivePattern int    `json:"currencyPositivePattern" mapstructure:"currency_positive_pattern"` // 0-3
	CurrencyNegativePattern int    `json:"currencyNegativePattern" mapstructure:"currency_negative_pattern"` // 0-15
	NegativeSign            string `json:"negativeSign" mapstructure:"negative_sign"`
}

// Clone returns a copy that shares no memory with r.
func (r NumberFormatRules) Clone() NumberFormatRules {
	c := r
	if r.CurrencyGroupSizes != nil {
		c.CurrencyGroupSizes = append([]int(nil), r.CurrencyGroupSizes...)
	}
	return c
}

// FormatCurrency renders amount using the rules as they are. The amount is
// rounded half away from zero to CurrencyDecimalDigits; a value that rounds
// to zero is rendered with the positive pattern. Out of range patterns fall
// back to pattern 0 (positive) and 1 (negative).
func (r NumberFormatRules) FormatCurrency(amount decimal.Decimal) string {
	digits := r.CurrencyDecimalDigits
	if digits < 0 {
		digits = 0
	}

	rounded := amount.Round(int32(digits))
	text := rounded.Abs().StringFixed(int32(digits))
	intPart, fracPart, _ := strings.Cut(text, ".")

	number := groupDigits(intPart, r.CurrencyGroupSizes, r.CurrencyGroupSeparator)
	if digits > 0 {
		number += r.CurrencyDecimalSeparator + fracPart
	}

	var pattern string
	if rounded.IsNegative() {
		pattern = negativeCurrencyPatterns[1]
		if r.CurrencyNegativePattern >= 0 && r.CurrencyNegativePattern < len(negativeCurrencyPatterns) {
			pattern = negativeCurrencyPatterns[r.CurrencyNegativePattern]
		}
	} else {
		pattern = positiveCurrencyPatterns[0]
		if r.CurrencyPositivePattern >= 0 && r.CurrencyPositivePattern < len(positiveCurrencyPatterns) {
			pattern = positiveCurrencyPatterns[r.CurrencyPositivePattern]
		}
	}
	return applyPattern(pattern, r.CurrencySymbol, number, r.negativeSign())
}

func (r NumberFormatRules) negativeSign() string {
	if r.NegativeSign == "" {
		return "-"
	}
	return r.NegativeSign
}

func applyPattern(pattern, symbol, number, sign string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '$':
			b.WriteString(symbol)
		case 'n':
			b.WriteString(number)
		case '-':
			b.WriteString(sign)
		default:
			b.WriteByte(pattern[i])
		}
	}
	return b.String()
}

// groupDigits inserts sep between digit groups counted from the right.
func groupDigits(digits string, sizes []int, sep string) string {
	if len(sizes) == 0 || sep == "" {
		return digits
	}

	var groups []string
	end := len(digits)
	idx := 0
	for {
		size := sizes[idx]
		if size <= 0 || end <= size {
			groups = append(groups, digits[:end])
			break
		}
		groups = append(groups, digits[end-size:end])
		end -= size
		if idx < len(sizes)-1 {
			idx++
		}
	}

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return strings.Join(groups, sep)
}
