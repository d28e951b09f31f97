package domain

import (
	"errors"
	"strings"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// DefaultPrecision is the number of decimal digits used when a definition does not set one.
	DefaultPrecision = 2
	// MaxPrecision is the largest precision ISO 4217 assigns to a currency.
	MaxPrecision = 3
)

var validate = validator.New()

// CurrencyDefinition is a single ISO 4217 currency specification.
// Values are only produced by NewCurrencyDefinition and are never modified afterwards.
type CurrencyDefinition struct {
	alphaCode        string
	numericCode      int
	symbol           string
	precision        int
	decimalSeparator string
}

// DefinitionOption sets an optional field of a CurrencyDefinition.
type DefinitionOption func(*CurrencyDefinition)

// WithSymbol sets the display symbol. An empty symbol falls back to the alpha code.
func WithSymbol(symbol string) DefinitionOption {
	return func(d *CurrencyDefinition) { d.symbol = symbol }
}

// WithPrecision sets the number of decimal digits.
func WithPrecision(precision int) DefinitionOption {
	return func(d *CurrencyDefinition) { d.precision = precision }
}

// WithDecimalSeparator overrides the locale decimal separator for this currency.
func WithDecimalSeparator(separator string) DefinitionOption {
	return func(d *CurrencyDefinition) { d.decimalSeparator = separator }
}

// definitionFields mirrors the validated part of a CurrencyDefinition.
type definitionFields struct {
	AlphaCode   string `validate:"len=3"`
	NumericCode int    `validate:"min=100,max=999"`
	Precision   int    `validate:"min=0,max=3"`
}

var fieldReasons = map[string]struct {
	name   string
	reason string
}{
	"AlphaCode":   {"alphaCode", "alpha ISO codes must be 3 characters long, see ISO 4217"},
	"NumericCode": {"numericCode", "numeric ISO codes must be 3 digits long, see ISO 4217"},
	"Precision":   {"precision", "ISO 4217 precision must be between 0 and 3, inclusive"},
}

// NewCurrencyDefinition validates its input and returns an immutable definition.
// It fails with *apperrors.ValidationError when alphaCode is not exactly 3
// characters, numericCode is outside [100, 999] or the precision is outside [0, 3].
func NewCurrencyDefinition(alphaCode string, numericCode int, opts ...DefinitionOption) (*CurrencyDefinition, error) {
	d := &CurrencyDefinition{
		alphaCode:   alphaCode,
		numericCode: numericCode,
		precision:   DefaultPrecision,
	}
	for _, opt := range opts {
		opt(d)
	}

	err := validate.Struct(definitionFields{
		AlphaCode:   d.alphaCode,
		NumericCode: d.numericCode,
		Precision:   d.precision,
	})
	if err != nil {
		return nil, toValidationError(err)
	}
	return d, nil
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", nil, err.Error())
	}
	fe := fieldErrs[0]
	if r, ok := fieldReasons[fe.StructField()]; ok {
		return apperrors.NewValidationError(r.name, fe.Value(), r.reason)
	}
	return apperrors.NewValidationError(fe.Field(), fe.Value(), "failed on "+fe.Tag())
}

// AlphaCode returns the 3 character ISO code as it was defined.
func (d *CurrencyDefinition) AlphaCode() string { return d.alphaCode }

// NumericCode returns the 3 digit ISO code.
func (d *CurrencyDefinition) NumericCode() int { return d.numericCode }

// Symbol returns the configured symbol, which may be empty.
func (d *CurrencyDefinition) Symbol() string { return d.symbol }

// Precision returns the number of decimal digits.
func (d *CurrencyDefinition) Precision() int { return d.precision }

// DecimalSeparator returns the separator override, or "" when the locale decides.
func (d *CurrencyDefinition) DecimalSeparator() string { return d.decimalSeparator }

// EffectiveSymbol returns the symbol, falling back to the alpha code when none is set.
func (d *CurrencyDefinition) EffectiveSymbol() string {
	if d.symbol == "" {
		return d.alphaCode
	}
	return d.symbol
}

// Format renders amount as a currency string. The baseline rules are cloned
// and then overridden with this currency's symbol, precision and, if set,
// decimal separator. baseline itself is left untouched.
func (d *CurrencyDefinition) Format(amount decimal.Decimal, baseline NumberFormatRules) string {
	rules := baseline.Clone()
	rules.CurrencySymbol = d.EffectiveSymbol()
	if d.decimalSeparator != "" {
		rules.CurrencyDecimalSeparator = d.decimalSeparator
	}
	rules.CurrencyDecimalDigits = d.precision

	return strings.TrimSpace(rules.FormatCurrency(amount))
}
