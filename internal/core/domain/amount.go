package domain

import (
	"fmt"
	"math"
	"math/big"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Bounds on parsed and formatted amounts. They match the range of a 96-bit
// decimal and keep rounding and rendering cheap.
const (
	MaxAmountIntegerDigits = 29
	MaxAmountScale         = 28
)

// Integer is the set of integer types accepted by AmountFrom.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types accepted by AmountFromUnsigned.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// AmountFromInt64 converts an integer amount.
func AmountFromInt64(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// AmountFromUint64 converts an unsigned amount without overflowing int64.
func AmountFromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

// AmountFromFloat64 converts v through its shortest decimal representation,
// so 0.57 becomes exactly 0.57. NaN and infinities are rejected.
func AmountFromFloat64(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Decimal{}, apperrors.NewValidationError("amount", v, "amount must be a finite number")
	}
	return decimal.NewFromFloat(v), nil
}

// AmountFromFloat32 is AmountFromFloat64 for float32 values.
func AmountFromFloat32(v float32) (decimal.Decimal, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, apperrors.NewValidationError("amount", v, "amount must be a finite number")
	}
	return decimal.NewFromFloat32(v), nil
}

// AmountFrom converts any signed integer type.
func AmountFrom[T Integer](v T) decimal.Decimal { return AmountFromInt64(int64(v)) }

// AmountFromUnsigned converts any unsigned integer type.
func AmountFromUnsigned[T Unsigned](v T) decimal.Decimal { return AmountFromUint64(uint64(v)) }

// ParseAmount parses a decimal string such as "1000.50" or "-0.57".
// Exponent notation is accepted within the bounds of ValidateAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, apperrors.NewValidationError("amount", s, "amount must be a decimal number")
	}
	if err := ValidateAmount(d); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

// ValidateAmount rejects amounts with more than MaxAmountIntegerDigits
// integer digits or more than MaxAmountScale decimal places. The error never
// renders the amount, which may expand to billions of digits.
func ValidateAmount(d decimal.Decimal) error {
	exp := int64(d.Exponent())
	if exp < -MaxAmountScale {
		return apperrors.NewValidationError("", nil,
			fmt.Sprintf("amount must have at most %d decimal places", MaxAmountScale))
	}
	if exp > MaxAmountIntegerDigits || int64(d.NumDigits())+exp > MaxAmountIntegerDigits {
		return apperrors.NewValidationError("", nil,
			fmt.Sprintf("amount must have at most %d integer digits", MaxAmountIntegerDigits))
	}
	return nil
}
