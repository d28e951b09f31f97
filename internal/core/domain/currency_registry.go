package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CurrencyKey identifies a currency either by its alpha code or by its numeric code.
type CurrencyKey struct {
	alpha     string
	numeric   int
	isNumeric bool
}

// AlphaKey returns a key for a 3 letter code. Matching is case-insensitive.
func AlphaKey(code string) CurrencyKey { return CurrencyKey{alpha: code} }

// NumericKey returns a key for a 3 digit code.
func NumericKey(code int) CurrencyKey { return CurrencyKey{numeric: code, isNumeric: true} }

// ParseCurrencyKey treats a string of one to three digits as a numeric code
// and anything else as an alpha code, so "0840" is a malformed alpha key.
func ParseCurrencyKey(s string) CurrencyKey {
	s = strings.TrimSpace(s)
	if s != "" && len(s) <= 3 && strings.Trim(s, "0123456789") == "" {
		if n, err := strconv.Atoi(s); err == nil {
			return NumericKey(n)
		}
	}
	return AlphaKey(s)
}

// IsNumeric reports whether the key holds a numeric code.
func (k CurrencyKey) IsNumeric() bool { return k.isNumeric }

// Alpha returns the alpha code as supplied; it is empty for numeric keys.
func (k CurrencyKey) Alpha() string { return k.alpha }

// Numeric returns the numeric code; it is 0 for alpha keys.
func (k CurrencyKey) Numeric() int { return k.numeric }

// String renders numeric keys zero-padded to three digits.
func (k CurrencyKey) String() string {
	if k.isNumeric {
		return fmt.Sprintf("%03d", k.numeric)
	}
	return k.alpha
}

// Validate rejects alpha keys that cannot possibly be ISO codes. Numeric keys
// are not range checked; an out of range numeric code is simply not registered.
func (k CurrencyKey) Validate() error {
	if !k.isNumeric && utf8.RuneCountInString(k.alpha) != 3 {
		return apperrors.NewValidationError("alphaCode", k.alpha, "alpha ISO codes must be 3 characters long, see ISO 4217")
	}
	return nil
}

// CurrencyRegistry stores currency definitions under two independent keys:
// the case-insensitive alpha code and the numeric code. It is read-only once
// built and safe for concurrent readers.
//
// Both maps are written by the same add call, but a later definition only
// replaces the entries for its own two keys. If it shares its alpha code with
// one earlier definition and its numeric code with another, the older entries
// under their other keys stay reachable.
type CurrencyRegistry struct {
	byAlpha   map[string]*CurrencyDefinition
	byNumeric map[int]*CurrencyDefinition
}

// NewCurrencyRegistry builds a registry from the built-in defaults followed by
// the external definitions, in order. A nil definition fails the whole build.
func NewCurrencyRegistry(defaults, external []*CurrencyDefinition) (*CurrencyRegistry, error) {
	r := &CurrencyRegistry{
		byAlpha:   make(map[string]*CurrencyDefinition, len(defaults)+len(external)),
		byNumeric: make(map[int]*CurrencyDefinition, len(defaults)+len(external)),
	}
	for i, d := range defaults {
		if err := r.add(d); err != nil {
			return nil, fmt.Errorf("built-in currency %d: %w", i, err)
		}
	}
	for i, d := range external {
		if err := r.add(d); err != nil {
			return nil, fmt.Errorf("external currency %d: %w", i, err)
		}
	}
	return r, nil
}

func (r *CurrencyRegistry) add(d *CurrencyDefinition) error {
	if d == nil {
		return apperrors.NewValidationError("definition", nil, "currency definition is nil")
	}
	r.byAlpha[strings.ToUpper(d.alphaCode)] = d
	r.byNumeric[d.numericCode] = d
	return nil
}

// Lookup resolves key to a definition. There is no implicit default.
func (r *CurrencyRegistry) Lookup(key CurrencyKey) (*CurrencyDefinition, bool) {
	if key.isNumeric {
		return r.LookupNumeric(key.numeric)
	}
	return r.LookupAlpha(key.alpha)
}

// LookupAlpha resolves an alpha code, ignoring case.
func (r *CurrencyRegistry) LookupAlpha(code string) (*CurrencyDefinition, bool) {
	d, ok := r.byAlpha[strings.ToUpper(code)]
	return d, ok
}

// LookupNumeric resolves a numeric code.
func (r *CurrencyRegistry) LookupNumeric(code int) (*CurrencyDefinition, bool) {
	d, ok := r.byNumeric[code]
	return d, ok
}

// FormatCurrency formats amount with the currency registered under key.
// Malformed alpha keys yield *apperrors.ValidationError and unregistered
// keys *apperrors.UnknownCurrencyCodeError. Amounts outside the bounds of
// ValidateAmount are rejected before any rounding.
func (r *CurrencyRegistry) FormatCurrency(amount decimal.Decimal, key CurrencyKey, baseline NumberFormatRules) (string, error) {
	if err := key.Validate(); err != nil {
		return "", err
	}
	if err := ValidateAmount(amount); err != nil {
		return "", err
	}
	d, ok := r.Lookup(key)
	if !ok {
		return "", &apperrors.UnknownCurrencyCodeError{Key: key.String()}
	}
	return d.Format(amount, baseline), nil
}

// Definitions returns every distinct definition reachable through either
// key, ordered by alpha code and then numeric code.
func (r *CurrencyRegistry) Definitions() []*CurrencyDefinition {
	seen := make(map[*CurrencyDefinition]struct{}, len(r.byAlpha))
	defs := make([]*CurrencyDefinition, 0, len(r.byAlpha))
	collect := func(d *CurrencyDefinition) {
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		defs = append(defs, d)
	}
	for _, d := range r.byAlpha {
		collect(d)
	}
	for _, d := range r.byNumeric {
		collect(d)
	}

	sort.Slice(defs, func(i, j int) bool {
		ai, aj := strings.ToUpper(defs[i].alphaCode), strings.ToUpper(defs[j].alphaCode)
		if ai == aj {
			return defs[i].numericCode < defs[j].numericCode
		}
		return ai < aj
	})
	return defs
}

// Len returns the number of distinct definitions.
func (r *CurrencyRegistry) Len() int { return len(r.Definitions()) }
