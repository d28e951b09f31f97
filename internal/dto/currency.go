package dto

import (
	"github.com/SscSPs/currency_registry/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyDefinitionRecord is one externally supplied currency, as read from
// a configuration file or a database row.
type CurrencyDefinitionRecord struct {
	AlphaCode        string `json:"alphaCode" mapstructure:"alphaCode"`
	NumericCode      int    `json:"numericCode" mapstructure:"numericCode"`
	Symbol           string `json:"symbol,omitempty" mapstructure:"symbol"`
	Precision        *int   `json:"precision,omitempty" mapstructure:"precision"` // nil means the default precision
	DecimalSeparator string `json:"decimalSeparator,omitempty" mapstructure:"decimalSeparator"`
}

// ToDomain validates the record and converts it to a CurrencyDefinition.
func (r CurrencyDefinitionRecord) ToDomain() (*domain.CurrencyDefinition, error) {
	opts := []domain.DefinitionOption{
		domain.WithSymbol(r.Symbol),
		domain.WithDecimalSeparator(r.DecimalSeparator),
	}
	if r.Precision != nil {
		opts = append(opts, domain.WithPrecision(*r.Precision))
	}
	return domain.NewCurrencyDefinition(r.AlphaCode, r.NumericCode, opts...)
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	AlphaCode        string `json:"alphaCode"`
	NumericCode      string `json:"numericCode"`
	Symbol           string `json:"symbol"`
	Precision        int    `json:"precision"`
	DecimalSeparator string `json:"decimalSeparator,omitempty"`
}

// ToCurrencyResponse converts a domain.CurrencyDefinition to CurrencyResponse DTO
func ToCurrencyResponse(def *domain.CurrencyDefinition) CurrencyResponse {
	return CurrencyResponse{
		AlphaCode:        def.AlphaCode(),
		NumericCode:      domain.NumericKey(def.NumericCode()).String(),
		Symbol:           def.EffectiveSymbol(),
		Precision:        def.Precision(),
		DecimalSeparator: def.DecimalSeparator(),
	}
}

// ToListCurrencyResponse converts a slice of definitions to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(defs []*domain.CurrencyDefinition) []CurrencyResponse {
	res := make([]CurrencyResponse, len(defs))
	for i, def := range defs {
		res[i] = ToCurrencyResponse(def)
	}
	return res
}

// FormatCurrencyRequest is the body of POST /format.
type FormatCurrencyRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
	Code   string           `json:"code" binding:"required"`
	Locale string           `json:"locale" binding:"omitempty,max=35"`
}

// FormatCurrencyQuery holds the query parameters of GET /currencies/:code/format.
type FormatCurrencyQuery struct {
	Amount string `form:"amount" binding:"required"`
	Locale string `form:"locale" binding:"omitempty,max=35"`
}

// FormatCurrencyResponse is returned by both format endpoints.
type FormatCurrencyResponse struct {
	Code      string `json:"code"`
	Amount    string `json:"amount"`
	Rounded   string `json:"rounded"` // amount rounded to the currency precision
	Locale    string `json:"locale,omitempty"`
	Formatted string `json:"formatted"`
}
