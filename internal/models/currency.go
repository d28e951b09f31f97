package models

// CurrencyDefinition is a row of the currency_definitions table.
type CurrencyDefinition struct {
	Position         int     `json:"position"`
	AlphaCode        string  `json:"alphaCode"`
	NumericCode      int     `json:"numericCode"`
	Symbol           *string `json:"symbol"`
	Precision        *int    `json:"precision"`
	DecimalSeparator *string `json:"decimalSeparator"`
}
