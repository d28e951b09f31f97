package services

import (
	"context"

	"github.com/SscSPs/currency_registry/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for registered currencies
type CurrencyReaderSvc interface {
	// GetCurrency resolves an alpha or numeric key.
	GetCurrency(ctx context.Context, key domain.CurrencyKey) (*domain.CurrencyDefinition, error)

	// ListCurrencies returns every registered currency.
	ListCurrencies(ctx context.Context) ([]*domain.CurrencyDefinition, error)
}

// CurrencyFormatterSvc defines the formatting operations
type CurrencyFormatterSvc interface {
	// FormatCurrency formats amount with explicit baseline rules.
	FormatCurrency(ctx context.Context, amount decimal.Decimal, key domain.CurrencyKey, rules domain.NumberFormatRules) (string, error)

	// FormatCurrencyForLocale formats amount with the baseline rules of a locale tag.
	FormatCurrencyForLocale(ctx context.Context, amount decimal.Decimal, key domain.CurrencyKey, locale string) (string, error)
}

// CurrencyRegistrySvc controls the registry lifecycle
type CurrencyRegistrySvc interface {
	// Initialize builds the registry from the built-in defaults and defs. It may succeed only once.
	Initialize(ctx context.Context, defs []*domain.CurrencyDefinition) error

	// IsInitialized reports whether the registry has been built.
	IsInitialized() bool
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyFormatterSvc
	CurrencyRegistrySvc
}
