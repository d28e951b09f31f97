package repositories

import (
	"context"

	"github.com/SscSPs/currency_registry/internal/core/domain"
)

// CurrencyDefinitionReader is a source of externally supplied currency definitions.
type CurrencyDefinitionReader interface {
	// ListCurrencyDefinitions returns validated definitions in the order they
	// must be added to the registry; later entries override earlier ones.
	ListCurrencyDefinitions(ctx context.Context) ([]*domain.CurrencyDefinition, error)
}
