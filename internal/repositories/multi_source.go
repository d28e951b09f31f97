package repositories

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_registry/internal/core/ports/repositories"
)

// MultiSourceReader concatenates the definitions of several sources in order,
// so definitions from later sources override earlier ones in the registry.
type MultiSourceReader struct {
	sources []portsrepo.CurrencyDefinitionReader
}

var _ portsrepo.CurrencyDefinitionReader = (*MultiSourceReader)(nil)

// NewMultiSourceReader creates a reader over sources; nil sources are skipped.
func NewMultiSourceReader(sources ...portsrepo.CurrencyDefinitionReader) *MultiSourceReader {
	m := &MultiSourceReader{}
	for _, src := range sources {
		if src != nil {
			m.sources = append(m.sources, src)
		}
	}
	return m
}

// Len returns the number of sources.
func (m *MultiSourceReader) Len() int { return len(m.sources) }

// ListCurrencyDefinitions implements portsrepo.CurrencyDefinitionReader.
func (m *MultiSourceReader) ListCurrencyDefinitions(ctx context.Context) ([]*domain.CurrencyDefinition, error) {
	var all []*domain.CurrencyDefinition
	for i, src := range m.sources {
		defs, err := src.ListCurrencyDefinitions(ctx)
		if err != nil {
			return nil, fmt.Errorf("currency source %d: %w", i, err)
		}
		all = append(all, defs...)
	}
	return all, nil
}
