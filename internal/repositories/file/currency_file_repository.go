package file

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_registry/internal/core/ports/repositories"
	"github.com/SscSPs/currency_registry/internal/dto"
	"github.com/spf13/viper"
)

// CurrencyFileRepository reads currency definitions from a YAML, JSON or TOML
// file. The file holds a "currencies" list and an optional "locales" table:
//
//	currencies:
//	  - alphaCode: XBT
//	    numericCode: 999
//	    symbol: "₿"
//	    precision: 3
//	locales:
//	  en-US:
//	    currency_symbol: "$"
//	    currency_decimal_separator: "."
type CurrencyFileRepository struct {
	path string
}

// NewCurrencyFileRepository creates a repository for the file at path.
func NewCurrencyFileRepository(path string) *CurrencyFileRepository {
	return &CurrencyFileRepository{path: path}
}

var _ portsrepo.CurrencyDefinitionReader = (*CurrencyFileRepository)(nil)

func (r *CurrencyFileRepository) read() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(r.path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read currency file %s: %w", r.path, err)
	}
	return v, nil
}

// ListCurrencyDefinitions returns the definitions in file order. One invalid
// record fails the whole load.
func (r *CurrencyFileRepository) ListCurrencyDefinitions(ctx context.Context) ([]*domain.CurrencyDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := r.read()
	if err != nil {
		return nil, err
	}

	var records []dto.CurrencyDefinitionRecord
	if err := v.UnmarshalKey("currencies", &records); err != nil {
		return nil, fmt.Errorf("failed to decode currencies in %s: %w", r.path, err)
	}

	defs := make([]*domain.CurrencyDefinition, 0, len(records))
	for i, rec := range records {
		def, err := rec.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("currency #%d (%q) in %s: %w", i, rec.AlphaCode, r.path, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// LocaleRules returns the locale overrides declared in the file, keyed by tag.
func (r *CurrencyFileRepository) LocaleRules() (map[string]domain.NumberFormatRules, error) {
	v, err := r.read()
	if err != nil {
		return nil, err
	}
	rules := map[string]domain.NumberFormatRules{}
	if err := v.UnmarshalKey("locales", &rules); err != nil {
		return nil, fmt.Errorf("failed to decode locales in %s: %w", r.path, err)
	}
	return rules, nil
}
