package mapping

import (
	"github.com/SscSPs/currency_registry/internal/core/domain"
	"github.com/SscSPs/currency_registry/internal/dto"
	"github.com/SscSPs/currency_registry/internal/models"
)

// ToCurrencyDefinitionRecord converts a model row to the loader record, mapping NULLs to defaults
func ToCurrencyDefinitionRecord(m models.CurrencyDefinition) dto.CurrencyDefinitionRecord {
	rec := dto.CurrencyDefinitionRecord{
		AlphaCode:   m.AlphaCode,
		NumericCode: m.NumericCode,
		Precision:   m.Precision,
	}
	if m.Symbol != nil {
		rec.Symbol = *m.Symbol
	}
	if m.DecimalSeparator != nil {
		rec.DecimalSeparator = *m.DecimalSeparator
	}
	return rec
}

// ToDomainCurrencyDefinition validates a model row and converts it to a domain definition
func ToDomainCurrencyDefinition(m models.CurrencyDefinition) (*domain.CurrencyDefinition, error) {
	return ToCurrencyDefinitionRecord(m).ToDomain()
}
