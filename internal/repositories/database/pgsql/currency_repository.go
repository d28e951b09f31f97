package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_registry/internal/core/ports/repositories"
	"github.com/SscSPs/currency_registry/internal/models"
	"github.com/SscSPs/currency_registry/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCurrencyDefinitionRepository reads currency definitions from Postgres.
type PgxCurrencyDefinitionRepository struct {
	BaseRepository
}

// NewCurrencyDefinitionRepository creates a new repository for currency definition data.
func NewCurrencyDefinitionRepository(pool *pgxpool.Pool) *PgxCurrencyDefinitionRepository {
	return &PgxCurrencyDefinitionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyDefinitionReader = (*PgxCurrencyDefinitionRepository)(nil)

// ListCurrencyDefinitions retrieves all definitions in override order.
func (r *PgxCurrencyDefinitionRepository) ListCurrencyDefinitions(ctx context.Context) ([]*domain.CurrencyDefinition, error) {
	query := `
		SELECT position, alpha_code, numeric_code, symbol, precision, decimal_separator
		FROM currency_definitions
		ORDER BY position, alpha_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency definitions: %w", err)
	}
	defer rows.Close()

	modelDefs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CurrencyDefinition, error) {
		var def models.CurrencyDefinition
		err := row.Scan(
			&def.Position,
			&def.AlphaCode,
			&def.NumericCode,
			&def.Symbol,
			&def.Precision,
			&def.DecimalSeparator,
		)
		return def, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currency definitions: %w", err)
	}

	defs := make([]*domain.CurrencyDefinition, 0, len(modelDefs))
	for _, m := range modelDefs {
		def, err := mapping.ToDomainCurrencyDefinition(m)
		if err != nil {
			return nil, fmt.Errorf("invalid currency definition at position %d (%q): %w", m.Position, m.AlphaCode, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}
