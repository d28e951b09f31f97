package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCurrencyFileRepository_YAML(t *testing.T) {
	path := writeFile(t, "currencies.yaml", `
currencies:
  - alphaCode: XBT
    numericCode: 999
    symbol: "₿"
    precision: 3
  - alphaCode: usd
    numericCode: 840
  - alphaCode: XTS
    numericCode: 963
    precision: 0
    decimalSeparator: ","
locales:
  en-AU:
    currency_symbol: "$"
    currency_decimal_separator: "."
    currency_group_separator: ","
    currency_group_sizes: [3]
    currency_decimal_digits: 2
    currency_positive_pattern: 0
    currency_negative_pattern: 1
`)
	repo := NewCurrencyFileRepository(path)

	defs, err := repo.ListCurrencyDefinitions(context.Background())
	require.NoError(t, err)
	require.Len(t, defs, 3)

	assert.Equal(t, "XBT", defs[0].AlphaCode())
	assert.Equal(t, 999, defs[0].NumericCode())
	assert.Equal(t, "₿", defs[0].Symbol())
	assert.Equal(t, 3, defs[0].Precision())

	assert.Equal(t, "usd", defs[1].AlphaCode())
	assert.Equal(t, 2, defs[1].Precision())
	assert.Equal(t, "usd", defs[1].EffectiveSymbol())

	assert.Equal(t, 0, defs[2].Precision())
	assert.Equal(t, ",", defs[2].DecimalSeparator())

	locales, err := repo.LocaleRules()
	require.NoError(t, err)
	require.Len(t, locales, 1)
	for tag, rules := range locales {
		assert.True(t, strings.EqualFold("en-AU", tag), tag)
		assert.Equal(t, "$", rules.CurrencySymbol)
		assert.Equal(t, []int{3}, rules.CurrencyGroupSizes)
		assert.Equal(t, 1, rules.CurrencyNegativePattern)
	}
}

func TestCurrencyFileRepository_JSON(t *testing.T) {
	path := writeFile(t, "currencies.json", `{"currencies": [{"alphaCode": "XAU", "numericCode": 959, "symbol": "oz"}]}`)

	defs, err := NewCurrencyFileRepository(path).ListCurrencyDefinitions(context.Background())
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "oz", defs[0].Symbol())
}

func TestCurrencyFileRepository_NoEntries(t *testing.T) {
	path := writeFile(t, "empty.yaml", "other: 1\n")
	repo := NewCurrencyFileRepository(path)

	defs, err := repo.ListCurrencyDefinitions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, defs)

	locales, err := repo.LocaleRules()
	require.NoError(t, err)
	assert.Empty(t, locales)
}

func TestCurrencyFileRepository_InvalidDefinition(t *testing.T) {
	path := writeFile(t, "bad.yaml", `
currencies:
  - alphaCode: AUD
    numericCode: 36
`)

	_, err := NewCurrencyFileRepository(path).ListCurrencyDefinitions(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), `currency #0 ("AUD")`)
}

func TestCurrencyFileRepository_MissingFile(t *testing.T) {
	repo := NewCurrencyFileRepository(filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := repo.ListCurrencyDefinitions(context.Background())
	assert.Error(t, err)

	_, err = repo.LocaleRules()
	assert.Error(t, err)
}

func TestCurrencyFileRepository_CanceledContext(t *testing.T) {
	path := writeFile(t, "currencies.yaml", "currencies: []\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCurrencyFileRepository(path).ListCurrencyDefinitions(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
