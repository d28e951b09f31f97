package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCurrencyFile = `
currencies:
  - alphaCode: XBT
    numericCode: 999
    symbol: "₿"
    precision: 3
`

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeCurrencyFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "currencies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCurrencyFile), 0o600))
	return path
}

func TestFormatCmd(t *testing.T) {
	out, err := runCmd(t, "format", "--locale", "de-DE", "EUR", "--", "-1234.5")
	require.NoError(t, err)
	assert.Equal(t, "-1.234,50 €\n", out)

	out, err = runCmd(t, "format", "840", "1000.5", "-l", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "$1,000.50\n", out)
}

func TestFormatCmd_Errors(t *testing.T) {
	_, err := runCmd(t, "format", "USD", "ten")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = runCmd(t, "format", "XXX", "1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = runCmd(t, "format", "USD")
	assert.Error(t, err)

	// Without "--" a negative amount is parsed as a shorthand flag.
	_, err = runCmd(t, "format", "USD", "-5")
	assert.Error(t, err)

	_, err = runCmd(t, "format", "USD", "1e2000000000")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestShowCmd(t *testing.T) {
	out, err := runCmd(t, "show", "eur")
	require.NoError(t, err)
	assert.Contains(t, out, `"alphaCode": "EUR"`)
	assert.Contains(t, out, `"numericCode": "978"`)
}

func TestCurrencyFile(t *testing.T) {
	path := writeCurrencyFile(t)

	out, err := runCmd(t, "show", "999", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"alphaCode": "XBT"`)
	assert.Contains(t, out, `"precision": 3`)

	out, err = runCmd(t, "format", "XBT", "1.23456", "-f", path, "-l", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "₿1.235\n", out)
}

func TestListCmd_WithoutBuiltins(t *testing.T) {
	path := writeCurrencyFile(t)

	out, err := runCmd(t, "list", "--no-builtins", "--file", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "CODE"))
	assert.True(t, strings.HasPrefix(lines[1], "XBT"))
}

func TestListCmd_MissingFile(t *testing.T) {
	_, err := runCmd(t, "list", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
