package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

func TestGroupDigits_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		digits := rapid.StringMatching(`[1-9][0-9]{0,24}`).Draw(t, "digits")
		size := rapid.IntRange(1, 4).Draw(t, "size")

		out := groupDigits(digits, []int{size}, ",")

		if got := strings.ReplaceAll(out, ",", ""); got != digits {
			t.Fatalf("separators removed: got %q, want %q", got, digits)
		}
		groups := strings.Split(out, ",")
		for i, g := range groups {
			if i == 0 {
				if len(g) == 0 || len(g) > size {
					t.Fatalf("leading group %q outside 1..%d", g, size)
				}
				continue
			}
			if len(g) != size {
				t.Fatalf("group %d is %q, want %d digits", i, g, size)
			}
		}
	})
}

func TestFormatCurrency_Properties(t *testing.T) {
	rules := usRules()
	rapid.Check(t, func(t *rapid.T) {
		units := rapid.Int64Range(-1_000_000_000_000, 1_000_000_000_000).Draw(t, "units")
		exp := rapid.Int32Range(-6, 0).Draw(t, "exp")
		amount := decimal.New(units, exp)

		out := rules.FormatCurrency(amount)
		rounded := amount.Round(2)

		if rounded.IsNegative() != strings.HasPrefix(out, "-") {
			t.Fatalf("sign mismatch for %s: %q", amount, out)
		}
		if !strings.Contains(out, "$") {
			t.Fatalf("symbol missing from %q", out)
		}

		bare := strings.NewReplacer("$", "", ",", "", "-", "").Replace(out)
		if want := rounded.Abs().StringFixed(2); bare != want {
			t.Fatalf("digits of %s: got %q, want %q", amount, bare, want)
		}
	})
}

func TestCurrencyRegistry_LookupProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		defs := make([]*CurrencyDefinition, 0, n)
		lastByAlpha := make(map[string]*CurrencyDefinition)
		lastByNumeric := make(map[int]*CurrencyDefinition)
		for i := 0; i < n; i++ {
			alpha := rapid.StringMatching(`[A-Z]{3}`).Draw(t, "alpha")
			numeric := rapid.IntRange(100, 999).Draw(t, "numeric")
			def, err := NewCurrencyDefinition(alpha, numeric)
			if err != nil {
				t.Fatalf("define %s/%d: %v", alpha, numeric, err)
			}
			defs = append(defs, def)
			lastByAlpha[alpha] = def
			lastByNumeric[numeric] = def
		}

		reg, err := NewCurrencyRegistry(nil, defs)
		if err != nil {
			t.Fatalf("build registry: %v", err)
		}

		for alpha, want := range lastByAlpha {
			got, ok := reg.Lookup(AlphaKey(strings.ToLower(alpha)))
			if !ok || got != want {
				t.Fatalf("alpha %s resolved to %v, want the last definition", alpha, got)
			}
		}
		for numeric, want := range lastByNumeric {
			got, ok := reg.Lookup(NumericKey(numeric))
			if !ok || got != want {
				t.Fatalf("numeric %d resolved to %v, want the last definition", numeric, got)
			}
		}
	})
}
