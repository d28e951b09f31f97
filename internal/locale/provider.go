package locale

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/SscSPs/currency_registry/internal/core/domain"
	"golang.org/x/text/language"
)

// Provider supplies the baseline number formatting rules for a locale.
type Provider interface {
	// Rules returns a private copy of the rules for tag. An empty tag selects
	// the provider's fallback locale.
	Rules(tag string) (domain.NumberFormatRules, error)
}

// Invariant returns culture independent rules.
func Invariant() domain.NumberFormatRules {
	return domain.NumberFormatRules{
		CurrencySymbol:           "¤",
		CurrencyDecimalSeparator: ".",
		CurrencyGroupSeparator:   ",",
		CurrencyGroupSizes:       []int{3},
		CurrencyDecimalDigits:    2,
		CurrencyPositivePattern:  0,
		CurrencyNegativePattern:  0,
		NegativeSign:             "-",
	}
}

func builtinRules() map[string]domain.NumberFormatRules {
	rules := func(symbol, dec, group string, sizes []int, digits, pos, neg int) domain.NumberFormatRules {
		return domain.NumberFormatRules{
			CurrencySymbol:           symbol,
			CurrencyDecimalSeparator: dec,
			CurrencyGroupSeparator:   group,
			CurrencyGroupSizes:       sizes,
			CurrencyDecimalDigits:    digits,
			CurrencyPositivePattern:  pos,
			CurrencyNegativePattern:  neg,
			NegativeSign:             "-",
		}
	}
	return map[string]domain.NumberFormatRules{
		"en-US": rules("$", ".", ",", []int{3}, 2, 0, 1),
		"en-GB": rules("£", ".", ",", []int{3}, 2, 0, 1),
		"en-CA": rules("$", ".", ",", []int{3}, 2, 0, 1),
		"en-IN": rules("₹", ".", ",", []int{3, 2}, 2, 0, 1),
		"de-DE": rules("€", ",", ".", []int{3}, 2, 3, 8),
		"de-CH": rules("CHF", ".", "’", []int{3}, 2, 2, 2),
		"fr-FR": rules("€", ",", "\u202f", []int{3}, 2, 3, 8),
		"es-ES": rules("€", ",", ".", []int{3}, 2, 3, 8),
		"it-IT": rules("€", ",", ".", []int{3}, 2, 3, 8),
		"nl-NL": rules("€", ",", ".", []int{3}, 2, 2, 12),
		"ja-JP": rules("￥", ".", ",", []int{3}, 0, 0, 1),
		"pt-BR": rules("R$", ",", ".", []int{3}, 2, 2, 9),
		"sv-SE": rules("kr", ",", "\u00a0", []int{3}, 2, 3, 8),
	}
}

// BuiltinProvider resolves BCP 47 tags to the closest locale it knows.
// It is immutable after construction and safe for concurrent use.
type BuiltinProvider struct {
	fallback string
	tags     []language.Tag
	rules    []domain.NumberFormatRules
	matcher  language.Matcher
}

// Option customizes a BuiltinProvider.
type Option func(map[string]domain.NumberFormatRules)

// WithRules adds or replaces the rules for a locale tag.
func WithRules(tag string, rules domain.NumberFormatRules) Option {
	return func(m map[string]domain.NumberFormatRules) {
		if t, err := language.Parse(tag); err == nil {
			tag = t.String()
		}
		m[tag] = rules.Clone()
	}
}

// NewBuiltinProvider creates a provider over the built-in locale table.
// fallback is used for empty tags; tags that match nothing get invariant rules.
func NewBuiltinProvider(fallback string, opts ...Option) (*BuiltinProvider, error) {
	table := builtinRules()
	for _, opt := range opts {
		opt(table)
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	// language.Und comes first so that unmatched tags resolve to invariant rules.
	p := &BuiltinProvider{
		tags:  []language.Tag{language.Und},
		rules: []domain.NumberFormatRules{Invariant()},
	}
	for _, name := range names {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q in rules table: %w", name, err)
		}
		p.tags = append(p.tags, tag)
		p.rules = append(p.rules, table[name])
	}
	p.matcher = language.NewMatcher(p.tags)

	if fallback != "" {
		if _, err := language.Parse(fallback); err != nil {
			return nil, apperrors.NewValidationError("locale", fallback, "not a valid BCP 47 language tag")
		}
	}
	p.fallback = fallback
	return p, nil
}

// Rules implements Provider.
func (p *BuiltinProvider) Rules(tag string) (domain.NumberFormatRules, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		tag = p.fallback
	}
	if tag == "" || strings.EqualFold(tag, "und") || strings.EqualFold(tag, "invariant") {
		return p.rules[0].Clone(), nil
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return domain.NumberFormatRules{}, apperrors.NewValidationError("locale", tag, "not a valid BCP 47 language tag")
	}
	_, idx, confidence := p.matcher.Match(parsed)
	if confidence == language.No {
		idx = 0
	}
	return p.rules[idx].Clone(), nil
}

// Locales lists the supported tags in canonical form, excluding the invariant locale.
func (p *BuiltinProvider) Locales() []string {
	out := make([]string, 0, len(p.tags)-1)
	for _, t := range p.tags[1:] {
		out = append(out, t.String())
	}
	return out
}
