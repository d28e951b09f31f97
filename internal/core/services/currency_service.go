package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/SscSPs/currency_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_registry/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_registry/internal/core/ports/services"
	"github.com/SscSPs/currency_registry/internal/locale"
	"github.com/shopspring/decimal"
)

// CurrencyServiceOption is a functional option for configuring the currency service
type CurrencyServiceOption func(*CurrencyService)

// WithDefinitionReader sets the source of external definitions used by lazy initialization.
func WithDefinitionReader(reader portsrepo.CurrencyDefinitionReader) CurrencyServiceOption {
	return func(s *CurrencyService) {
		s.reader = reader
	}
}

// WithLocaleProvider sets the provider used by FormatCurrencyForLocale.
func WithLocaleProvider(provider locale.Provider) CurrencyServiceOption {
	return func(s *CurrencyService) {
		s.locales = provider
	}
}

// WithBuiltinCurrencies replaces the built-in defaults. Pass nil for an empty set.
func WithBuiltinCurrencies(defs []*domain.CurrencyDefinition) CurrencyServiceOption {
	return func(s *CurrencyService) {
		s.defaults = defs
	}
}

// WithLogger sets the logger used when no request-scoped logger is available.
func WithLogger(logger *slog.Logger) CurrencyServiceOption {
	return func(s *CurrencyService) {
		s.Logger = logger
	}
}

// CurrencyService owns the process-wide currency registry. The registry is
// built exactly once, either by Initialize or lazily by the first read, and
// is read without locking afterwards.
type CurrencyService struct {
	BaseService

	reader   portsrepo.CurrencyDefinitionReader
	locales  locale.Provider
	defaults []*domain.CurrencyDefinition

	mu       sync.Mutex // serializes initialization
	registry atomic.Pointer[domain.CurrencyRegistry]
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// NewCurrencyService creates an uninitialized currency service seeded with the built-in currencies.
func NewCurrencyService(options ...CurrencyServiceOption) *CurrencyService {
	svc := &CurrencyService{
		defaults: domain.BuiltinCurrencies(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Initialize builds the registry from the defaults followed by defs.
// It returns apperrors.ErrRegistryInitialized if the registry already exists.
func (s *CurrencyService) Initialize(ctx context.Context, defs []*domain.CurrencyDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry.Load() != nil {
		return apperrors.ErrRegistryInitialized
	}
	_, err := s.build(ctx, defs)
	return err
}

// IsInitialized reports whether the registry has been built.
func (s *CurrencyService) IsInitialized() bool {
	return s.registry.Load() != nil
}

// Registry returns the registry, loading external definitions and building it
// on first use. A failed load leaves the service uninitialized.
func (s *CurrencyService) Registry(ctx context.Context) (*domain.CurrencyRegistry, error) {
	if reg := s.registry.Load(); reg != nil {
		return reg, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if reg := s.registry.Load(); reg != nil {
		return reg, nil
	}

	var defs []*domain.CurrencyDefinition
	if s.reader != nil {
		var err error
		defs, err = s.reader.ListCurrencyDefinitions(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to load external currency definitions")
			return nil, fmt.Errorf("failed to load currency definitions: %w", err)
		}
	}
	return s.build(ctx, defs)
}

// build must be called with s.mu held.
func (s *CurrencyService) build(ctx context.Context, defs []*domain.CurrencyDefinition) (*domain.CurrencyRegistry, error) {
	reg, err := domain.NewCurrencyRegistry(s.defaults, defs)
	if err != nil {
		s.LogError(ctx, err, "Failed to build currency registry")
		return nil, fmt.Errorf("failed to initialize currency registry: %w", err)
	}
	s.registry.Store(reg)

	s.LogInfo(ctx, "Currency registry initialized",
		slog.Int("builtin", len(s.defaults)),
		slog.Int("external", len(defs)),
		slog.Int("currencies", reg.Len()),
	)
	return reg, nil
}

// GetCurrency resolves key to its definition.
func (s *CurrencyService) GetCurrency(ctx context.Context, key domain.CurrencyKey) (*domain.CurrencyDefinition, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	reg, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	def, ok := reg.Lookup(key)
	if !ok {
		return nil, &apperrors.UnknownCurrencyCodeError{Key: key.String()}
	}
	return def, nil
}

// ListCurrencies returns every registered currency ordered by alpha code.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]*domain.CurrencyDefinition, error) {
	reg, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	return reg.Definitions(), nil
}

// FormatCurrency formats amount for key on top of the given baseline rules.
func (s *CurrencyService) FormatCurrency(ctx context.Context, amount decimal.Decimal, key domain.CurrencyKey, rules domain.NumberFormatRules) (string, error) {
	reg, err := s.Registry(ctx)
	if err != nil {
		return "", err
	}
	return reg.FormatCurrency(amount, key, rules)
}

// FormatCurrencyForLocale formats amount for key using the baseline rules of
// the locale tag. Without a locale provider invariant rules are used.
func (s *CurrencyService) FormatCurrencyForLocale(ctx context.Context, amount decimal.Decimal, key domain.CurrencyKey, localeTag string) (string, error) {
	rules := locale.Invariant()
	if s.locales != nil {
		var err error
		rules, err = s.locales.Rules(localeTag)
		if err != nil {
			return "", err
		}
	}
	return s.FormatCurrency(ctx, amount, key, rules)
}
