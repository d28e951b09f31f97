package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/currency_registry/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_registry/internal/core/ports/services"
	"github.com/SscSPs/currency_registry/internal/locale"
	"github.com/SscSPs/currency_registry/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locales locale.Provider, logger *slog.Logger) *portssvc.ServiceContainer {
	options := []CurrencyServiceOption{
		WithLocaleProvider(locales),
		WithLogger(logger),
	}
	if repos.CurrencyDefinitions != nil {
		options = append(options, WithDefinitionReader(repos.CurrencyDefinitions))
	}
	if !cfg.UseBuiltinCurrencies {
		options = append(options, WithBuiltinCurrencies(nil))
	}

	return &portssvc.ServiceContainer{
		Currency: NewCurrencyService(options...),
	}
}
