package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/currency_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_registry/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_registry/internal/core/ports/services"
	"github.com/SscSPs/currency_registry/internal/core/services"
	"github.com/SscSPs/currency_registry/internal/handlers"
	"github.com/SscSPs/currency_registry/internal/locale"
	"github.com/SscSPs/currency_registry/internal/middleware"
	"github.com/SscSPs/currency_registry/internal/repositories"
	"github.com/SscSPs/currency_registry/internal/repositories/database/pgsql"
	"github.com/SscSPs/currency_registry/internal/repositories/file"
	"github.com/SscSPs/currency_registry/pkg/config"
	"github.com/SscSPs/currency_registry/pkg/database"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// --- Currency definition sources ---
	var sources []portsrepo.CurrencyDefinitionReader
	var localeOptions []locale.Option

	if cfg.CurrencyConfigFile != "" {
		fileRepo := file.NewCurrencyFileRepository(cfg.CurrencyConfigFile)
		localeRules, err := fileRepo.LocaleRules()
		if err != nil {
			logger.Error("Failed to read locale rules", slog.String("file", cfg.CurrencyConfigFile), slog.String("error", err.Error()))
			os.Exit(1)
		}
		for tag, rules := range localeRules {
			localeOptions = append(localeOptions, locale.WithRules(tag, rules))
		}
		sources = append(sources, fileRepo)
	}

	if cfg.DatabaseURL != "" {
		if cfg.RunMigrations {
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				logger.Error("Database migrations failed", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}

		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		sources = append(sources, pgsql.NewCurrencyDefinitionRepository(dbPool))
	}

	repos := portsrepo.RepositoryProvider{}
	if len(sources) > 0 {
		repos.CurrencyDefinitions = repositories.NewMultiSourceReader(sources...)
	}

	locales, err := locale.NewBuiltinProvider(cfg.DefaultLocale, localeOptions...)
	if err != nil {
		logger.Error("Failed to create locale provider", slog.String("default_locale", cfg.DefaultLocale), slog.String("error", err.Error()))
		os.Exit(1)
	}

	svcs := services.NewServiceContainer(cfg, repos, locales, logger)

	if !cfg.LazyRegistryInit {
		if err := initializeRegistry(ctx, svcs.Currency, repos.CurrencyDefinitions); err != nil {
			logger.Error("Failed to initialize currency registry", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// --- HTTP server ---
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcs, rateLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// initializeRegistry loads the external definitions and builds the registry before serving.
func initializeRegistry(ctx context.Context, registry portssvc.CurrencyRegistrySvc, reader portsrepo.CurrencyDefinitionReader) error {
	var defs []*domain.CurrencyDefinition
	if reader != nil {
		var err error
		defs, err = reader.ListCurrencyDefinitions(ctx)
		if err != nil {
			return err
		}
	}
	return registry.Initialize(ctx, defs)
}
