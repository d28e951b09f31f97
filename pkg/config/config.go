package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Optional Postgres source of external currency definitions
	DatabaseURL    string
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string

	// Currency registry
	CurrencyConfigFile   string // YAML/JSON/TOML file with extra currencies and locale rules
	UseBuiltinCurrencies bool
	LazyRegistryInit     bool // build the registry on first request instead of at start-up
	DefaultLocale        string

	// HTTP
	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("CURRENCY_CONFIG_FILE", "")
	v.SetDefault("USE_BUILTIN_CURRENCIES", true)
	v.SetDefault("LAZY_REGISTRY_INIT", false)
	v.SetDefault("DEFAULT_LOCALE", "en-US")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.AutomaticEnv()

	cfg := &Config{
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		DatabaseURL:          v.GetString("PGSQL_URL"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:        v.GetBool("RUN_MIGRATIONS"),
		MigrationsPath:       v.GetString("MIGRATIONS_PATH"),
		CurrencyConfigFile:   v.GetString("CURRENCY_CONFIG_FILE"),
		UseBuiltinCurrencies: v.GetBool("USE_BUILTIN_CURRENCIES"),
		LazyRegistryInit:     v.GetBool("LAZY_REGISTRY_INIT"),
		DefaultLocale:        v.GetString("DEFAULT_LOCALE"),
		RateLimit:            v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		log.Println("Info: PGSQL_URL not set. Currency definitions will not be read from a database.")
	}
	if cfg.CurrencyConfigFile == "" {
		log.Println("Info: CURRENCY_CONFIG_FILE not set. Only built-in currencies are available unless a database is configured.")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
