package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/currency_registry/internal/core/services"
	"github.com/SscSPs/currency_registry/internal/locale"
	"github.com/SscSPs/currency_registry/internal/repositories/file"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	file       string
	locale     string
	noBuiltins bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "currencyctl",
		Short: "Inspect and format currencies from the command line",
		Long: `currencyctl builds the same currency registry as the HTTP service
from the built-in ISO 4217 set plus an optional currency file, and
lets you list, look up and format currencies without running a server.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", os.Getenv("CURRENCY_CONFIG_FILE"), "currency file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVarP(&opts.locale, "locale", "l", "", "locale tag used for formatting (e.g. de-DE)")
	rootCmd.PersistentFlags().BoolVar(&opts.noBuiltins, "no-builtins", false, "do not seed the registry with built-in currencies")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log registry initialization to stderr")

	rootCmd.AddCommand(newListCmd(opts), newShowCmd(opts), newFormatCmd(opts))
	return rootCmd
}

// newService wires a CurrencyService from the command line options.
func (o *rootOptions) newService(cmd *cobra.Command) (*services.CurrencyService, error) {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	svcOpts := []services.CurrencyServiceOption{services.WithLogger(logger)}
	var localeOpts []locale.Option

	if o.file != "" {
		repo := file.NewCurrencyFileRepository(o.file)
		rules, err := repo.LocaleRules()
		if err != nil {
			return nil, err
		}
		for tag, r := range rules {
			localeOpts = append(localeOpts, locale.WithRules(tag, r))
		}
		svcOpts = append(svcOpts, services.WithDefinitionReader(repo))
	}
	if o.noBuiltins {
		svcOpts = append(svcOpts, services.WithBuiltinCurrencies(nil))
	}

	locales, err := locale.NewBuiltinProvider("", localeOpts...)
	if err != nil {
		return nil, err
	}
	svcOpts = append(svcOpts, services.WithLocaleProvider(locales))

	return services.NewCurrencyService(svcOpts...), nil
}
