package main

import (
	"fmt"

	"github.com/SscSPs/currency_registry/internal/core/domain"
	"github.com/spf13/cobra"
)

func newFormatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "format <code> <amount>",
		Short: "Format an amount in a currency",
		Long: `Format an amount in a currency.

A negative amount must follow "--", otherwise it is read as a flag.`,
		Example: `  currencyctl format USD 1234.5
  currencyctl format --locale de-DE EUR -- -1234.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := domain.ParseAmount(args[1])
			if err != nil {
				return err
			}
			svc, err := opts.newService(cmd)
			if err != nil {
				return err
			}
			out, err := svc.FormatCurrencyForLocale(cmd.Context(), amount, domain.ParseCurrencyKey(args[0]), opts.locale)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
