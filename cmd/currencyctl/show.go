package main

import (
	"encoding/json"

	"github.com/SscSPs/currency_registry/internal/core/domain"
	"github.com/SscSPs/currency_registry/internal/dto"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <code>",
		Short: "Show one currency by alpha or numeric code",
		Example: `  currencyctl show EUR
  currencyctl show 978`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService(cmd)
			if err != nil {
				return err
			}
			def, err := svc.GetCurrency(cmd.Context(), domain.ParseCurrencyKey(args[0]))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.ToCurrencyResponse(def))
		},
	}
}
