package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/currency_registry/internal/dto"
	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService(cmd)
			if err != nil {
				return err
			}
			defs, err := svc.ListCurrencies(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNUMERIC\tSYMBOL\tPRECISION")
			for _, c := range dto.ToListCurrencyResponse(defs) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", c.AlphaCode, c.NumericCode, c.Symbol, c.Precision)
			}
			return w.Flush()
		},
	}
}
