package cmd

import (
	"fmt"
	"strconv"

	"storefront/domain/preferences"

	"github.com/spf13/cobra"
)

func newQuoteCommand(opts *rootOptions) *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "quote <subtotal>",
		Short: "Price a cart subtotal with the configured policy",
		Example: `  storefront quote 3097
  storefront quote 349 --currency USD`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subtotal, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || subtotal < 0 {
				return fmt.Errorf("subtotal must be a non-negative integer, got %q", args[0])
			}
			c, ok := preferences.ParseCurrency(currency)
			if !ok {
				return fmt.Errorf("unsupported currency %q", currency)
			}

			b := pricingFromConfig(opts.cfg.Pricing).Quote(subtotal)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "subtotal  %s\n", c.Format(b.Subtotal))
			fmt.Fprintf(out, "shipping  %s\n", c.Format(b.Shipping))
			fmt.Fprintf(out, "tax       %s\n", c.Format(b.Tax))
			fmt.Fprintf(out, "total     %s\n", c.Format(b.Total))
			return nil
		},
	}
	cmd.Flags().StringVar(&currency, "currency", "INR", "Display currency (INR, USD, EUR)")
	return cmd
}
