package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/infrastructure/session"

	"github.com/spf13/cobra"
)

func newTokenCommand(opts *rootOptions) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Issue a session token for local testing",
		Long: `Issue a signed session token for user-id. Send it as
"Authorization: Bearer <token>" to act as that user, which checkout requires.
Refused in production.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cfg.IsProduction() {
				return errors.New("token issuance is disabled in production")
			}
			userID := strings.TrimSpace(args[0])
			if userID == "" {
				return errors.New("user id must not be empty")
			}
			if ttl <= 0 {
				ttl = cfg.Session.TokenTTL
			}

			token, err := session.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.Issuer, ttl).Issue(userID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (default: session.token_ttl)")
	return cmd
}
