package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/auth"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/config"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

func tokenCmd() *cobra.Command {
	var (
		actor string
		name  string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token with the server's signing secret",
		Long: `Mint an access token for an operator. Reads the server configuration
(AUTH_JWT_SECRET and friends), so it only works where the server config is
available.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			actorID, err := uuid.Parse(actor)
			if err != nil {
				return domain.NewValidationError("actor", "invalid id")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
			token, err := tokens.Issue(actorID, name)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "operator id (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	_ = cmd.MarkFlagRequired("actor")
	return cmd
}
