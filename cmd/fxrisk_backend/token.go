package main

import (
	"fmt"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/utils"
	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenExpiry  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token signed with JWT_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		expiry := tokenExpiry
		if expiry <= 0 {
			expiry = cfg.JWTExpiryDuration
		}
		signed, err := utils.GenerateJWT(tokenSubject, cfg.JWTSecret, cfg.JWTIssuer, time.Now(), expiry)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), signed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVarP(&tokenSubject, "subject", "s", "dashboard-user", "token subject (user id)")
	tokenCmd.Flags().DurationVarP(&tokenExpiry, "expiry", "e", 0, "token lifetime (defaults to JWT_EXPIRY_DURATION)")
}
