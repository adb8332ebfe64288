package main

import (
	"log/slog"

	"github.com/SscSPs/fx_risk_dashboard/internal/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo positions and exchange rates",
	Long: `Seed upserts five demo currency positions and records a recent set of USD quotes.
Positions are written through the risk engine, so their tiers are classified on the way in.
Running it twice updates the positions and appends new quotes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			logger.Error("Failed to start", slog.String("error", err.Error()))
			return err
		}
		defer a.Close()

		seeder := seed.NewSeeder(a.services.RiskEngine, a.services.ExchangeRate, nil, logger)
		if err := seeder.Run(cmd.Context()); err != nil {
			logger.Error("Seeding failed", slog.String("error", err.Error()))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
