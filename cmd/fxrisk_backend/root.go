package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portsrepo "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_risk_dashboard/internal/core/services"
	"github.com/SscSPs/fx_risk_dashboard/internal/platform/config"
	"github.com/SscSPs/fx_risk_dashboard/internal/repositories/cache"
	"github.com/SscSPs/fx_risk_dashboard/internal/repositories/database/pgsql"
	"github.com/SscSPs/fx_risk_dashboard/migrations"
	"github.com/SscSPs/fx_risk_dashboard/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var (
	logger *slog.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fxrisk",
	Short: "FX risk dashboard backend",
	Long: `fxrisk serves the FX risk dashboard API and its maintenance tasks.

Commands:
  - serve:   run the HTTP API and the scheduled alert scan
  - migrate: apply pending database migrations
  - seed:    load the demo positions and quotes
  - token:   mint a bearer token for local use`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
		slog.SetDefault(logger)

		loaded, err := config.LoadConfig()
		if err != nil {
			logger.Error("Failed to load config", slog.String("error", err.Error()))
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// app holds the infrastructure shared by serve and seed.
type app struct {
	pool     *pgxpool.Pool
	redis    *redis.Client
	services *portssvc.ServiceContainer
}

func (a *app) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.Error("Error closing redis client", slog.String("error", err.Error()))
		}
	}
	database.ClosePgxPool(a.pool)
}

// bootstrap opens the database, migrates it, attaches the optional rate cache and builds the services.
func bootstrap(ctx context.Context) (*app, error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	a := &app{pool: pool}

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, logger); err != nil {
		a.Close()
		return nil, err
	}

	var repoOptions []pgsql.RepositoryOption
	if cfg.RedisAddr != "" {
		a.redis, err = database.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			a.Close()
			return nil, err
		}
		repoOptions = append(repoOptions, pgsql.WithExchangeRateDecorator(func(next portsrepo.ExchangeRateRepositoryFacade) portsrepo.ExchangeRateRepositoryFacade {
			return cache.NewExchangeRateCache(next, a.redis, cfg.RateCacheTTL)
		}))
		logger.Info("Latest-rate cache enabled", slog.String("redis_addr", cfg.RedisAddr), slog.Duration("ttl", cfg.RateCacheTTL))
	} else {
		logger.Warn("REDIS_ADDR not set, latest-rate cache disabled")
	}

	repos := pgsql.NewRepositoryProvider(pool, repoOptions...)
	a.services, err = services.NewServiceContainer(cfg, repos)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}
