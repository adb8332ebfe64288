package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	AuthEnabled       bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Redis backs the latest-rate cache and the rate limiter; empty RedisAddr disables both uses.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RateCacheTTL  time.Duration

	RateLimit          string // ulule format, e.g. "100-M"
	CORSAllowedOrigins []string

	RiskHighThreshold    decimal.Decimal
	RiskMediumThreshold  decimal.Decimal
	LowBalanceThreshold  decimal.Decimal
	BaseQuotedCurrencies []string
	AlertTTL             time.Duration
	AlertScanSchedule    string // cron spec; empty disables the scheduled scan

	PosthogAPIKey string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "fx-risk-dashboard")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_CACHE_TTL", "30s")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RISK_HIGH_THRESHOLD", "1000000")
	viper.SetDefault("RISK_MEDIUM_THRESHOLD", "500000")
	viper.SetDefault("LOW_BALANCE_THRESHOLD", "50000")
	viper.SetDefault("BASE_QUOTED_CURRENCIES", "EUR,GBP")
	viper.SetDefault("ALERT_TTL", "24h")
	viper.SetDefault("ALERT_SCAN_SCHEDULE", "@every 1m")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   viper.GetString("PGSQL_URL"),
		Port:          viper.GetString("PORT"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck: viper.GetBool("ENABLE_DB_CHECK"),
		AuthEnabled:   viper.GetBool("AUTH_ENABLED"),
		JWTSecret:     viper.GetString("JWT_SECRET"),
		JWTIssuer:     viper.GetString("JWT_ISSUER"),
		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),
		RedisDB:       viper.GetInt("REDIS_DB"),
		RateLimit:     viper.GetString("RATE_LIMIT"),
		PosthogAPIKey: viper.GetString("POSTHOG_API_KEY"),

		CORSAllowedOrigins:   splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		BaseQuotedCurrencies: splitList(viper.GetString("BASE_QUOTED_CURRENCIES")),
		AlertScanSchedule:    strings.TrimSpace(viper.GetString("ALERT_SCAN_SCHEDULE")),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.AuthEnabled && cfg.IsProduction && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set when AUTH_ENABLED is true in production")
	}

	var err error
	if cfg.JWTExpiryDuration, err = durationSetting("JWT_EXPIRY_DURATION", time.Hour); err != nil {
		return nil, err
	}
	if cfg.RateCacheTTL, err = durationSetting("RATE_CACHE_TTL", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.AlertTTL, err = durationSetting("ALERT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	if cfg.RiskHighThreshold, err = decimalSetting("RISK_HIGH_THRESHOLD"); err != nil {
		return nil, err
	}
	if cfg.RiskMediumThreshold, err = decimalSetting("RISK_MEDIUM_THRESHOLD"); err != nil {
		return nil, err
	}
	if cfg.LowBalanceThreshold, err = decimalSetting("LOW_BALANCE_THRESHOLD"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func durationSetting(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(viper.GetString(key))
	if raw == "" {
		slog.Warn("Duration setting empty, using default", slog.String("key", key), slog.String("default", fallback.String()))
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}

func decimalSetting(key string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(viper.GetString(key))
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
