package services

import (
	portsrepo "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_risk_dashboard/internal/core/risk"
	"github.com/SscSPs/fx_risk_dashboard/internal/platform/config"
)

// ThresholdsFromConfig builds the shared risk threshold set from configuration.
func ThresholdsFromConfig(cfg *config.Config) risk.Thresholds {
	return risk.Thresholds{
		High:       cfg.RiskHighThreshold,
		Medium:     cfg.RiskMediumThreshold,
		LowBalance: cfg.LowBalanceThreshold,
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	thresholds := ThresholdsFromConfig(cfg)
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		RiskEngine: NewRiskEngine(
			repos.PositionRepo,
			repos.ExchangeRateRepo,
			WithThresholds(thresholds),
			WithPairConvention(risk.NewPairConvention(cfg.BaseQuotedCurrencies)),
			WithAlertTTL(cfg.AlertTTL),
		),
		ExchangeRate: NewExchangeRateService(repos.ExchangeRateRepo, nil),
	}, nil
}
