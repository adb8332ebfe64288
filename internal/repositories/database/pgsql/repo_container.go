package pgsql

import (
	portsrepo "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryOption decorates the repositories built by NewRepositoryProvider.
type RepositoryOption func(*portsrepo.RepositoryProvider)

// WithExchangeRateDecorator wraps the exchange rate repository, e.g. with a cache.
func WithExchangeRateDecorator(wrap func(portsrepo.ExchangeRateRepositoryFacade) portsrepo.ExchangeRateRepositoryFacade) RepositoryOption {
	return func(p *portsrepo.RepositoryProvider) {
		p.ExchangeRateRepo = wrap(p.ExchangeRateRepo)
	}
}

func NewRepositoryProvider(dbPool *pgxpool.Pool, options ...RepositoryOption) portsrepo.RepositoryProvider {
	provider := portsrepo.RepositoryProvider{
		PositionRepo:     newPgxPositionRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
	}
	for _, option := range options {
		option(&provider)
	}
	return provider
}
