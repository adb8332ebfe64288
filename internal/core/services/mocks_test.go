package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockPositionRepository is a mock type for the PositionRepositoryFacade interface
type MockPositionRepository struct {
	mock.Mock
}

func (m *MockPositionRepository) ListPositions(ctx context.Context) ([]domain.CurrencyPosition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyPosition), args.Error(1)
}

func (m *MockPositionRepository) FindPositionByCurrency(ctx context.Context, currency string) (*domain.CurrencyPosition, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyPosition), args.Error(1)
}

func (m *MockPositionRepository) FindPositionsByRiskLevel(ctx context.Context, level domain.RiskLevel) ([]domain.CurrencyPosition, error) {
	args := m.Called(ctx, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyPosition), args.Error(1)
}

func (m *MockPositionRepository) FindPositionsWithAbsNetBelow(ctx context.Context, threshold decimal.Decimal) ([]domain.CurrencyPosition, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyPosition), args.Error(1)
}

// SavePosition echoes the stored position when the expectation returns nil for the result.
func (m *MockPositionRepository) SavePosition(ctx context.Context, position domain.CurrencyPosition) (*domain.CurrencyPosition, error) {
	args := m.Called(ctx, position)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	if args.Get(0) == nil {
		saved := position
		return &saved, nil
	}
	return args.Get(0).(*domain.CurrencyPosition), nil
}

// MockExchangeRateRepository is a mock type for the ExchangeRateRepositoryFacade interface
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindLatestRate(ctx context.Context, currencyPair string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyPair)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindRatesInRange(ctx context.Context, currencyPair string, start, end time.Time) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyPair, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rate)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	if args.Get(0) == nil {
		saved := rate
		return &saved, nil
	}
	return args.Get(0).(*domain.ExchangeRate), nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func position(currency, balance, income, payments string) domain.CurrencyPosition {
	return domain.CurrencyPosition{
		Currency:        currency,
		Balance:         dec(balance),
		PendingIncome:   dec(income),
		PendingPayments: dec(payments),
	}
}
