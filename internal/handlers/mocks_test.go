package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_risk_dashboard/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock RiskEngine ---
type MockRiskEngine struct {
	mock.Mock
}

func (m *MockRiskEngine) ListPositions(ctx context.Context) ([]domain.CurrencyPosition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyPosition), args.Error(1)
}

func (m *MockRiskEngine) GetPosition(ctx context.Context, currency string) (*domain.CurrencyPosition, bool, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.CurrencyPosition), args.Bool(1), args.Error(2)
}

func (m *MockRiskEngine) ListPositionsByRiskLevel(ctx context.Context, level domain.RiskLevel) ([]domain.CurrencyPosition, error) {
	args := m.Called(ctx, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyPosition), args.Error(1)
}

func (m *MockRiskEngine) ListLowBalancePositions(ctx context.Context) ([]domain.CurrencyPosition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyPosition), args.Error(1)
}

func (m *MockRiskEngine) UpdatePosition(ctx context.Context, req dto.UpsertPositionRequest) (*domain.CurrencyPosition, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyPosition), args.Error(1)
}

func (m *MockRiskEngine) ListAlerts(ctx context.Context) ([]domain.RiskAlert, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RiskAlert), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.RiskEngineSvcFacade = (*MockRiskEngine)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetLatestRate(ctx context.Context, currencyPair string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyPair)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) GetRateHistory(ctx context.Context, currencyPair string, start, end time.Time) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyPair, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) RecordRate(ctx context.Context, req dto.RecordExchangeRateRequest) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)
