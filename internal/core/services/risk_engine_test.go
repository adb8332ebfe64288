package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/SscSPs/fx_risk_dashboard/internal/core/risk"
	"github.com/SscSPs/fx_risk_dashboard/internal/core/services"
	"github.com/SscSPs/fx_risk_dashboard/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RiskEngineTestSuite struct {
	suite.Suite
	positionRepo *MockPositionRepository
	rateRepo     *MockExchangeRateRepository
	now          time.Time
	engine       *services.RiskEngine
}

func (suite *RiskEngineTestSuite) SetupTest() {
	suite.positionRepo = new(MockPositionRepository)
	suite.rateRepo = new(MockExchangeRateRepository)
	suite.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.engine = services.NewRiskEngine(suite.positionRepo, suite.rateRepo, services.WithClock(fixedClock(suite.now)))
}

func (suite *RiskEngineTestSuite) TearDownTest() {
	suite.positionRepo.AssertExpectations(suite.T())
	suite.rateRepo.AssertExpectations(suite.T())
}

// --- UpdatePosition ---

func (suite *RiskEngineTestSuite) TestUpdatePosition_EURIsMediumAndEnrichedWithEURUSD() {
	ctx := context.Background()
	rateTime := suite.now.Add(-time.Minute)
	req := dto.UpsertPositionRequest{
		Currency:        "EUR",
		Balance:         decPtr("800000"),
		PendingIncome:   decPtr("25000"),
		PendingPayments: decPtr("75000"),
	}

	var stored domain.CurrencyPosition
	suite.positionRepo.On("SavePosition", ctx, mock.AnythingOfType("domain.CurrencyPosition")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(domain.CurrencyPosition) }).
		Return(nil, nil).Once()

	saved, err := suite.engine.UpdatePosition(ctx, req)
	suite.Require().NoError(err)
	suite.Equal(domain.RiskMedium, saved.RiskLevel)
	suite.True(saved.NetExposure().Equal(dec("750000")))
	suite.Equal(suite.now, saved.LastUpdated)

	suite.positionRepo.On("FindPositionByCurrency", ctx, "EUR").Return(&stored, nil).Once()
	suite.rateRepo.On("FindLatestRate", ctx, "EURUSD").
		Return(&domain.ExchangeRate{CurrencyPair: "EURUSD", Rate: dec("1.0850"), Timestamp: rateTime}, nil).Once()

	got, found, err := suite.engine.GetPosition(ctx, "EUR")
	suite.Require().NoError(err)
	suite.Require().True(found)
	suite.Equal(domain.RiskMedium, got.RiskLevel)
	suite.True(got.CurrentRate.Equal(dec("1.0850")))
	suite.Equal(rateTime, *got.RateTimestamp)
}

func (suite *RiskEngineTestSuite) TestUpdatePosition_USDIsHighWithUnitRate() {
	ctx := context.Background()
	req := dto.UpsertPositionRequest{
		Currency:        "USD",
		Balance:         decPtr("1000000"),
		PendingIncome:   decPtr("50000"),
		PendingPayments: decPtr("30000"),
	}

	var stored domain.CurrencyPosition
	suite.positionRepo.On("SavePosition", ctx, mock.AnythingOfType("domain.CurrencyPosition")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(domain.CurrencyPosition) }).
		Return(nil, nil).Once()

	saved, err := suite.engine.UpdatePosition(ctx, req)
	suite.Require().NoError(err)
	suite.Equal(domain.RiskHigh, saved.RiskLevel)

	suite.positionRepo.On("FindPositionByCurrency", ctx, "USD").Return(&stored, nil).Once()

	got, found, err := suite.engine.GetPosition(ctx, "usd")
	suite.Require().NoError(err)
	suite.Require().True(found)
	suite.True(got.CurrentRate.Equal(decimal.NewFromInt(1)))
	suite.Equal(suite.now, *got.RateTimestamp)
	suite.rateRepo.AssertNotCalled(suite.T(), "FindLatestRate", mock.Anything, mock.Anything)
}

func (suite *RiskEngineTestSuite) TestUpdatePosition_IgnoresCallerRiskLevel() {
	ctx := context.Background()
	req := dto.UpsertPositionRequest{
		Currency:  "GBP",
		Balance:   decPtr("1500000"),
		RiskLevel: "LOW",
	}
	suite.positionRepo.On("SavePosition", ctx, mock.MatchedBy(func(p domain.CurrencyPosition) bool {
		return p.RiskLevel == domain.RiskHigh
	})).Return(nil, nil).Once()

	saved, err := suite.engine.UpdatePosition(ctx, req)
	suite.Require().NoError(err)
	suite.Equal(domain.RiskHigh, saved.RiskLevel)
	suite.True(saved.PendingIncome.IsZero())
	suite.True(saved.PendingPayments.IsZero())
}

func (suite *RiskEngineTestSuite) TestUpdatePosition_Idempotent() {
	ctx := context.Background()
	req := dto.UpsertPositionRequest{
		Currency:        "JPY",
		Balance:         decPtr("50000000"),
		PendingIncome:   decPtr("1000000"),
		PendingPayments: decPtr("2000000"),
	}

	var stored []domain.CurrencyPosition
	suite.positionRepo.On("SavePosition", ctx, mock.AnythingOfType("domain.CurrencyPosition")).
		Run(func(args mock.Arguments) { stored = append(stored, args.Get(1).(domain.CurrencyPosition)) }).
		Return(nil, nil).Twice()

	first, err := suite.engine.UpdatePosition(ctx, req)
	suite.Require().NoError(err)
	second, err := suite.engine.UpdatePosition(ctx, req)
	suite.Require().NoError(err)

	suite.Require().Len(stored, 2)
	suite.Equal(stored[0], stored[1])
	suite.Equal(first.RiskLevel, second.RiskLevel)
	suite.Equal(domain.RiskHigh, first.RiskLevel)
}

func (suite *RiskEngineTestSuite) TestUpdatePosition_ValidationLeavesStoreUntouched() {
	tests := []struct {
		name  string
		req   dto.UpsertPositionRequest
		field string
	}{
		{"empty currency", dto.UpsertPositionRequest{Currency: "  ", Balance: decPtr("1")}, "currency"},
		{"bad currency", dto.UpsertPositionRequest{Currency: "EURO", Balance: decPtr("1")}, "currency"},
		{"missing balance", dto.UpsertPositionRequest{Currency: "EUR"}, "balance"},
		{"balance too precise", dto.UpsertPositionRequest{Currency: "EUR", Balance: decPtr("1.00001")}, "balance"},
		{"income too precise", dto.UpsertPositionRequest{Currency: "EUR", Balance: decPtr("1"), PendingIncome: decPtr("0.12345")}, "pendingIncome"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.engine.UpdatePosition(context.Background(), tt.req)

			suite.Require().ErrorIs(err, apperrors.ErrValidation)
			var vErr *apperrors.ValidationError
			suite.Require().ErrorAs(err, &vErr)
			suite.Equal(tt.field, vErr.Field)
		})
	}
	suite.positionRepo.AssertNotCalled(suite.T(), "SavePosition", mock.Anything, mock.Anything)
}

func (suite *RiskEngineTestSuite) TestUpdatePosition_StoreError() {
	ctx := context.Background()
	storeErr := errors.New("deadlock detected")
	suite.positionRepo.On("SavePosition", ctx, mock.Anything).Return(nil, storeErr).Once()

	saved, err := suite.engine.UpdatePosition(ctx, dto.UpsertPositionRequest{Currency: "CNY", Balance: decPtr("2000000")})

	suite.Nil(saved)
	suite.ErrorIs(err, storeErr)
	suite.NotErrorIs(err, apperrors.ErrValidation)
}

func (suite *RiskEngineTestSuite) TestUpdatePosition_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.engine.UpdatePosition(ctx, dto.UpsertPositionRequest{Currency: "CNY", Balance: decPtr("2000000")})

	suite.ErrorIs(err, context.Canceled)
	suite.positionRepo.AssertNotCalled(suite.T(), "SavePosition", mock.Anything, mock.Anything)
}

// --- Reads ---

func (suite *RiskEngineTestSuite) TestListPositions_EnrichesEveryPosition() {
	ctx := context.Background()
	rateTime := suite.now.Add(-5 * time.Minute)
	suite.positionRepo.On("ListPositions", ctx).Return([]domain.CurrencyPosition{
		position("USD", "1000000", "50000", "30000"),
		position("JPY", "50000000", "1000000", "2000000"),
	}, nil).Once()
	suite.rateRepo.On("FindLatestRate", ctx, "USDJPY").
		Return(&domain.ExchangeRate{CurrencyPair: "USDJPY", Rate: dec("150.50"), Timestamp: rateTime}, nil).Once()

	positions, err := suite.engine.ListPositions(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(positions, 2)
	suite.True(positions[0].CurrentRate.Equal(decimal.NewFromInt(1)))
	suite.True(positions[1].CurrentRate.Equal(dec("150.50")))
	suite.Equal(rateTime, *positions[1].RateTimestamp)
}

func (suite *RiskEngineTestSuite) TestListPositions_MissingRateFailsWholeCall() {
	ctx := context.Background()
	suite.positionRepo.On("ListPositions", ctx).Return([]domain.CurrencyPosition{
		position("USD", "1", "0", "0"),
		position("CHF", "1", "0", "0"),
	}, nil).Once()
	suite.rateRepo.On("FindLatestRate", ctx, "USDCHF").Return(nil, apperrors.NewNotFoundError("USDCHF")).Once()

	positions, err := suite.engine.ListPositions(ctx)

	suite.Nil(positions)
	suite.ErrorIs(err, apperrors.ErrRateNotFound)
}

func (suite *RiskEngineTestSuite) TestListPositions_StoreError() {
	ctx := context.Background()
	storeErr := errors.New("timeout")
	suite.positionRepo.On("ListPositions", ctx).Return(nil, storeErr).Once()

	_, err := suite.engine.ListPositions(ctx)
	suite.ErrorIs(err, storeErr)
}

func (suite *RiskEngineTestSuite) TestListPositions_CancelledContextReturnsNoPartialData() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	suite.positionRepo.On("ListPositions", ctx).Return([]domain.CurrencyPosition{
		position("USD", "1", "0", "0"),
	}, nil).Once()

	positions, err := suite.engine.ListPositions(ctx)

	suite.Nil(positions)
	suite.ErrorIs(err, context.Canceled)
}

func (suite *RiskEngineTestSuite) TestGetPosition_UnknownCurrencyIsNotFound() {
	ctx := context.Background()
	suite.positionRepo.On("FindPositionByCurrency", ctx, "SEK").Return(nil, apperrors.NewNotFoundError("SEK")).Once()

	got, found, err := suite.engine.GetPosition(ctx, "SEK")

	suite.NoError(err)
	suite.False(found)
	suite.Nil(got)
}

func (suite *RiskEngineTestSuite) TestGetPosition_MalformedCurrencySkipsStore() {
	got, found, err := suite.engine.GetPosition(context.Background(), "E1")

	suite.NoError(err)
	suite.False(found)
	suite.Nil(got)
	suite.positionRepo.AssertNotCalled(suite.T(), "FindPositionByCurrency", mock.Anything, mock.Anything)
}

func (suite *RiskEngineTestSuite) TestGetPosition_MissingRate() {
	ctx := context.Background()
	p := position("GBP", "600000", "15000", "45000")
	suite.positionRepo.On("FindPositionByCurrency", ctx, "GBP").Return(&p, nil).Once()
	suite.rateRepo.On("FindLatestRate", ctx, "GBPUSD").Return(nil, apperrors.NewNotFoundError("GBPUSD")).Once()

	_, found, err := suite.engine.GetPosition(ctx, "GBP")

	suite.False(found)
	suite.ErrorIs(err, apperrors.ErrRateNotFound)
}

func (suite *RiskEngineTestSuite) TestListPositionsByRiskLevel() {
	ctx := context.Background()
	suite.positionRepo.On("FindPositionsByRiskLevel", ctx, domain.RiskHigh).Return([]domain.CurrencyPosition{
		position("USD", "1000000", "50000", "30000"),
	}, nil).Once()

	positions, err := suite.engine.ListPositionsByRiskLevel(ctx, domain.RiskHigh)
	suite.Require().NoError(err)
	suite.Len(positions, 1)
	suite.NotNil(positions[0].CurrentRate)

	_, err = suite.engine.ListPositionsByRiskLevel(ctx, domain.RiskLevel("EXTREME"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RiskEngineTestSuite) TestListLowBalancePositions_UsesLowBalanceThreshold() {
	ctx := context.Background()
	suite.positionRepo.On("FindPositionsWithAbsNetBelow", ctx, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(50_000))
	})).Return([]domain.CurrencyPosition{}, nil).Once()

	positions, err := suite.engine.ListLowBalancePositions(ctx)
	suite.NoError(err)
	suite.Empty(positions)
}

// --- ListAlerts ---

func (suite *RiskEngineTestSuite) TestListAlerts_SingleHighPosition() {
	ctx := context.Background()
	suite.positionRepo.On("ListPositions", ctx).Return([]domain.CurrencyPosition{
		position("USD", "1000000", "50000", "30000"),
		position("EUR", "800000", "25000", "75000"),
	}, nil).Once()

	alerts, err := suite.engine.ListAlerts(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(alerts, 1)
	suite.Equal(domain.AlertHigh, alerts[0].Level)
	suite.Equal(risk.TriggerHighRisk, alerts[0].TriggeredBy)
	suite.Equal("USD", alerts[0].Currency)
	suite.Equal(domain.AlertActive, alerts[0].Status)
	suite.Nil(alerts[0].ResolvedAt)
	suite.Nil(alerts[0].ExpiresAt)
	suite.Equal(suite.now, alerts[0].Timestamp)
}

func (suite *RiskEngineTestSuite) TestListAlerts_GroupedByRuleInStoreOrder() {
	ctx := context.Background()
	suite.positionRepo.On("ListPositions", ctx).Return([]domain.CurrencyPosition{
		position("CHF", "10000", "0", "0"),
		position("USD", "1000000", "50000", "30000"),
		position("JPY", "50000000", "0", "0"),
		position("SEK", "-20000", "0", "5000"),
	}, nil).Once()

	alerts, err := suite.engine.ListAlerts(ctx)
	suite.Require().NoError(err)

	var got []string
	for _, a := range alerts {
		got = append(got, a.TriggeredBy+":"+a.Currency)
	}
	suite.Equal([]string{
		"HIGH_RISK_POSITION:USD",
		"HIGH_RISK_POSITION:JPY",
		"LOW_BALANCE:CHF",
		"LOW_BALANCE:SEK",
	}, got)
	suite.Equal("Consider acquiring more SEK to cover upcoming payments", alerts[3].Recommendation)
	suite.Equal("Consider reducing CHF position by converting to other currencies", alerts[2].Recommendation)
}

func (suite *RiskEngineTestSuite) TestListAlerts_PositionCanTriggerBothRules() {
	ctx := context.Background()
	engine := services.NewRiskEngine(suite.positionRepo, suite.rateRepo,
		services.WithThresholds(risk.Thresholds{High: dec("100"), Medium: dec("50"), LowBalance: dec("1000")}))
	suite.positionRepo.On("ListPositions", ctx).Return([]domain.CurrencyPosition{
		position("EUR", "500", "0", "0"),
	}, nil).Once()

	alerts, err := engine.ListAlerts(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(alerts, 2)
	suite.Equal(risk.TriggerHighRisk, alerts[0].TriggeredBy)
	suite.Equal(risk.TriggerLowBalance, alerts[1].TriggeredBy)
}

func (suite *RiskEngineTestSuite) TestListAlerts_IgnoresStoredTier() {
	ctx := context.Background()
	staleLow := position("USD", "1000000", "50000", "30000")
	staleLow.RiskLevel = domain.RiskLow
	staleHigh := position("GBP", "600000", "0", "0")
	staleHigh.RiskLevel = domain.RiskHigh
	suite.positionRepo.On("ListPositions", ctx).Return([]domain.CurrencyPosition{staleLow, staleHigh}, nil).Once()

	alerts, err := suite.engine.ListAlerts(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(alerts, 1)
	suite.Equal("USD", alerts[0].Currency)
	suite.Equal(risk.TriggerHighRisk, alerts[0].TriggeredBy)
	suite.Require().NotNil(alerts[0].ActualValue)
	suite.True(alerts[0].ActualValue.Equal(dec("1020000")))
}

func (suite *RiskEngineTestSuite) TestListAlerts_SkipsPositionsThatCannotBeEvaluated() {
	ctx := context.Background()
	suite.positionRepo.On("ListPositions", ctx).Return([]domain.CurrencyPosition{
		position("", "5", "0", "0"),
		position("CHF", "10000", "0", "0"),
	}, nil).Once()

	alerts, err := suite.engine.ListAlerts(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(alerts, 1)
	suite.Equal("CHF", alerts[0].Currency)
}

func (suite *RiskEngineTestSuite) TestListAlerts_StoreErrorAborts() {
	ctx := context.Background()
	storeErr := errors.New("relation does not exist")
	suite.positionRepo.On("ListPositions", ctx).Return(nil, storeErr).Once()

	alerts, err := suite.engine.ListAlerts(ctx)
	suite.Nil(alerts)
	suite.ErrorIs(err, storeErr)
}

func (suite *RiskEngineTestSuite) TestListAlerts_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	suite.positionRepo.On("ListPositions", ctx).Return([]domain.CurrencyPosition{
		position("CHF", "10000", "0", "0"),
	}, nil).Once()

	alerts, err := suite.engine.ListAlerts(ctx)
	suite.Nil(alerts)
	suite.ErrorIs(err, context.Canceled)
}

func (suite *RiskEngineTestSuite) TestListAlerts_TTLSetsExpiry() {
	ctx := context.Background()
	engine := services.NewRiskEngine(suite.positionRepo, suite.rateRepo,
		services.WithClock(fixedClock(suite.now)), services.WithAlertTTL(time.Hour))
	suite.positionRepo.On("ListPositions", ctx).Return([]domain.CurrencyPosition{
		position("CHF", "10000", "0", "0"),
	}, nil).Once()

	alerts, err := engine.ListAlerts(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(alerts, 1)
	suite.Require().NotNil(alerts[0].ExpiresAt)
	suite.Equal(suite.now.Add(time.Hour), *alerts[0].ExpiresAt)
	suite.False(alerts[0].IsExpired(suite.now))
}

func TestRiskEngineTestSuite(t *testing.T) {
	suite.Run(t, new(RiskEngineTestSuite))
}
