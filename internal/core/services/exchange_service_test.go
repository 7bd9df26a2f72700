package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ecucondor/exchange-backend/internal/apperrors"
	"github.com/ecucondor/exchange-backend/internal/core/domain"
	"github.com/ecucondor/exchange-backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetRate(ctx context.Context, pair domain.CurrencyPair) (domain.ExchangeRate, error) {
	args := m.Called(ctx, pair)
	return args.Get(0).(domain.ExchangeRate), args.Error(1)
}

// --- Test Suite ---
type ExchangeServiceTestSuite struct {
	suite.Suite
	mockRates *MockRateService
}

func (suite *ExchangeServiceTestSuite) SetupTest() {
	suite.mockRates = new(MockRateService)
}

func (suite *ExchangeServiceTestSuite) liveRate(rate int64) domain.ExchangeRate {
	return domain.ExchangeRate{
		Pair:      domain.PairUSDARS,
		Rate:      decimal.NewFromInt(rate),
		Source:    domain.RateSourceLive,
		FetchedAt: time.Now(),
	}
}

func (suite *ExchangeServiceTestSuite) TestQuote_SellUsesCurrentRate() {
	ctx := context.Background()
	service := services.NewExchangeService(suite.mockRates)

	suite.mockRates.On("GetRate", ctx, domain.PairUSDARS).Return(suite.liveRate(100), nil).Once()

	quote, err := service.Quote(ctx, decimal.NewFromInt(100), domain.DirectionSell)

	suite.Require().NoError(err)
	suite.True(quote.TargetAmount.Equal(decimal.RequireFromString("9700.00")), "got %s", quote.TargetAmount)
	suite.True(quote.Commission.Equal(decimal.NewFromInt(3)))
	suite.Equal(domain.RateSourceLive, quote.RateSource)
	suite.False(quote.QuotedAt.IsZero())
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *ExchangeServiceTestSuite) TestQuote_PropagatesFallbackTag() {
	ctx := context.Background()
	service := services.NewExchangeService(suite.mockRates)

	fallback := domain.ExchangeRate{
		Pair:      domain.PairUSDARS,
		Rate:      decimal.NewFromInt(1315),
		Source:    domain.RateSourceFallback,
		FetchedAt: time.Now(),
	}
	suite.mockRates.On("GetRate", ctx, domain.PairUSDARS).Return(fallback, nil).Once()

	quote, err := service.Quote(ctx, decimal.NewFromInt(1000), domain.DirectionBuy)

	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceFallback, quote.RateSource, "callers must be able to tell a degraded rate")
	suite.True(quote.AppliedRate.Equal(decimal.NewFromInt(1365)), "1315 + 50 spread")
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *ExchangeServiceTestSuite) TestQuote_InvalidAmount() {
	ctx := context.Background()
	service := services.NewExchangeService(suite.mockRates)

	suite.mockRates.On("GetRate", ctx, domain.PairUSDARS).Return(suite.liveRate(1300), nil).Once()

	_, err := service.Quote(ctx, decimal.Zero, domain.DirectionSell)

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidAmount)
}

func (suite *ExchangeServiceTestSuite) TestQuote_RateLookupFails() {
	ctx := context.Background()
	service := services.NewExchangeService(suite.mockRates)

	suite.mockRates.On("GetRate", ctx, domain.PairUSDARS).Return(domain.ExchangeRate{}, assert.AnError).Once()

	_, err := service.Quote(ctx, decimal.NewFromInt(100), domain.DirectionSell)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func TestExchangeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeServiceTestSuite))
}
