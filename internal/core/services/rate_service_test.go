package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
	"github.com/ecucondor/exchange-backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock PriceFeed ---
type MockPriceFeed struct {
	mock.Mock
}

func (m *MockPriceFeed) LatestClose(ctx context.Context, symbol string) (decimal.Decimal, error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type RateServiceTestSuite struct {
	suite.Suite
	mockFeed *MockPriceFeed
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockFeed = new(MockPriceFeed)
}

func (suite *RateServiceTestSuite) TestGetRate_AppliesDiscountToLivePrice() {
	ctx := context.Background()
	service := services.NewRateService(suite.mockFeed, time.Minute)

	suite.mockFeed.On("LatestClose", ctx, "USDARS").Return(decimal.NewFromInt(1000), nil).Once()

	rate, err := service.GetRate(ctx, domain.PairUSDARS)

	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceLive, rate.Source)
	suite.True(rate.Rate.Equal(decimal.NewFromInt(985)), "1000 * 0.985, got %s", rate.Rate)
	suite.False(rate.FetchedAt.IsZero())
	suite.mockFeed.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRate_CachesWithinTTL() {
	ctx := context.Background()
	service := services.NewRateService(suite.mockFeed, time.Hour)

	suite.mockFeed.On("LatestClose", ctx, "USDARS").Return(decimal.NewFromInt(1000), nil).Once()

	first, err := service.GetRate(ctx, domain.PairUSDARS)
	suite.Require().NoError(err)
	second, err := service.GetRate(ctx, domain.PairUSDARS)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	// Once() above: a second feed call would fail the expectation.
	suite.mockFeed.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRate_RefetchesAfterTTL() {
	ctx := context.Background()
	service := services.NewRateService(suite.mockFeed, -time.Second) // everything is stale

	suite.mockFeed.On("LatestClose", ctx, "USDARS").Return(decimal.NewFromInt(1000), nil).Twice()

	_, err := service.GetRate(ctx, domain.PairUSDARS)
	suite.Require().NoError(err)
	_, err = service.GetRate(ctx, domain.PairUSDARS)
	suite.Require().NoError(err)

	suite.mockFeed.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRate_FallbackOnFeedError() {
	ctx := context.Background()
	service := services.NewRateService(suite.mockFeed, time.Minute)

	suite.mockFeed.On("LatestClose", ctx, "USDARS").Return(decimal.Decimal{}, assert.AnError).Once()

	rate, err := service.GetRate(ctx, domain.PairUSDARS)

	suite.Require().NoError(err, "feed failure must not propagate")
	suite.Equal(domain.RateSourceFallback, rate.Source)
	suite.True(rate.Rate.Equal(decimal.NewFromInt(1315)), "hardcoded USD/ARS fallback, got %s", rate.Rate)
	suite.mockFeed.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRate_FallbackOnNonPositivePrice() {
	ctx := context.Background()
	service := services.NewRateService(suite.mockFeed, time.Minute)

	suite.mockFeed.On("LatestClose", ctx, "USDARS").Return(decimal.Zero, nil).Once()

	rate, err := service.GetRate(ctx, domain.PairUSDARS)

	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceFallback, rate.Source)
}

func (suite *RateServiceTestSuite) TestGetRate_FallbackIsNotCached() {
	ctx := context.Background()
	service := services.NewRateService(suite.mockFeed, time.Hour)

	suite.mockFeed.On("LatestClose", ctx, "USDARS").Return(decimal.Decimal{}, assert.AnError).Once()
	suite.mockFeed.On("LatestClose", ctx, "USDARS").Return(decimal.NewFromInt(1000), nil).Once()

	degraded, err := service.GetRate(ctx, domain.PairUSDARS)
	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceFallback, degraded.Source)

	recovered, err := service.GetRate(ctx, domain.PairUSDARS)
	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceLive, recovered.Source, "next call retries the feed")
	suite.mockFeed.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRate_IdentityPair() {
	ctx := context.Background()
	service := services.NewRateService(suite.mockFeed, time.Minute)

	rate, err := service.GetRate(ctx, domain.CurrencyPair{From: domain.USD, To: domain.USD})

	suite.Require().NoError(err)
	suite.True(rate.Rate.Equal(decimal.NewFromInt(1)))
	suite.mockFeed.AssertNotCalled(suite.T(), "LatestClose")
}

func (suite *RateServiceTestSuite) TestGetRate_NoFallbackConfigured() {
	ctx := context.Background()
	service := services.NewRateService(suite.mockFeed, time.Minute)

	suite.mockFeed.On("LatestClose", ctx, "BRLWLD").Return(decimal.Decimal{}, assert.AnError).Once()

	_, err := service.GetRate(ctx, domain.CurrencyPair{From: domain.BRL, To: domain.WLD})
	require.Error(suite.T(), err)
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
