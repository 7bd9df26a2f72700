package services_test

import (
	"context"
	"testing"

	"github.com/ecucondor/exchange-backend/internal/apperrors"
	"github.com/ecucondor/exchange-backend/internal/core/domain"
	"github.com/ecucondor/exchange-backend/internal/core/services"
	"github.com/ecucondor/exchange-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.P2POrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.P2POrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.P2POrder), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByUser(ctx context.Context, userID string) ([]domain.P2POrder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.P2POrder), args.Error(1)
}

// --- Mock UserLimitsRepository ---
type MockUserLimitsRepository struct {
	mock.Mock
}

func (m *MockUserLimitsRepository) FindLimitsByUserID(ctx context.Context, userID string) (*domain.UserLimits, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserLimits), args.Error(1)
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockOrders *MockOrderRepository
	mockLimits *MockUserLimitsRepository
	userID     string
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrders = new(MockOrderRepository)
	suite.mockLimits = new(MockUserLimitsRepository)
	suite.userID = uuid.NewString()
}

func validOrderRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Currency: "USD",
		Type:     "buy",
		Quantity: decimal.NewFromInt(100),
		Price:    decimal.NewFromInt(1),
	}
}

func (suite *OrderServiceTestSuite) TestCreateOrder_Success() {
	ctx := context.Background()
	service := services.NewOrderService(suite.mockOrders, suite.mockLimits)

	limits := &domain.UserLimits{UserID: suite.userID, Verified: true, MaxOrderAmount: decimal.NewFromInt(1000)}
	suite.mockLimits.On("FindLimitsByUserID", ctx, suite.userID).Return(limits, nil).Once()
	suite.mockOrders.On("SaveOrder", ctx, mock.MatchedBy(func(o domain.P2POrder) bool {
		return o.UserID == suite.userID &&
			o.Status == domain.OrderOpen &&
			o.Currency == domain.USD &&
			o.Type == domain.OrderBuy &&
			o.Quantity.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	order, err := service.CreateOrder(ctx, validOrderRequest(), suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal(domain.OrderOpen, order.Status)
	suite.NotEmpty(order.OrderID)
	suite.mockOrders.AssertExpectations(suite.T())
	suite.mockLimits.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_InvalidCurrencyReportedBeforeVerification() {
	ctx := context.Background()
	service := services.NewOrderService(suite.mockOrders, suite.mockLimits)

	// Unverified user AND bad currency: the structural failure must win.
	limits := &domain.UserLimits{UserID: suite.userID, Verified: false}
	suite.mockLimits.On("FindLimitsByUserID", ctx, suite.userID).Return(limits, nil).Once()

	req := validOrderRequest()
	req.Currency = "EUR"

	_, err := service.CreateOrder(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidCurrency)
	suite.mockOrders.AssertNotCalled(suite.T(), "SaveOrder")
}

func (suite *OrderServiceTestSuite) TestCreateOrder_UnverifiedBeforeLimit() {
	ctx := context.Background()
	service := services.NewOrderService(suite.mockOrders, suite.mockLimits)

	// Quantity within limit, user unverified: must fail verification, not limit.
	limits := &domain.UserLimits{UserID: suite.userID, Verified: false, MaxOrderAmount: decimal.NewFromInt(1000)}
	suite.mockLimits.On("FindLimitsByUserID", ctx, suite.userID).Return(limits, nil).Once()

	_, err := service.CreateOrder(ctx, validOrderRequest(), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUserNotVerified)
	suite.NotErrorIs(err, apperrors.ErrLimitExceeded)
	suite.mockOrders.AssertNotCalled(suite.T(), "SaveOrder")
}

func (suite *OrderServiceTestSuite) TestCreateOrder_LimitExceeded() {
	ctx := context.Background()
	service := services.NewOrderService(suite.mockOrders, suite.mockLimits)

	limits := &domain.UserLimits{UserID: suite.userID, Verified: true, MaxOrderAmount: decimal.NewFromInt(50)}
	suite.mockLimits.On("FindLimitsByUserID", ctx, suite.userID).Return(limits, nil).Once()

	_, err := service.CreateOrder(ctx, validOrderRequest(), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrLimitExceeded)
	suite.mockOrders.AssertNotCalled(suite.T(), "SaveOrder")
}

func (suite *OrderServiceTestSuite) TestCreateOrder_MissingLimitsTreatedAsUnverified() {
	ctx := context.Background()
	service := services.NewOrderService(suite.mockOrders, suite.mockLimits)

	suite.mockLimits.On("FindLimitsByUserID", ctx, suite.userID).Return(nil, apperrors.NewNotFoundError("no limits")).Once()

	_, err := service.CreateOrder(ctx, validOrderRequest(), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUserNotVerified)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_SaveError() {
	ctx := context.Background()
	service := services.NewOrderService(suite.mockOrders, suite.mockLimits)

	limits := &domain.UserLimits{UserID: suite.userID, Verified: true, MaxOrderAmount: decimal.NewFromInt(1000)}
	suite.mockLimits.On("FindLimitsByUserID", ctx, suite.userID).Return(limits, nil).Once()
	suite.mockOrders.On("SaveOrder", ctx, mock.AnythingOfType("domain.P2POrder")).Return(assert.AnError).Once()

	_, err := service.CreateOrder(ctx, validOrderRequest(), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *OrderServiceTestSuite) TestListOrdersByUser_EmptyIsNotNil() {
	ctx := context.Background()
	service := services.NewOrderService(suite.mockOrders, suite.mockLimits)

	suite.mockOrders.On("ListOrdersByUser", ctx, suite.userID).Return(nil, nil).Once()

	orders, err := service.ListOrdersByUser(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
