package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ecucondor/exchange-backend/internal/apperrors"
	"github.com/ecucondor/exchange-backend/internal/core/domain"
	portssvc "github.com/ecucondor/exchange-backend/internal/core/ports/services"
	"github.com/ecucondor/exchange-backend/internal/core/services"
	"github.com/ecucondor/exchange-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.ExchangeTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeTransaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.ExchangeTransaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeTransaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.ExchangeTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, newStatus domain.TransactionStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, transactionID, newStatus, updatedBy, now)
	return args.Error(0)
}

// --- Mock ExchangeService ---
type MockExchangeService struct {
	mock.Mock
}

func (m *MockExchangeService) Quote(ctx context.Context, amount decimal.Decimal, direction domain.Direction) (*domain.Quote, error) {
	args := m.Called(ctx, amount, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockTransactionRepository
	mockExchange *MockExchangeService
	service      portssvc.TransactionSvcFacade
	ctx          context.Context
	userID       string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockExchange = new(MockExchangeService)
	suite.service = services.NewTransactionService(suite.mockRepo, suite.mockExchange)
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) pendingTxn(status domain.TransactionStatus) *domain.ExchangeTransaction {
	return &domain.ExchangeTransaction{
		TransactionID:  uuid.NewString(),
		UserID:         suite.userID,
		SourceAmount:   decimal.NewFromInt(100),
		SourceCurrency: domain.ARS,
		TargetCurrency: domain.USD,
		TargetAmount:   decimal.RequireFromString("9700.00"),
		RateApplied:    decimal.NewFromInt(100),
		Commission:     decimal.NewFromInt(3),
		Status:         status,
	}
}

// --- CreateTransaction ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	req := dto.CreateTransactionRequest{
		Amount:         decimal.NewFromInt(100),
		Direction:      string(domain.DirectionSell),
		ProofReference: "transfer-001",
		Alias:          "ecu.cambios",
	}
	quote := &domain.Quote{
		Direction:    domain.DirectionSell,
		SourceAmount: req.Amount,
		TargetAmount: decimal.RequireFromString("9700.00"),
		AppliedRate:  decimal.NewFromInt(100),
		Commission:   decimal.NewFromInt(3),
		TotalDebited: req.Amount,
		RateSource:   domain.RateSourceLive,
	}

	suite.mockExchange.On("Quote", suite.ctx, req.Amount, domain.DirectionSell).Return(quote, nil).Once()
	suite.mockRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(txn domain.ExchangeTransaction) bool {
		return txn.Status == domain.TransactionPending &&
			txn.UserID == suite.userID &&
			txn.SourceCurrency == domain.ARS &&
			txn.TargetCurrency == domain.USD &&
			txn.TargetAmount.Equal(quote.TargetAmount) &&
			txn.Commission.Equal(quote.Commission) &&
			txn.RateApplied.Equal(quote.AppliedRate) &&
			txn.TransactionID != ""
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, req, suite.userID)

	suite.NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.TransactionPending, txn.Status)
	suite.Equal("transfer-001", txn.ProofReference)
	suite.Equal("ecu.cambios", txn.Alias)
	suite.mockExchange.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BuyCurrencies() {
	req := dto.CreateTransactionRequest{
		Amount:         decimal.NewFromInt(1000),
		Direction:      string(domain.DirectionBuy),
		ProofReference: "transfer-002",
		Alias:          "ecu.cambios",
	}
	quote := &domain.Quote{
		Direction:    domain.DirectionBuy,
		SourceAmount: req.Amount,
		TargetAmount: decimal.RequireFromString("0.74"),
		AppliedRate:  decimal.NewFromInt(1350),
		Commission:   decimal.Zero,
		TotalDebited: req.Amount,
		RateSource:   domain.RateSourceLive,
	}

	suite.mockExchange.On("Quote", suite.ctx, req.Amount, domain.DirectionBuy).Return(quote, nil).Once()
	suite.mockRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(txn domain.ExchangeTransaction) bool {
		return txn.SourceCurrency == domain.USD && txn.TargetCurrency == domain.ARS
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, req, suite.userID)

	suite.NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.USD, txn.SourceCurrency)
	suite.Equal(domain.ARS, txn.TargetCurrency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_QuoteError() {
	req := dto.CreateTransactionRequest{
		Amount:         decimal.Zero,
		Direction:      string(domain.DirectionSell),
		ProofReference: "transfer-003",
		Alias:          "ecu.cambios",
	}

	suite.mockExchange.On("Quote", suite.ctx, req.Amount, domain.DirectionSell).Return(nil, apperrors.ErrInvalidAmount).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.Nil(txn)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SaveError() {
	req := dto.CreateTransactionRequest{
		Amount:         decimal.NewFromInt(100),
		Direction:      string(domain.DirectionSell),
		ProofReference: "transfer-004",
		Alias:          "ecu.cambios",
	}
	quote := &domain.Quote{
		Direction:    domain.DirectionSell,
		SourceAmount: req.Amount,
		TargetAmount: decimal.RequireFromString("9700.00"),
		AppliedRate:  decimal.NewFromInt(100),
		Commission:   decimal.NewFromInt(3),
		TotalDebited: req.Amount,
		RateSource:   domain.RateSourceLive,
	}

	suite.mockExchange.On("Quote", suite.ctx, req.Amount, domain.DirectionSell).Return(quote, nil).Once()
	suite.mockRepo.On("SaveTransaction", suite.ctx, mock.Anything).Return(assert.AnError).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, assert.AnError)
	suite.Nil(txn)
}

// --- UpdateTransactionStatus ---

func (suite *TransactionServiceTestSuite) TestUpdateStatus_PendingToCompleted() {
	existing := suite.pendingTxn(domain.TransactionPending)

	suite.mockRepo.On("FindTransactionByID", suite.ctx, existing.TransactionID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTransactionStatus", suite.ctx, existing.TransactionID, domain.TransactionCompleted, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateTransactionStatus(suite.ctx, existing.TransactionID, domain.TransactionCompleted, suite.userID)

	suite.NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(domain.TransactionCompleted, updated.Status)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateStatus_PendingToRejected() {
	existing := suite.pendingTxn(domain.TransactionPending)

	suite.mockRepo.On("FindTransactionByID", suite.ctx, existing.TransactionID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTransactionStatus", suite.ctx, existing.TransactionID, domain.TransactionRejected, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateTransactionStatus(suite.ctx, existing.TransactionID, domain.TransactionRejected, suite.userID)

	suite.NoError(err)
	suite.Equal(domain.TransactionRejected, updated.Status)
}

func (suite *TransactionServiceTestSuite) TestUpdateStatus_TerminalIsFinal() {
	for _, from := range []domain.TransactionStatus{domain.TransactionCompleted, domain.TransactionRejected} {
		existing := suite.pendingTxn(from)
		suite.mockRepo.On("FindTransactionByID", suite.ctx, existing.TransactionID).Return(existing, nil).Once()

		updated, err := suite.service.UpdateTransactionStatus(suite.ctx, existing.TransactionID, domain.TransactionCompleted, suite.userID)

		suite.ErrorIs(err, apperrors.ErrInvalidTransition, "from %s", from)
		suite.Nil(updated)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransactionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateStatus_BackToPendingRejected() {
	updated, err := suite.service.UpdateTransactionStatus(suite.ctx, uuid.NewString(), domain.TransactionPending, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateStatus_UnknownStatusRejected() {
	updated, err := suite.service.UpdateTransactionStatus(suite.ctx, uuid.NewString(), domain.TransactionStatus("archived"), suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
}

func (suite *TransactionServiceTestSuite) TestUpdateStatus_NotFound() {
	txnID := uuid.NewString()
	suite.mockRepo.On("FindTransactionByID", suite.ctx, txnID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateTransactionStatus(suite.ctx, txnID, domain.TransactionCompleted, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
}

func (suite *TransactionServiceTestSuite) TestUpdateStatus_LostRaceSurfaces() {
	existing := suite.pendingTxn(domain.TransactionPending)

	suite.mockRepo.On("FindTransactionByID", suite.ctx, existing.TransactionID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTransactionStatus", suite.ctx, existing.TransactionID, domain.TransactionCompleted, suite.userID, mock.AnythingOfType("time.Time")).Return(apperrors.ErrInvalidTransition).Once()

	updated, err := suite.service.UpdateTransactionStatus(suite.ctx, existing.TransactionID, domain.TransactionCompleted, suite.userID)

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.Nil(updated)
}

// --- ListTransactionsByUser ---

func (suite *TransactionServiceTestSuite) TestListTransactions_Passthrough() {
	txns := []domain.ExchangeTransaction{*suite.pendingTxn(domain.TransactionPending), *suite.pendingTxn(domain.TransactionCompleted)}
	suite.mockRepo.On("ListTransactionsByUser", suite.ctx, suite.userID).Return(txns, nil).Once()

	result, err := suite.service.ListTransactionsByUser(suite.ctx, suite.userID)

	suite.NoError(err)
	suite.Len(result, 2)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_EmptyNotNil() {
	suite.mockRepo.On("ListTransactionsByUser", suite.ctx, suite.userID).Return(nil, nil).Once()

	result, err := suite.service.ListTransactionsByUser(suite.ctx, suite.userID)

	suite.NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RepoError() {
	suite.mockRepo.On("ListTransactionsByUser", suite.ctx, suite.userID).Return(nil, assert.AnError).Once()

	result, err := suite.service.ListTransactionsByUser(suite.ctx, suite.userID)

	suite.ErrorIs(err, assert.AnError)
	suite.Nil(result)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
