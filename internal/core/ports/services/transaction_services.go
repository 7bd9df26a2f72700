package services

import (
	"context"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
	"github.com/ecucondor/exchange-backend/internal/dto"
)

// TransactionReaderSvc defines read operations for exchange transactions.
type TransactionReaderSvc interface {
	// ListTransactionsByUser retrieves a user's transactions, newest first.
	ListTransactionsByUser(ctx context.Context, userID string) ([]domain.ExchangeTransaction, error)
}

// TransactionWriterSvc defines lifecycle operations for exchange transactions.
type TransactionWriterSvc interface {
	// CreateTransaction prices the request and persists it in pending.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.ExchangeTransaction, error)

	// UpdateTransactionStatus applies a pending -> completed|rejected
	// transition and returns the updated transaction.
	UpdateTransactionStatus(ctx context.Context, transactionID string, newStatus domain.TransactionStatus, actorUserID string) (*domain.ExchangeTransaction, error)
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
