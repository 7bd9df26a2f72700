package repositories

import (
	"context"
	"time"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
)

// TransactionReader defines read operations for exchange transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.ExchangeTransaction, error)

	// ListTransactionsByUser retrieves all transactions created by a user,
	// newest first. The result is a point-in-time snapshot.
	ListTransactionsByUser(ctx context.Context, userID string) ([]domain.ExchangeTransaction, error)
}

// TransactionWriter defines write operations for exchange transactions.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.ExchangeTransaction) error

	// UpdateTransactionStatus moves a pending transaction to newStatus. The
	// single-row update is the serialization point for racing updates: the
	// implementation must only touch rows still in pending and report
	// ErrInvalidTransition when the guard misses.
	UpdateTransactionStatus(ctx context.Context, transactionID string, newStatus domain.TransactionStatus, updatedBy string, now time.Time) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
