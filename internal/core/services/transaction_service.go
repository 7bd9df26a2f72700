package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ecucondor/exchange-backend/internal/apperrors"
	"github.com/ecucondor/exchange-backend/internal/core/domain"
	portsrepo "github.com/ecucondor/exchange-backend/internal/core/ports/repositories"
	portssvc "github.com/ecucondor/exchange-backend/internal/core/ports/services"
	"github.com/ecucondor/exchange-backend/internal/dto"
	"github.com/google/uuid"
)

// transactionService owns the exchange-transaction lifecycle: price at
// submission, persist in pending, and apply the terminal transitions.
type transactionService struct {
	txnRepo  portsrepo.TransactionRepositoryFacade
	exchange portssvc.ExchangeSvcFacade
}

// NewTransactionService creates a new transaction lifecycle service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, exchange portssvc.ExchangeSvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:  txnRepo,
		exchange: exchange,
	}
}

// CreateTransaction recomputes the quote at the current rate and persists the
// transaction in pending. Persistence failures surface to the caller; there is
// no retry, the user resubmits.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.ExchangeTransaction, error) {
	direction := domain.Direction(req.Direction)

	quote, err := s.exchange.Quote(ctx, req.Amount, direction)
	if err != nil {
		return nil, err
	}

	source, target := direction.Currencies()
	now := time.Now()

	txn := domain.ExchangeTransaction{
		TransactionID:  uuid.NewString(),
		UserID:         userID,
		SourceAmount:   quote.SourceAmount,
		SourceCurrency: source,
		TargetCurrency: target,
		TargetAmount:   quote.TargetAmount,
		RateApplied:    quote.AppliedRate,
		Commission:     quote.Commission,
		Status:         domain.TransactionPending,
		ProofReference: req.ProofReference,
		Alias:          req.Alias,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	return &txn, nil
}

// UpdateTransactionStatus applies pending -> completed|rejected. Any other
// move fails with ErrInvalidTransition; an unknown id fails with ErrNotFound.
// The repository's guarded update is the serialization point, so a transition
// lost to a racing update reports ErrInvalidTransition instead of silently
// overwriting the winner.
func (s *transactionService) UpdateTransactionStatus(ctx context.Context, transactionID string, newStatus domain.TransactionStatus, actorUserID string) (*domain.ExchangeTransaction, error) {
	if !newStatus.IsValid() || newStatus == domain.TransactionPending {
		return nil, fmt.Errorf("%w: cannot move a transaction to %q", apperrors.ErrValidation, newStatus)
	}

	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if !existing.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, existing.Status, newStatus)
	}

	now := time.Now()
	if err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, newStatus, actorUserID, now); err != nil {
		return nil, err
	}

	updated := *existing
	updated.Status = newStatus
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actorUserID
	return &updated, nil
}

// ListTransactionsByUser returns the user's transactions, newest first.
func (s *transactionService) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.ExchangeTransaction, error) {
	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.ExchangeTransaction{}, nil
	}
	return txns, nil
}
