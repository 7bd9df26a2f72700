package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecucondor/exchange-backend/internal/apperrors"
	"github.com/ecucondor/exchange-backend/internal/core/domain"
	portsrepo "github.com/ecucondor/exchange-backend/internal/core/ports/repositories"
	"github.com/ecucondor/exchange-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{db: db}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// Helper to convert domain.ExchangeTransaction to models.ExchangeTransaction
func toModelTransaction(d domain.ExchangeTransaction) models.ExchangeTransaction {
	return models.ExchangeTransaction{
		TransactionID:  d.TransactionID,
		UserID:         d.UserID,
		SourceAmount:   d.SourceAmount,
		SourceCurrency: string(d.SourceCurrency),
		TargetCurrency: string(d.TargetCurrency),
		TargetAmount:   d.TargetAmount,
		RateApplied:    d.RateApplied,
		Commission:     d.Commission,
		Status:         string(d.Status),
		ProofReference: d.ProofReference,
		Alias:          d.Alias,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.ExchangeTransaction to domain.ExchangeTransaction
func toDomainTransaction(m models.ExchangeTransaction) domain.ExchangeTransaction {
	return domain.ExchangeTransaction{
		TransactionID:  m.TransactionID,
		UserID:         m.UserID,
		SourceAmount:   m.SourceAmount,
		SourceCurrency: domain.Currency(m.SourceCurrency),
		TargetCurrency: domain.Currency(m.TargetCurrency),
		TargetAmount:   m.TargetAmount,
		RateApplied:    m.RateApplied,
		Commission:     m.Commission,
		Status:         domain.TransactionStatus(m.Status),
		ProofReference: m.ProofReference,
		Alias:          m.Alias,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.ExchangeTransaction) error {
	m := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (
            transaction_id, user_id, source_amount, source_currency, target_currency,
            target_amount, rate_applied, commission, status, proof_reference, alias,
            created_at, created_by, last_updated_at, last_updated_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := r.db.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.SourceAmount,
		m.SourceCurrency,
		m.TargetCurrency,
		m.TargetAmount,
		m.RateApplied,
		m.Commission,
		m.Status,
		m.ProofReference,
		m.Alias,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.ExchangeTransaction, error) {
	query := `
		SELECT transaction_id, user_id, source_amount, source_currency, target_currency,
		       target_amount, rate_applied, commission, status, proof_reference, alias,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE transaction_id = $1;
	`
	var m models.ExchangeTransaction
	err := r.db.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.UserID,
		&m.SourceAmount,
		&m.SourceCurrency,
		&m.TargetCurrency,
		&m.TargetAmount,
		&m.RateApplied,
		&m.Commission,
		&m.Status,
		&m.ProofReference,
		&m.Alias,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := toDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.ExchangeTransaction, error) {
	query := `
		SELECT transaction_id, user_id, source_amount, source_currency, target_currency,
		       target_amount, rate_applied, commission, status, proof_reference, alias,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	var txns []domain.ExchangeTransaction
	for rows.Next() {
		var m models.ExchangeTransaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.UserID,
			&m.SourceAmount,
			&m.SourceCurrency,
			&m.TargetCurrency,
			&m.TargetAmount,
			&m.RateApplied,
			&m.Commission,
			&m.Status,
			&m.ProofReference,
			&m.Alias,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// UpdateTransactionStatus only touches rows still in pending, which makes the
// single-row UPDATE the serialization point for concurrent transitions. When
// the guard misses we re-check the row to tell a missing transaction apart
// from one that already left pending.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, newStatus domain.TransactionStatus, updatedBy string, now time.Time) error {
	query := `
		UPDATE transactions
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = $4 AND status = $5;
	`
	tag, err := r.db.Exec(ctx, query, string(newStatus), now, updatedBy, transactionID, string(domain.TransactionPending))
	if err != nil {
		return fmt.Errorf("failed to update transaction %s status: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		existing, findErr := r.FindTransactionByID(ctx, transactionID)
		if findErr != nil {
			return findErr
		}
		return fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, existing.Status, newStatus)
	}
	return nil
}
