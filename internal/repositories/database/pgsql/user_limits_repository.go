package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecucondor/exchange-backend/internal/apperrors"
	"github.com/ecucondor/exchange-backend/internal/core/domain"
	portsrepo "github.com/ecucondor/exchange-backend/internal/core/ports/repositories"
	"github.com/ecucondor/exchange-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserLimitsRepository struct {
	db *pgxpool.Pool
}

func newPgxUserLimitsRepository(db *pgxpool.Pool) portsrepo.UserLimitsRepositoryFacade {
	return &PgxUserLimitsRepository{db: db}
}

// Ensure PgxUserLimitsRepository implements portsrepo.UserLimitsRepositoryFacade
var _ portsrepo.UserLimitsRepositoryFacade = (*PgxUserLimitsRepository)(nil)

func toModelLimits(d domain.UserLimits) models.UserLimits {
	return models.UserLimits{
		UserID:         d.UserID,
		Verified:       d.Verified,
		MaxOrderAmount: d.MaxOrderAmount,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainLimits(m models.UserLimits) domain.UserLimits {
	return domain.UserLimits{
		UserID:         m.UserID,
		Verified:       m.Verified,
		MaxOrderAmount: m.MaxOrderAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveLimits upserts the single limits row for a user. Back-office tooling and
// registration seeding both go through here.
func (r *PgxUserLimitsRepository) SaveLimits(ctx context.Context, limits domain.UserLimits) error {
	m := toModelLimits(limits)
	query := `
        INSERT INTO user_limits (user_id, verified, max_order_amount, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id) DO UPDATE SET
            verified = EXCLUDED.verified,
            max_order_amount = EXCLUDED.max_order_amount,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Verified,
		m.MaxOrderAmount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save limits for user %s: %w", limits.UserID, err)
	}
	return nil
}

func (r *PgxUserLimitsRepository) FindLimitsByUserID(ctx context.Context, userID string) (*domain.UserLimits, error) {
	query := `
		SELECT user_id, verified, max_order_amount, created_at, created_by, last_updated_at, last_updated_by
		FROM user_limits
		WHERE user_id = $1;
	`
	var m models.UserLimits
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.Verified,
		&m.MaxOrderAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find limits for user %s: %w", userID, err)
	}

	d := toDomainLimits(m)
	return &d, nil
}
