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

type PgxOrderRepository struct {
	db *pgxpool.Pool
}

func newPgxOrderRepository(db *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{db: db}
}

// Ensure PgxOrderRepository implements portsrepo.OrderRepositoryFacade
var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

func toModelOrder(d domain.P2POrder) models.P2POrder {
	return models.P2POrder{
		OrderID:  d.OrderID,
		UserID:   d.UserID,
		Type:     string(d.Type),
		Currency: string(d.Currency),
		Quantity: d.Quantity,
		Price:    d.Price,
		Status:   string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainOrder(m models.P2POrder) domain.P2POrder {
	return domain.P2POrder{
		OrderID:  m.OrderID,
		UserID:   m.UserID,
		Type:     domain.OrderType(m.Type),
		Currency: domain.Currency(m.Currency),
		Quantity: m.Quantity,
		Price:    m.Price,
		Status:   domain.OrderStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.P2POrder) error {
	m := toModelOrder(order)
	query := `
        INSERT INTO ordenes_p2p (
            order_id, user_id, order_type, currency, quantity, price, status,
            created_at, created_by, last_updated_at, last_updated_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.OrderID,
		m.UserID,
		m.Type,
		m.Currency,
		m.Quantity,
		m.Price,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.P2POrder, error) {
	query := `
		SELECT order_id, user_id, order_type, currency, quantity, price, status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM ordenes_p2p
		WHERE order_id = $1;
	`
	var m models.P2POrder
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&m.OrderID,
		&m.UserID,
		&m.Type,
		&m.Currency,
		&m.Quantity,
		&m.Price,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
		}
		return nil, fmt.Errorf("failed to find order by ID %s: %w", orderID, err)
	}

	d := toDomainOrder(m)
	return &d, nil
}

func (r *PgxOrderRepository) ListOrdersByUser(ctx context.Context, userID string) ([]domain.P2POrder, error) {
	query := `
		SELECT order_id, user_id, order_type, currency, quantity, price, status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM ordenes_p2p
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %s: %w", userID, err)
	}
	defer rows.Close()

	var orders []domain.P2POrder
	for rows.Next() {
		var m models.P2POrder
		if err := rows.Scan(
			&m.OrderID,
			&m.UserID,
			&m.Type,
			&m.Currency,
			&m.Quantity,
			&m.Price,
			&m.Status,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, toDomainOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}
