package repositories

import (
	"context"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
)

// OrderReader defines read operations for P2P orders.
type OrderReader interface {
	// FindOrderByID retrieves an order by its unique identifier.
	FindOrderByID(ctx context.Context, orderID string) (*domain.P2POrder, error)

	// ListOrdersByUser retrieves a user's orders, newest first.
	ListOrdersByUser(ctx context.Context, userID string) ([]domain.P2POrder, error)
}

// OrderWriter defines write operations for P2P orders.
type OrderWriter interface {
	// SaveOrder persists a new order.
	SaveOrder(ctx context.Context, order domain.P2POrder) error
}

// OrderRepositoryFacade combines all order repository interfaces.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
