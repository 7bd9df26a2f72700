package services

import (
	"context"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
	"github.com/ecucondor/exchange-backend/internal/dto"
)

// OrderReaderSvc defines read operations for P2P orders.
type OrderReaderSvc interface {
	// ListOrdersByUser retrieves a user's orders, newest first.
	ListOrdersByUser(ctx context.Context, userID string) ([]domain.P2POrder, error)

	// GetLimits retrieves the user's verification flag and order maximum.
	GetLimits(ctx context.Context, userID string) (*domain.UserLimits, error)
}

// OrderWriterSvc defines admission operations for P2P orders.
type OrderWriterSvc interface {
	// CreateOrder validates the request against the allow-lists and the
	// user's limits and persists it in open.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, userID string) (*domain.P2POrder, error)
}

// OrderSvcFacade combines all order service interfaces.
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}
