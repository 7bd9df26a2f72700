package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecucondor/exchange-backend/internal/apperrors"
	"github.com/ecucondor/exchange-backend/internal/core/domain"
	portsrepo "github.com/ecucondor/exchange-backend/internal/core/ports/repositories"
	portssvc "github.com/ecucondor/exchange-backend/internal/core/ports/services"
	"github.com/ecucondor/exchange-backend/internal/dto"
	"github.com/google/uuid"
)

// orderService gates P2P orders into the book. Validation itself is pure
// domain logic; this service supplies the user's limits record and persists
// admitted orders.
type orderService struct {
	orderRepo  portsrepo.OrderRepositoryFacade
	limitsRepo portsrepo.UserLimitsReader
}

// NewOrderService creates a new order admission service.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, limitsRepo portsrepo.UserLimitsReader) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo:  orderRepo,
		limitsRepo: limitsRepo,
	}
}

// CreateOrder validates the request and persists it in open. A user without a
// limits record validates against the zero-value record (unverified, zero
// maximum), so structural errors are still reported ahead of the missing
// verification.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, userID string) (*domain.P2POrder, error) {
	limits, err := s.limitsRepo.FindLimitsByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load user limits: %w", err)
		}
		limits = &domain.UserLimits{UserID: userID}
	}

	newOrder := domain.NewOrder{
		Currency: domain.Currency(req.Currency),
		Type:     domain.OrderType(req.Type),
		Quantity: req.Quantity,
		Price:    req.Price,
	}
	if err := newOrder.Validate(*limits); err != nil {
		return nil, err
	}

	now := time.Now()
	order := domain.P2POrder{
		OrderID:  uuid.NewString(),
		UserID:   userID,
		Type:     newOrder.Type,
		Currency: newOrder.Currency,
		Quantity: newOrder.Quantity,
		Price:    newOrder.Price,
		Status:   domain.OrderOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	return &order, nil
}

// ListOrdersByUser returns the user's orders, newest first.
func (s *orderService) ListOrdersByUser(ctx context.Context, userID string) ([]domain.P2POrder, error) {
	orders, err := s.orderRepo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		return []domain.P2POrder{}, nil
	}
	return orders, nil
}

// GetLimits returns the user's limits record.
func (s *orderService) GetLimits(ctx context.Context, userID string) (*domain.UserLimits, error) {
	limits, err := s.limitsRepo.FindLimitsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user limits: %w", err)
	}
	return limits, nil
}
