package dto

import (
	"time"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest submits a P2P order for admission. Currency and type are
// validated against the domain allow-lists rather than binding tags so the
// error taxonomy (invalid currency vs invalid type vs invalid amount) is
// preserved.
type CreateOrderRequest struct {
	Currency string          `json:"currency" binding:"required"`
	Type     string          `json:"type" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
}

// OrderResponse is the API shape for a persisted P2P order.
type OrderResponse struct {
	OrderID   string          `json:"orderID"`
	UserID    string          `json:"userID"`
	Type      string          `json:"type"`
	Currency  string          `json:"currency"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToOrderResponse converts a domain.P2POrder to its response DTO.
func ToOrderResponse(order *domain.P2POrder) OrderResponse {
	return OrderResponse{
		OrderID:   order.OrderID,
		UserID:    order.UserID,
		Type:      string(order.Type),
		Currency:  string(order.Currency),
		Quantity:  order.Quantity,
		Price:     order.Price,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
}

// ToListOrderResponse converts a slice of orders to response DTOs.
func ToListOrderResponse(orders []domain.P2POrder) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}

// UserLimitsResponse is the API shape for a user's limits record.
type UserLimitsResponse struct {
	UserID         string          `json:"userID"`
	Verified       bool            `json:"verified"`
	MaxOrderAmount decimal.Decimal `json:"maxOrderAmount"`
}

// ToUserLimitsResponse converts a domain.UserLimits to its response DTO.
func ToUserLimitsResponse(limits *domain.UserLimits) UserLimitsResponse {
	return UserLimitsResponse{
		UserID:         limits.UserID,
		Verified:       limits.Verified,
		MaxOrderAmount: limits.MaxOrderAmount,
	}
}
