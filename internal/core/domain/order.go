package domain

import (
	"fmt"

	"github.com/ecucondor/exchange-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// OrderType is the side of a P2P order.
type OrderType string

const (
	OrderBuy  OrderType = "buy"
	OrderSell OrderType = "sell"
)

// IsValid reports whether t is a known order type.
func (t OrderType) IsValid() bool {
	return t == OrderBuy || t == OrderSell
}

// OrderStatus is the lifecycle state of a P2P order. Admission into open is
// gated by NewOrder.Validate; later transitions belong to the matching engine,
// which lives outside this service.
type OrderStatus string

const (
	OrderOpen       OrderStatus = "open"
	OrderMatched    OrderStatus = "matched"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// P2POrder is a persisted peer-to-peer order.
type P2POrder struct {
	OrderID  string          `json:"orderID"`
	UserID   string          `json:"userID"`
	Type     OrderType       `json:"type"`
	Currency Currency        `json:"currency"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Status   OrderStatus     `json:"status"`
	AuditFields
}

// NewOrder is an order request awaiting validation.
type NewOrder struct {
	Currency Currency
	Type     OrderType
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

// Validate checks the order against the currency/type allow-lists, numeric
// positivity, and the user's limits. Pure; no side effects.
//
// Structural checks run before authorization checks so a malformed request is
// always reported as malformed even when the user is also unverified.
func (o NewOrder) Validate(limits UserLimits) error {
	if !o.Currency.IsSupported() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, o.Currency)
	}
	if !o.Type.IsValid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidType, o.Type)
	}
	if o.Quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: quantity must be positive", apperrors.ErrInvalidAmount)
	}
	if o.Price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: price must be positive", apperrors.ErrInvalidAmount)
	}
	if !limits.Verified {
		return apperrors.ErrUserNotVerified
	}
	if o.Quantity.GreaterThan(limits.MaxOrderAmount) {
		return fmt.Errorf("%w: quantity %s exceeds maximum %s", apperrors.ErrLimitExceeded, o.Quantity, limits.MaxOrderAmount)
	}
	return nil
}
