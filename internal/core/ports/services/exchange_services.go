package services

import (
	"context"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeSvcFacade prices conversions against the current USD/ARS rate.
type ExchangeSvcFacade interface {
	// Quote computes a conversion quote for amount in the given direction at
	// the current rate. The returned quote carries the rate source tag so
	// callers can tell a live price from the degrade fallback.
	Quote(ctx context.Context, amount decimal.Decimal, direction domain.Direction) (*domain.Quote, error)
}
