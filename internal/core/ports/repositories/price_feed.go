package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceFeed is the outbound port to the external market-data endpoint. A
// single call makes a single fetch attempt; callers own caching, fallback and
// polling policy.
type PriceFeed interface {
	// LatestClose returns the most recent close price for the given ticker
	// symbol (e.g. "USDARS") as quoted by the feed, before any platform
	// adjustment.
	LatestClose(ctx context.Context, symbol string) (decimal.Decimal, error)
}
