package services

import (
	"context"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
)

// RateReaderSvc serves current exchange rates.
type RateReaderSvc interface {
	// GetRate returns the current platform rate for a pair: the live feed
	// close with the margin discount applied, or the hardcoded fallback
	// (tagged as such) when the feed is unavailable. GetRate never fails
	// for pairs that have a fallback configured.
	GetRate(ctx context.Context, pair domain.CurrencyPair) (domain.ExchangeRate, error)
}

// RateSvcFacade combines all rate service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
}
