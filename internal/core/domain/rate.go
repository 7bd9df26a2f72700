package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSource tags where an exchange rate came from. A fallback rate is served
// when the upstream price feed is unreachable; callers decide whether to warn
// the user (the default policy is to serve it silently).
type RateSource string

const (
	RateSourceLive     RateSource = "live"
	RateSourceFallback RateSource = "fallback"
)

// ExchangeRate is a point-in-time rate for a currency pair. Immutable once
// produced; a fresher fetch supersedes it rather than mutating it.
// Invariant: Rate > 0.
type ExchangeRate struct {
	Pair      CurrencyPair    `json:"pair"`
	Rate      decimal.Decimal `json:"rate"`
	Source    RateSource      `json:"source"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// IsFallback reports whether the rate is the hardcoded degrade value rather
// than a live feed price.
func (r ExchangeRate) IsFallback() bool {
	return r.Source == RateSourceFallback
}

// FreshWithin reports whether the rate was fetched no longer than ttl ago.
func (r ExchangeRate) FreshWithin(ttl time.Duration, now time.Time) bool {
	return now.Sub(r.FetchedAt) <= ttl
}
