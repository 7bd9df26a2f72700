package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ecucondor/exchange-backend/internal/apperrors"
	"github.com/ecucondor/exchange-backend/internal/core/domain"
	portsrepo "github.com/ecucondor/exchange-backend/internal/core/ports/repositories"
	portssvc "github.com/ecucondor/exchange-backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// feedDiscount is the fixed margin applied to the live feed price (1.5%).
// Deliberate platform margin, not a display adjustment.
var feedDiscount = decimal.RequireFromString("0.985")

// fallbackRates are the hardcoded degrade values served when the feed is
// unreachable, keyed by pair symbol.
var fallbackRates = map[string]decimal.Decimal{
	domain.PairUSDARS.Symbol(): decimal.NewFromInt(1315),
}

// rateService serves platform rates: live feed close with the margin discount,
// falling back silently to the hardcoded rate when the feed fails. Holds a
// one-entry-per-pair cache to deduplicate concurrent identical fetches within
// the TTL window.
type rateService struct {
	feed     portsrepo.PriceFeed
	cacheTTL time.Duration

	mu    sync.Mutex
	cache map[string]domain.ExchangeRate

	now func() time.Time
}

// NewRateService creates a rate service backed by the given feed. The cache
// state is owned by the instance; share the instance, not a global.
func NewRateService(priceFeed portsrepo.PriceFeed, cacheTTL time.Duration) portssvc.RateSvcFacade {
	return &rateService{
		feed:     priceFeed,
		cacheTTL: cacheTTL,
		cache:    make(map[string]domain.ExchangeRate),
		now:      time.Now,
	}
}

// GetRate returns the current rate for pair. Live rates are discounted by
// feedDiscount before being returned and cached; fallback rates are tagged
// but never cached, so the next call retries the feed.
func (s *rateService) GetRate(ctx context.Context, pair domain.CurrencyPair) (domain.ExchangeRate, error) {
	if pair.From == pair.To {
		return domain.ExchangeRate{
			Pair:      pair,
			Rate:      decimal.NewFromInt(1),
			Source:    domain.RateSourceLive,
			FetchedAt: s.now(),
		}, nil
	}

	symbol := pair.Symbol()

	s.mu.Lock()
	if cached, ok := s.cache[symbol]; ok && cached.FreshWithin(s.cacheTTL, s.now()) {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	price, err := s.feed.LatestClose(ctx, symbol)
	if err != nil || price.LessThanOrEqual(decimal.Zero) {
		return s.fallback(pair, symbol, err)
	}

	rate := domain.ExchangeRate{
		Pair:      pair,
		Rate:      price.Mul(feedDiscount),
		Source:    domain.RateSourceLive,
		FetchedAt: s.now(),
	}

	s.mu.Lock()
	s.cache[symbol] = rate
	s.mu.Unlock()

	return rate, nil
}

// fallback serves the hardcoded rate, or the last cached value (however stale)
// for pairs without one. Pairs with neither are a configuration gap and fail.
func (s *rateService) fallback(pair domain.CurrencyPair, symbol string, cause error) (domain.ExchangeRate, error) {
	if fb, ok := fallbackRates[symbol]; ok {
		return domain.ExchangeRate{
			Pair:      pair,
			Rate:      fb,
			Source:    domain.RateSourceFallback,
			FetchedAt: s.now(),
		}, nil
	}

	s.mu.Lock()
	stale, ok := s.cache[symbol]
	s.mu.Unlock()
	if ok {
		stale.Source = domain.RateSourceFallback
		return stale, nil
	}

	return domain.ExchangeRate{}, fmt.Errorf("%w: no rate available for %s: %v", apperrors.ErrNotFound, symbol, cause)
}
