package services

import (
	"context"
	"fmt"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
	portssvc "github.com/ecucondor/exchange-backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// exchangeService prices conversions. All quoting runs against the platform's
// USD/ARS rate regardless of direction; the direction decides which fee
// mechanism applies.
type exchangeService struct {
	rates portssvc.RateReaderSvc
}

// NewExchangeService creates a new exchange pricing service.
func NewExchangeService(rates portssvc.RateReaderSvc) portssvc.ExchangeSvcFacade {
	return &exchangeService{rates: rates}
}

// Quote fetches the current USD/ARS rate and computes the conversion. The
// returned quote is stamped with the rate's source and fetch time so callers
// can surface a degraded-rate warning if they choose to.
func (s *exchangeService) Quote(ctx context.Context, amount decimal.Decimal, direction domain.Direction) (*domain.Quote, error) {
	rate, err := s.rates.GetRate(ctx, domain.PairUSDARS)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate for quote: %w", err)
	}

	quote, err := domain.CalculateQuote(amount, direction, rate.Rate)
	if err != nil {
		return nil, err
	}

	quote.RateSource = rate.Source
	quote.QuotedAt = rate.FetchedAt
	return &quote, nil
}
