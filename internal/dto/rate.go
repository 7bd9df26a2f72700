package dto

import (
	"time"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse is the API shape for a current rate.
type ExchangeRateResponse struct {
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	Source       string          `json:"source"` // "live" or "fallback"
	FetchedAt    time.Time       `json:"fetchedAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its response DTO.
func ToExchangeRateResponse(rate domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		FromCurrency: string(rate.Pair.From),
		ToCurrency:   string(rate.Pair.To),
		Rate:         rate.Rate,
		Source:       string(rate.Source),
		FetchedAt:    rate.FetchedAt,
	}
}
