package dto

import (
	"time"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// QuoteRequest asks for a conversion quote. Direction SELL hands over ARS for
// USD; BUY hands over USD for ARS.
type QuoteRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Direction string          `json:"direction" binding:"required,oneof=SELL BUY"`
}

// QuoteResponse is the API shape for a computed quote.
type QuoteResponse struct {
	Direction      string          `json:"direction"`
	SourceCurrency string          `json:"sourceCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	SourceAmount   decimal.Decimal `json:"sourceAmount"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	AppliedRate    decimal.Decimal `json:"appliedRate"`
	Commission     decimal.Decimal `json:"commission"`
	TotalDebited   decimal.Decimal `json:"totalDebited"`
	RateSource     string          `json:"rateSource"`
	QuotedAt       time.Time       `json:"quotedAt"`
}

// ToQuoteResponse converts a domain.Quote to its response DTO.
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	source, target := q.Direction.Currencies()
	return QuoteResponse{
		Direction:      string(q.Direction),
		SourceCurrency: string(source),
		TargetCurrency: string(target),
		SourceAmount:   q.SourceAmount,
		TargetAmount:   q.TargetAmount,
		AppliedRate:    q.AppliedRate,
		Commission:     q.Commission,
		TotalDebited:   q.TotalDebited,
		RateSource:     string(q.RateSource),
		QuotedAt:       q.QuotedAt,
	}
}
