package domain

import (
	"fmt"
	"time"

	"github.com/ecucondor/exchange-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Direction selects which side of the USD/ARS desk a conversion runs through.
// The two directions carry different fee structures on purpose: selling ARS for
// USD charges an explicit commission on the source amount, while buying ARS
// with USD folds the margin into the rate as an additive spread.
type Direction string

const (
	// DirectionSell converts ARS into USD: commission is deducted from the
	// source amount before conversion.
	DirectionSell Direction = "SELL"
	// DirectionBuy converts USD into ARS: the rate is widened by a fixed
	// spread and no commission line is reported.
	DirectionBuy Direction = "BUY"
)

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	return d == DirectionSell || d == DirectionBuy
}

// Currencies returns the source and target currency for the direction.
func (d Direction) Currencies() (source, target Currency) {
	if d == DirectionSell {
		return ARS, USD
	}
	return USD, ARS
}

// Business-critical pricing constants. The threshold, flat fee, commission
// percentage and spread come straight from the desk's fee schedule; changing
// any of them changes what customers are charged.
var (
	// SmallAmountThreshold: below this source amount the flat fee replaces
	// the percentage commission.
	SmallAmountThreshold = decimal.NewFromInt(15)
	// SmallAmountFee is the flat fee, in source currency, for small sells.
	SmallAmountFee = decimal.RequireFromString("0.50")
	// SellCommissionRate is the percentage commission on sells (3%).
	SellCommissionRate = decimal.RequireFromString("0.03")
	// BuyRateSpread is the additive margin folded into the rate on buys.
	BuyRateSpread = decimal.NewFromInt(50)
)

// Quote is the computed result of a conversion at a given rate. Derived and
// never persisted directly; recomputed on every request.
// Invariant: TargetAmount >= 0 and is truncated (never rounded up) at 2
// decimals, so the platform never disburses more than the computed entitlement.
type Quote struct {
	Direction    Direction       `json:"direction"`
	SourceAmount decimal.Decimal `json:"sourceAmount"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	AppliedRate  decimal.Decimal `json:"appliedRate"`
	Commission   decimal.Decimal `json:"commission"`
	TotalDebited decimal.Decimal `json:"totalDebited"`

	// RateSource and QuotedAt are stamped by the service that priced the
	// quote; CalculateQuote itself is pure and leaves them zero.
	RateSource RateSource `json:"rateSource,omitempty"`
	QuotedAt   time.Time  `json:"quotedAt,omitempty"`
}

// CalculateQuote converts amount in the given direction at rate. Pure function:
// identical inputs always produce identical output.
//
// Sell (ARS -> USD): commission is charged on the source amount before
// conversion. Below SmallAmountThreshold the flat SmallAmountFee applies
// instead of the percentage. target = (amount - commission) * rate.
//
// Buy (USD -> ARS): the rate is widened by BuyRateSpread and the amount divided
// by it; the spread is the fee, so Commission is reported as zero.
//
// Target amounts are truncated toward zero at 2 decimal places.
func CalculateQuote(amount decimal.Decimal, direction Direction, rate decimal.Decimal) (Quote, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Quote{}, fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrInvalidAmount, amount)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return Quote{}, fmt.Errorf("%w: rate must be positive, got %s", apperrors.ErrInvalidRate, rate)
	}

	switch direction {
	case DirectionSell:
		commission := amount.Mul(SellCommissionRate)
		if amount.LessThan(SmallAmountThreshold) {
			commission = SmallAmountFee
		}
		net := amount.Sub(commission)
		if net.LessThanOrEqual(decimal.Zero) {
			return Quote{}, fmt.Errorf("%w: amount %s does not cover the %s minimum fee", apperrors.ErrInvalidAmount, amount, SmallAmountFee)
		}
		return Quote{
			Direction:    direction,
			SourceAmount: amount,
			TargetAmount: net.Mul(rate).Truncate(2),
			AppliedRate:  rate,
			Commission:   commission,
			TotalDebited: amount,
		}, nil

	case DirectionBuy:
		adjusted := rate.Add(BuyRateSpread)
		return Quote{
			Direction:    direction,
			SourceAmount: amount,
			TargetAmount: amount.Div(adjusted).Truncate(2),
			AppliedRate:  adjusted,
			Commission:   decimal.Zero,
			TotalDebited: amount,
		}, nil

	default:
		return Quote{}, fmt.Errorf("%w: unknown direction %q", apperrors.ErrInvalidType, direction)
	}
}
