package models

import "github.com/shopspring/decimal"

// ExchangeTransaction is the persistence shape of a pending or settled
// exchange. Status only ever moves pending -> completed|rejected; rows are
// never deleted.
type ExchangeTransaction struct {
	TransactionID  string          `db:"transaction_id"`
	UserID         string          `db:"user_id"`
	SourceAmount   decimal.Decimal `db:"source_amount"`
	SourceCurrency string          `db:"source_currency"`
	TargetCurrency string          `db:"target_currency"`
	TargetAmount   decimal.Decimal `db:"target_amount"`
	RateApplied    decimal.Decimal `db:"rate_applied"`
	Commission     decimal.Decimal `db:"commission"`
	Status         string          `db:"status"`
	ProofReference string          `db:"proof_reference"`
	Alias          string          `db:"alias"`
	AuditFields
}
