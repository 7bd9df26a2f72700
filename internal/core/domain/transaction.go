package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of an exchange transaction.
// State machine: pending (initial) -> completed | rejected. Both outcomes are
// terminal; no other transition is permitted.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionRejected  TransactionStatus = "rejected"
)

// IsValid reports whether s is a known status.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionPending, TransactionCompleted, TransactionRejected:
		return true
	}
	return false
}

// IsTerminal reports whether s admits no further transitions.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionCompleted || s == TransactionRejected
}

// CanTransitionTo reports whether the s -> next transition is allowed.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	return s == TransactionPending && (next == TransactionCompleted || next == TransactionRejected)
}

// ExchangeTransaction is a persisted exchange submission. Created in pending at
// submission time; mutated only via explicit status transitions; never deleted.
// The datastore row is the sole store of truth.
type ExchangeTransaction struct {
	TransactionID  string            `json:"transactionID"`
	UserID         string            `json:"userID"`
	SourceAmount   decimal.Decimal   `json:"sourceAmount"`
	SourceCurrency Currency          `json:"sourceCurrency"`
	TargetCurrency Currency          `json:"targetCurrency"`
	TargetAmount   decimal.Decimal   `json:"targetAmount"`
	RateApplied    decimal.Decimal   `json:"rateApplied"`
	Commission     decimal.Decimal   `json:"commission"`
	Status         TransactionStatus `json:"status"`
	ProofReference string            `json:"proofReference"` // payment receipt reference
	Alias          string            `json:"alias"`          // destination account alias/CBU
	AuditFields
}
