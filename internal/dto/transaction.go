package dto

import (
	"time"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest submits an exchange for settlement. The quote is
// recomputed server-side at the current rate; nothing from a previously
// displayed quote is trusted.
type CreateTransactionRequest struct {
	Amount         decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Direction      string          `json:"direction" binding:"required,oneof=SELL BUY"`
	ProofReference string          `json:"proofReference" binding:"required"`
	Alias          string          `json:"alias" binding:"required"`
}

// UpdateTransactionStatusRequest moves a transaction out of pending.
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=completed rejected"`
}

// TransactionResponse is the API shape for a persisted transaction.
type TransactionResponse struct {
	TransactionID  string          `json:"transactionID"`
	UserID         string          `json:"userID"`
	SourceAmount   decimal.Decimal `json:"sourceAmount"`
	SourceCurrency string          `json:"sourceCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	RateApplied    decimal.Decimal `json:"rateApplied"`
	Commission     decimal.Decimal `json:"commission"`
	Status         string          `json:"status"`
	ProofReference string          `json:"proofReference"`
	Alias          string          `json:"alias"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.ExchangeTransaction to its response DTO.
func ToTransactionResponse(txn *domain.ExchangeTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  txn.TransactionID,
		UserID:         txn.UserID,
		SourceAmount:   txn.SourceAmount,
		SourceCurrency: string(txn.SourceCurrency),
		TargetCurrency: string(txn.TargetCurrency),
		TargetAmount:   txn.TargetAmount,
		RateApplied:    txn.RateApplied,
		Commission:     txn.Commission,
		Status:         string(txn.Status),
		ProofReference: txn.ProofReference,
		Alias:          txn.Alias,
		CreatedAt:      txn.CreatedAt,
		LastUpdatedAt:  txn.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.ExchangeTransaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
