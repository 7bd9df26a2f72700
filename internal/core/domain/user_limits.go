package domain

import "github.com/shopspring/decimal"

// UserLimits is the per-user verification flag and per-order maximum. Reference
// data maintained by back-office tooling; read-only from the exchange core's
// perspective.
type UserLimits struct {
	UserID         string          `json:"userID"`
	Verified       bool            `json:"verified"`
	MaxOrderAmount decimal.Decimal `json:"maxOrderAmount"`
	AuditFields
}
