package models

import "github.com/shopspring/decimal"

// UserLimits is the persistence shape of a user's verification flag and
// per-order cap. One row per user, upserted by back-office tooling.
type UserLimits struct {
	UserID         string          `db:"user_id"`
	Verified       bool            `db:"verified"`
	MaxOrderAmount decimal.Decimal `db:"max_order_amount"`
	AuditFields
}
