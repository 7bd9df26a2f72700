package models

import "github.com/shopspring/decimal"

// P2POrder is the persistence shape of a peer-to-peer order. The table keeps
// its historical Spanish name, ordenes_p2p.
type P2POrder struct {
	OrderID  string          `db:"order_id"`
	UserID   string          `db:"user_id"`
	Type     string          `db:"order_type"`
	Currency string          `db:"currency"`
	Quantity decimal.Decimal `db:"quantity"`
	Price    decimal.Decimal `db:"price"`
	Status   string          `db:"status"`
	AuditFields
}
