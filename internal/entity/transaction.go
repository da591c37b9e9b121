package entity

import "time"

type TransactionType string

const (
	TransactionTypeRecharge     TransactionType = "recharge"
	TransactionTypePurchase     TransactionType = "purchase"
	TransactionTypeRefund       TransactionType = "refund"
	TransactionTypeCompensation TransactionType = "compensation"
)

// Transaction is an append-only audit record of a wallet movement.
// Amount is signed: credits are positive, debits negative.
type Transaction struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Type      TransactionType `json:"type"`
	Amount    int             `json:"amount"`
	Reference string          `json:"reference,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
