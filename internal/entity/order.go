package entity

import "time"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

type Order struct {
	ID        string      `json:"id"`
	AccountID string      `json:"account_id"`
	Amount    int         `json:"amount"`
	Status    OrderStatus `json:"status"`
	PostURL   string      `json:"post_url,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	DecidedAt *time.Time  `json:"decided_at,omitempty"`
}
