package entity

import "time"

// CheckoutClaim marks a gateway session as consumed. Its primary key is the
// gateway session id, so a session can be credited at most once.
type CheckoutClaim struct {
	SessionID string    `json:"session_id"`
	AccountID string    `json:"account_id"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
