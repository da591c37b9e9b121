package entity

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrAccountNotFound     = errors.New("account not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidTransition   = errors.New("order already decided")
	ErrMissingSession      = errors.New("checkout session not found")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrAlreadyReconciled   = errors.New("checkout session already credited")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
	ErrStoreUnavailable    = errors.New("store unavailable")
)
