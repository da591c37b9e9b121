package gateway

import "context"

// CheckoutSession is one hosted payment attempt at the provider.
type CheckoutSession struct {
	ID        string
	URL       string
	AccountID string
	Amount    int
	Paid      bool
}

// PaymentGateway is the port to the hosted checkout provider. Implementations
// must honor the context deadline; a timed-out call is a failure, never an
// implicit success.
type PaymentGateway interface {
	CreateCheckout(ctx context.Context, accountID string, amount int) (*CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
