package gateway

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"boostmarket/internal/entity"
	"boostmarket/pkg/logger"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeGateway drives Stripe hosted checkout. The account id and amount
// travel in the session metadata and come back on retrieval, so the
// confirmation endpoint only ever needs the session id.
type StripeGateway struct {
	api    *client.API
	domain string
	logger *logger.Logger
}

func NewStripeGateway(secretKey, domain string, logger *logger.Logger) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{
		api:    api,
		domain: domain,
		logger: logger,
	}
}

func (g *StripeGateway) CreateCheckout(ctx context.Context, accountID string, amount int) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Wallet Recharge: $%d", amount)),
					},
					// Stripe uses cents
					UnitAmount: stripe.Int64(int64(amount) * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(g.domain + "/api/v1/wallet/recharge/confirm?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(g.domain + "/dashboard"),
	}
	params.Context = ctx
	params.AddMetadata("account_id", accountID)
	params.AddMetadata("amount", strconv.Itoa(amount))

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		g.logger.Error("Failed to create checkout session: %v", err)
		return nil, g.translate(err)
	}

	return &CheckoutSession{
		ID:        sess.ID,
		URL:       sess.URL,
		AccountID: accountID,
		Amount:    amount,
	}, nil
}

func (g *StripeGateway) GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, g.translate(err)
	}

	amount, err := strconv.Atoi(sess.Metadata["amount"])
	if err != nil {
		g.logger.Error("Checkout session %s has bad amount metadata: %v", sessionID, err)
		return nil, fmt.Errorf("%w: bad session metadata", entity.ErrGatewayUnavailable)
	}

	return &CheckoutSession{
		ID:        sess.ID,
		URL:       sess.URL,
		AccountID: sess.Metadata["account_id"],
		Amount:    amount,
		Paid:      sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
	}, nil
}

func (g *StripeGateway) translate(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
		return entity.ErrMissingSession
	}
	return fmt.Errorf("%w: %v", entity.ErrGatewayUnavailable, err)
}
