package billing

import (
	"context"
	"fmt"
	"time"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// providerTimeout bounds every outbound provider call. Callers fall back to
// cached state on timeout, so a short deadline is safe.
const providerTimeout = 5 * time.Second

// StripeProvider implements Provider against the Stripe API.
type StripeProvider struct {
	api     *client.API
	timeout time.Duration
}

var _ Provider = (*StripeProvider)(nil)

// NewStripeProvider creates a Stripe-backed provider.
func NewStripeProvider(secretKey string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{api: api, timeout: providerTimeout}
}

// GetSubscription fetches the live subscription state.
func (p *StripeProvider) GetSubscription(ctx context.Context, providerSubID string) (*SubscriptionState, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	params := &stripe.SubscriptionParams{Params: stripe.Params{Context: ctx}}
	sub, err := p.api.Subscriptions.Get(providerSubID, params)
	if err != nil {
		return nil, fmt.Errorf("get subscription %s: %w", providerSubID, err)
	}

	state := &SubscriptionState{
		ID:                sub.ID,
		Status:            string(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}
	if sub.CancelAt > 0 {
		t := time.Unix(sub.CancelAt, 0)
		state.CancelAt = &t
	}
	if sub.TrialEnd > 0 {
		t := time.Unix(sub.TrialEnd, 0)
		state.TrialEnd = &t
	}
	return state, nil
}

// CreateCheckoutSession creates a hosted checkout session for a one-time payment.
func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, cp CheckoutParams) (*CheckoutSession, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cents := cp.Amount.Shift(2).IntPart()
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		Mode:   stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(cp.Currency),
					UnitAmount: stripe.Int64(cents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(cp.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(cp.Reference),
		SuccessURL:        stripe.String(cp.SuccessURL),
		CancelURL:         stripe.String(cp.CancelURL),
	}

	sess, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}
