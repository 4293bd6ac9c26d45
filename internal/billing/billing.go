// Package billing wraps the hosted billing provider. Everything upstream of
// this package works with the Provider interface and the plain types below;
// the Stripe SDK never leaks past it.
package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionState is the provider's current view of a subscription.
type SubscriptionState struct {
	ID                string
	Status            string
	CancelAt          *time.Time
	CancelAtPeriodEnd bool
	TrialEnd          *time.Time
}

// PendingCancellation reports whether the provider has a cancellation
// scheduled, regardless of what the raw status string still says.
func (s *SubscriptionState) PendingCancellation() bool {
	return s.CancelAtPeriodEnd || s.CancelAt != nil
}

// CheckoutParams describes a hosted checkout session to create.
type CheckoutParams struct {
	Amount      decimal.Decimal
	Currency    string
	Description string
	Reference   string // our donation ID, round-tripped through the provider
	SuccessURL  string
	CancelURL   string
}

// CheckoutSession is a created hosted checkout session.
type CheckoutSession struct {
	ID  string
	URL string
}

// Provider is the outbound billing integration.
type Provider interface {
	GetSubscription(ctx context.Context, providerSubID string) (*SubscriptionState, error)
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
}
