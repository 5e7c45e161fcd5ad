package payments

import (
	"context"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"

	"github.com/joltcab/joltcab-api/utils"
)

// requestTimeout bounds every call to Stripe. A timed-out charge is treated
// as a failure: nothing is assumed charged and no ledger mutation happens.
const requestTimeout = 15 * time.Second

// StripeGateway implements Gateway using Stripe PaymentIntents
type StripeGateway struct{}

// InitStripe configures the Stripe client and installs the default gateway
func InitStripe(secretKey string) {
	stripe.Key = secretKey
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}))
	Default = &StripeGateway{}
}

// Charge creates and confirms a PaymentIntent in one round trip
func (g *StripeGateway) Charge(ctx context.Context, amountMinor int64, currency, paymentMethodID string) error {
	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(amountMinor),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(paymentMethodID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok {
			return utils.BadRequestError(stripeErr.Msg, err)
		}
		return utils.BadRequestError("Payment failed", err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return utils.BadRequestError("Payment failed", nil)
	}
	return nil
}

// CreateIntent creates an unconfirmed PaymentIntent and returns its client secret
func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok {
			return nil, utils.BadRequestError(stripeErr.Msg, err)
		}
		return nil, utils.BadRequestError("Failed to create payment intent", err)
	}

	return &Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       float64(intent.Amount) / 100,
	}, nil
}
