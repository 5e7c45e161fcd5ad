package payments

import "context"

// Intent is a client-confirmable payment created with the processor
type Intent struct {
	ID           string  `json:"id"`
	ClientSecret string  `json:"client_secret"`
	Amount       float64 `json:"amount"`
}

// Gateway authorizes charges against an external payment processor. Charge
// performs a synchronous, confirmed charge of amountMinor (integer minor
// units) against the given payment method and returns an error if the
// processor declines or errors; no retry is attempted. CreateIntent creates
// an unconfirmed payment intent for client-side completion.
type Gateway interface {
	Charge(ctx context.Context, amountMinor int64, currency, paymentMethodID string) error
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (*Intent, error)
}

// Default is the process-wide gateway, initialized once at startup. Tests
// swap in a stub.
var Default Gateway
