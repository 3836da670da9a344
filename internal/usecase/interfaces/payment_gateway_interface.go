package interfaces

import "context"

// CheckoutSession is the provider's answer to a "create payment session"
// call: the URL the customer's browser is redirected to.
type CheckoutSession struct {
	OrderID    string
	PaymentURL string
}

// PaymentState is the provider-reported outcome for an order.
type PaymentState struct {
	// State is the provider state code: COMPLETED, FAILED, PENDING or a
	// provider-specific variant treated as pending.
	State string
	// TransactionID is the provider's reference for the payment, when known.
	TransactionID string
}

// IPaymentGateway abstracts the hosted-checkout payment provider.
//
// CreateCheckout opens a payment session for an order; amountMinor is in the
// currency's minor unit (paise). CheckStatus queries the provider's order
// status endpoint, used by the browser-redirect reconciliation path.

type IPaymentGateway interface {
	CreateCheckout(ctx context.Context, orderID string, amountMinor int64, redirectURL string) (CheckoutSession, error)
	CheckStatus(ctx context.Context, orderID string) (PaymentState, error)
}
