package donations

import (
	"context"

	"github.com/shopspring/decimal"
)

// DonationService defines the checkout operations behind the donation widget.
type DonationService interface {
	// CreateCustomer registers the donor with Stripe and returns the customer id.
	CreateCustomer(ctx context.Context, details *BillingDetails) (string, error)

	// CreatePaymentIntent starts a one-time donation of amount minor units and
	// returns the client secret the browser confirms with.
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)

	// CreateSubscription subscribes customerID to the metered monthly price and
	// reports amount as the first period's usage. It returns the subscription id.
	CreateSubscription(ctx context.Context, amount int64, customerID string) (string, error)

	// ConvertToUSD converts an East Caribbean dollar amount to US cents.
	ConvertToUSD(amount decimal.Decimal) (int64, error)
}

// CheckoutGateway is the write side of the Stripe API
type CheckoutGateway interface {
	CreateCustomer(ctx context.Context, details *BillingDetails) (string, error)
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
	CreateMeteredSubscription(ctx context.Context, customerID, priceID string, amount int64) (string, error)
}
