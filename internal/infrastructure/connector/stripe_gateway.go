package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"

	"github.com/CariHQ/nnp-web/internal/domain/donations"
	"github.com/CariHQ/nnp-web/internal/domain/payments"
	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
	"github.com/CariHQ/nnp-web/internal/pkg/strutil"
)

// StripeGateway implements donations.CheckoutGateway and payments.PaymentGateway
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	logger        logger.Logger
}

// NewStripeGateway creates a gateway. A gateway without a secret key still
// verifies webhooks but every API call returns ErrNotConfigured.
func NewStripeGateway(settings *config.StripeSettings, logger logger.Logger) *StripeGateway {
	return newStripeGateway(settings, nil, logger)
}

func newStripeGateway(settings *config.StripeSettings, backends *stripe.Backends, logger logger.Logger) *StripeGateway {
	g := &StripeGateway{
		webhookSecret: settings.WebhookSecret,
		logger:        logger,
	}
	if settings.Enabled() {
		g.api = client.New(settings.SecretKey, backends)
	}
	return g
}

// CreateCustomer registers a donor
func (g *StripeGateway) CreateCustomer(ctx context.Context, details *donations.BillingDetails) (string, error) {
	if g.api == nil {
		return "", donations.ErrNotConfigured
	}

	params := &stripe.CustomerParams{
		Name:  stripe.String(details.Name),
		Email: stripe.String(details.Email),
		Address: &stripe.AddressParams{
			Line1:      stripe.String(details.Address.Line1),
			City:       stripe.String(details.Address.City),
			State:      stripe.String(details.Address.State),
			PostalCode: stripe.String(details.Address.PostalCode),
		},
	}
	params.Context = ctx

	c, err := g.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	g.logger.Info("Created Stripe customer ", c.ID)
	return c.ID, nil
}

// CreatePaymentIntent starts a one-time payment and returns its client secret
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if g.api == nil {
		return "", donations.ErrNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	g.logger.Info("Created payment intent ", pi.ID, " for ", amount, " ", currency)
	return pi.ClientSecret, nil
}

// CreateMeteredSubscription subscribes the customer to priceID and sets the
// usage of the first period to amount
func (g *StripeGateway) CreateMeteredSubscription(ctx context.Context, customerID, priceID string, amount int64) (string, error) {
	if g.api == nil {
		return "", donations.ErrNotConfigured
	}

	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{
				Price:    stripe.String(priceID),
				Metadata: map[string]string{"monthly_amount": fmt.Sprint(amount)},
			},
		},
	}
	params.Context = ctx

	sub, err := g.api.Subscriptions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create subscription: %w", err)
	}

	if sub.Items == nil || len(sub.Items.Data) == 0 {
		return "", fmt.Errorf("subscription %s has no items", sub.ID)
	}

	usage := &stripe.UsageRecordParams{
		SubscriptionItem: stripe.String(sub.Items.Data[0].ID),
		Quantity:         stripe.Int64(amount),
		Timestamp:        stripe.Int64(time.Now().Unix()),
		Action:           stripe.String("set"),
	}
	usage.Context = ctx

	if _, err := g.api.UsageRecords.New(usage); err != nil {
		return "", fmt.Errorf("failed to report usage for subscription %s: %w", sub.ID, err)
	}

	g.logger.Info("Created subscription ", sub.ID, " for customer ", customerID)
	return sub.ID, nil
}

// ParseWebhookEvent verifies the Stripe-Signature header and decodes the event
func (g *StripeGateway) ParseWebhookEvent(payload []byte, signature string) (*payments.WebhookEvent, error) {
	if g.webhookSecret == "" {
		g.logger.Error("Webhook received but STRIPE_WEBHOOK_SECRET is not configured")
		return nil, payments.ErrSignatureInvalid
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		g.logger.Warn("Webhook signature verification failed: ", err)
		return nil, fmt.Errorf("%w: %v", payments.ErrSignatureInvalid, err)
	}

	out := &payments.WebhookEvent{ID: event.ID, Type: string(event.Type)}

	if event.Data != nil && len(event.Data.Raw) > 0 && isPaymentIntentEvent(string(event.Type)) {
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("failed to decode payment intent of event %s: %w", event.ID, err)
		}
		out.Payment = paymentFromIntent(&pi)
	}

	return out, nil
}

// ListRecentPaymentIntents returns one page of the newest payment intents
func (g *StripeGateway) ListRecentPaymentIntents(ctx context.Context, limit int) ([]*payments.Payment, error) {
	if g.api == nil {
		return nil, payments.ErrNotConfigured
	}

	params := &stripe.PaymentIntentListParams{}
	params.Limit = stripe.Int64(int64(limit))
	params.Single = true
	params.Context = ctx

	var out []*payments.Payment
	iter := g.api.PaymentIntents.List(params)
	for iter.Next() && len(out) < limit {
		out = append(out, paymentFromIntent(iter.PaymentIntent()))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list payment intents: %w", err)
	}

	return out, nil
}

func isPaymentIntentEvent(eventType string) bool {
	return strings.HasPrefix(eventType, "payment_intent.")
}

func paymentFromIntent(pi *stripe.PaymentIntent) *payments.Payment {
	p := &payments.Payment{
		StripePaymentID: pi.ID,
		Amount:          pi.Amount,
		Currency:        string(pi.Currency),
		Status:          string(pi.Status),
		CustomerEmail:   strutil.Ptr(pi.ReceiptEmail),
		Description:     strutil.Ptr(pi.Description),
	}
	if pi.Shipping != nil {
		p.CustomerName = strutil.Ptr(pi.Shipping.Name)
	}
	if pi.PaymentMethod != nil {
		p.PaymentMethod = strutil.Ptr(pi.PaymentMethod.ID)
	}
	if len(pi.Metadata) > 0 {
		if raw, err := json.Marshal(pi.Metadata); err == nil {
			p.Metadata = raw
		}
	}
	if pi.Created > 0 {
		p.CreatedAt = time.Unix(pi.Created, 0).UTC()
	}
	return p
}
