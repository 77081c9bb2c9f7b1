package payments

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/CariHQ/nnp-web/internal/pkg/validators"
)

// Errors returned by the payment service
var (
	ErrSignatureInvalid = errors.New("Webhook signature verification failed")
	ErrNotConfigured    = errors.New("stripe is not configured")
)

// Payment statuses and Stripe event types the mirror cares about
const (
	StatusSucceeded             = "succeeded"
	EventPaymentIntentSucceeded = "payment_intent.succeeded"
	DefaultCurrency             = "usd"
	// ListLimit caps both the admin listing and a sync run
	ListLimit = 100
)

// Payment is a local copy of a Stripe payment intent. Amount is in minor units.
type Payment struct {
	ID              uint
	StripePaymentID string `validate:"required,max=255"`
	Amount          int64  `validate:"gte=0"`
	Currency        string `validate:"required,len=3"`
	Status          string `validate:"required,max=50"`
	CustomerEmail   *string
	CustomerName    *string
	PaymentMethod   *string
	Description     *string
	Metadata        json.RawMessage
	CreatedAt       time.Time
}

// Validate for validating Payment struct
func (p *Payment) Validate() error {
	return validators.ValidateStruct(p)
}

// WebhookEvent is a verified Stripe event. Payment is set for payment intent events.
type WebhookEvent struct {
	ID      string
	Type    string
	Payment *Payment
}

// WebhookResult reports what HandleWebhook did with an event
type WebhookResult struct {
	EventType string
	Recorded  bool
}

// SyncResult reports the outcome of a sync run
type SyncResult struct {
	Synced  int `json:"synced"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}
