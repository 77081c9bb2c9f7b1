package payments

import "context"

// PaymentService defines the use cases of the Stripe payment mirror.
type PaymentService interface {
	// List returns the most recent ListLimit payments, newest first.
	List(ctx context.Context) ([]*Payment, error)

	// RecordIfAbsent inserts payment unless its Stripe id is already stored.
	// It reports whether a row was inserted.
	RecordIfAbsent(ctx context.Context, payment *Payment) (bool, error)

	// HandleWebhook verifies the signature and records succeeded payment intents.
	// Other event types are acknowledged and ignored.
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error)

	// Sync pulls recent payment intents from Stripe and inserts the missing ones.
	Sync(ctx context.Context) (*SyncResult, error)
}

// PaymentRepository defines the persistence operations for payments
type PaymentRepository interface {
	// CreateIfAbsent inserts payment unless a row with the same Stripe id
	// exists, and reports whether it inserted.
	CreateIfAbsent(ctx context.Context, payment *Payment) (bool, error)
	List(ctx context.Context, limit int) ([]*Payment, error)
}

// PaymentGateway is the read side of the Stripe API used by the mirror
type PaymentGateway interface {
	// ParseWebhookEvent verifies signature against payload and decodes the event.
	// It returns ErrSignatureInvalid when verification fails.
	ParseWebhookEvent(payload []byte, signature string) (*WebhookEvent, error)

	// ListRecentPaymentIntents returns at most limit payment intents, newest first.
	ListRecentPaymentIntents(ctx context.Context, limit int) ([]*Payment, error)
}
