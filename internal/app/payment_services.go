package app

import (
	"context"
	"fmt"

	"github.com/CariHQ/nnp-web/internal/domain/payments"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// paymentService implements the PaymentService interface
type paymentService struct {
	repo    payments.PaymentRepository
	gateway payments.PaymentGateway
	logger  logger.Logger
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(repo payments.PaymentRepository, gateway payments.PaymentGateway, logger logger.Logger) (payments.PaymentService, error) {
	return &paymentService{
		repo:    repo,
		gateway: gateway,
		logger:  logger,
	}, nil
}

func (s *paymentService) List(ctx context.Context) ([]*payments.Payment, error) {
	return s.repo.List(ctx, payments.ListLimit)
}

// RecordIfAbsent relies on the unique Stripe id, so concurrent webhook and
// sync deliveries of the same intent record it once.
func (s *paymentService) RecordIfAbsent(ctx context.Context, payment *payments.Payment) (bool, error) {
	if payment.Currency == "" {
		payment.Currency = payments.DefaultCurrency
	}

	recorded, err := s.repo.CreateIfAbsent(ctx, payment)
	if err != nil {
		return false, fmt.Errorf("failed to record payment %s: %w", payment.StripePaymentID, err)
	}
	return recorded, nil
}

func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) (*payments.WebhookResult, error) {
	event, err := s.gateway.ParseWebhookEvent(payload, signature)
	if err != nil {
		return nil, err
	}

	result := &payments.WebhookResult{EventType: event.Type}

	if event.Type != payments.EventPaymentIntentSucceeded || event.Payment == nil {
		s.logger.Debug("Ignoring Stripe event ", event.ID, " of type ", event.Type)
		return result, nil
	}

	event.Payment.Status = payments.StatusSucceeded
	recorded, err := s.RecordIfAbsent(ctx, event.Payment)
	if err != nil {
		return nil, err
	}
	result.Recorded = recorded

	if recorded {
		s.logger.Info("Recorded payment ", event.Payment.StripePaymentID, " from webhook")
	}
	return result, nil
}

func (s *paymentService) Sync(ctx context.Context) (*payments.SyncResult, error) {
	intents, err := s.gateway.ListRecentPaymentIntents(ctx, payments.ListLimit)
	if err != nil {
		return nil, err
	}

	result := &payments.SyncResult{Total: len(intents)}
	for _, p := range intents {
		recorded, err := s.RecordIfAbsent(ctx, p)
		if err != nil {
			return nil, err
		}
		if recorded {
			result.Synced++
		} else {
			result.Skipped++
		}
	}

	s.logger.Info("Synced payments: ", result.Synced, " new, ", result.Skipped, " skipped, ", result.Total, " total")
	return result, nil
}
