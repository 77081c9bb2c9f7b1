package app

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/CariHQ/nnp-web/internal/domain/donations"
	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// donationService implements the DonationService interface
type donationService struct {
	gateway        donations.CheckoutGateway
	converter      *donations.Converter
	chargeCurrency string
	meteredPriceID string
	logger         logger.Logger
}

// NewDonationService creates a new instance of DonationService
func NewDonationService(gateway donations.CheckoutGateway, settings *config.DonationSettings, stripe *config.StripeSettings, logger logger.Logger) (donations.DonationService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	converter, err := donations.NewConverter(settings.ExchangeRate)
	if err != nil {
		return nil, err
	}

	return &donationService{
		gateway:        gateway,
		converter:      converter,
		chargeCurrency: strings.ToLower(settings.ChargeCurrency),
		meteredPriceID: stripe.MeteredPriceID,
		logger:         logger,
	}, nil
}

func (s *donationService) CreateCustomer(ctx context.Context, details *donations.BillingDetails) (string, error) {
	if err := details.Validate(); err != nil {
		return "", err
	}
	return s.gateway.CreateCustomer(ctx, details)
}

func (s *donationService) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	if amount <= 0 {
		return "", donations.ErrInvalidAmount
	}
	return s.gateway.CreatePaymentIntent(ctx, amount, s.chargeCurrency)
}

func (s *donationService) CreateSubscription(ctx context.Context, amount int64, customerID string) (string, error) {
	if amount <= 0 {
		return "", donations.ErrInvalidAmount
	}
	if s.meteredPriceID == "" {
		s.logger.Error("STRIPE_METERED_PRICE_ID is not configured")
		return "", donations.ErrNotConfigured
	}
	return s.gateway.CreateMeteredSubscription(ctx, customerID, s.meteredPriceID, amount)
}

func (s *donationService) ConvertToUSD(amount decimal.Decimal) (int64, error) {
	return s.converter.ToMinorUnits(amount)
}
