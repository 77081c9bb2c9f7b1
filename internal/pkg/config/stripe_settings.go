package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// StripeSettings holds Stripe credentials. All values come from the environment.
type StripeSettings struct {
	SecretKey      string `env:"STRIPE_SECRET_KEY"`
	PublishableKey string `env:"STRIPE_PUBLISHABLE_KEY"`
	WebhookSecret  string `env:"STRIPE_WEBHOOK_SECRET"`
	MeteredPriceID string `env:"STRIPE_METERED_PRICE_ID"`
}

// Enabled reports whether payment calls can be made at all
func (s *StripeSettings) Enabled() bool {
	return s.SecretKey != ""
}

// DonationSettings controls how donation amounts entered on the site are charged.
type DonationSettings struct {
	// Currency the donor enters amounts in
	DisplayCurrency string `mapstructure:"display_currency" validate:"required,len=3"`
	// ChargeCurrency is what Stripe is asked to charge
	ChargeCurrency string `mapstructure:"charge_currency" validate:"required,len=3"`
	// ExchangeRate is display units per one charge unit (XCD per USD)
	ExchangeRate string `mapstructure:"exchange_rate" validate:"required"`
	// MinimumAmount in display units
	MinimumAmount string `mapstructure:"minimum_amount"`
}

// Validate checks that all fields in DonationSettings are valid
func (s *DonationSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DonationSettings: %w", err)
	}

	rate, err := decimal.NewFromString(s.ExchangeRate)
	if err != nil {
		return fmt.Errorf("exchange rate %q is not a decimal: %w", s.ExchangeRate, err)
	}
	if !rate.IsPositive() {
		return fmt.Errorf("exchange rate must be positive")
	}

	if s.MinimumAmount != "" {
		if _, err := decimal.NewFromString(s.MinimumAmount); err != nil {
			return fmt.Errorf("minimum amount %q is not a decimal: %w", s.MinimumAmount, err)
		}
	}

	return nil
}
