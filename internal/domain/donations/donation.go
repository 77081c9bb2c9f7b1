package donations

import (
	"errors"
	"fmt"

	"github.com/CariHQ/nnp-web/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Errors returned by the donation service
var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrNotConfigured = errors.New("donations are not configured")
)

// Address is the donor's billing address
type Address struct {
	Line1      string `json:"line1" validate:"max=255"`
	City       string `json:"city" validate:"max=100"`
	State      string `json:"state" validate:"max=100"`
	PostalCode string `json:"postal_code" validate:"max=20"`
}

// BillingDetails identify a donor for Stripe
type BillingDetails struct {
	Name    string  `json:"name" validate:"required,min=1,max=255"`
	Email   string  `json:"email" validate:"required,email"`
	Address Address `json:"address"`
}

// Validate for validating BillingDetails struct
func (b *BillingDetails) Validate() error {
	return validators.ValidateStruct(b)
}

// Converter turns amounts entered in the display currency into charge currency
// minor units. Rate is display units per one charge unit (2.7 XCD per USD).
type Converter struct {
	rate decimal.Decimal
}

// NewConverter parses rate, which must be a positive decimal
func NewConverter(rate string) (*Converter, error) {
	r, err := decimal.NewFromString(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid exchange rate %q: %w", rate, err)
	}
	if !r.IsPositive() {
		return nil, fmt.Errorf("exchange rate must be positive, got %s", rate)
	}
	return &Converter{rate: r}, nil
}

// Rate returns the configured exchange rate
func (c *Converter) Rate() decimal.Decimal {
	return c.rate
}

// ToMinorUnits converts amount (display currency, major units) to charge
// currency cents, rounding half away from zero.
func (c *Converter) ToMinorUnits(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, ErrInvalidAmount
	}
	cents := amount.Mul(decimal.NewFromInt(100)).DivRound(c.rate, 8).Round(0)
	if !cents.IsPositive() {
		return 0, ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

// ParseAmount reads a user supplied amount such as "50" or "12.50"
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	return d, nil
}
