package models

import (
	"encoding/json"
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/payments"
)

// PaymentModel is the GORM database model for mirrored Stripe payments
type PaymentModel struct {
	ID              uint    `gorm:"primaryKey;autoIncrement"`
	StripePaymentID string  `gorm:"column:stripe_payment_id;not null;uniqueIndex;type:varchar(255)"`
	Amount          int64   `gorm:"not null"`
	Currency        string  `gorm:"not null;type:varchar(3)"`
	Status          string  `gorm:"not null;type:varchar(50)"`
	CustomerEmail   *string `gorm:"type:varchar(255)"`
	CustomerName    *string `gorm:"type:varchar(255)"`
	PaymentMethod   *string `gorm:"type:varchar(255)"`
	Description     *string `gorm:"type:text"`
	Metadata        *string `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return "stripe_payments"
}

// ToDomain converts GORM model to domain entity
func (m *PaymentModel) ToDomain() *payments.Payment {
	p := &payments.Payment{
		ID:              m.ID,
		StripePaymentID: m.StripePaymentID,
		Amount:          m.Amount,
		Currency:        m.Currency,
		Status:          m.Status,
		CustomerEmail:   m.CustomerEmail,
		CustomerName:    m.CustomerName,
		PaymentMethod:   m.PaymentMethod,
		Description:     m.Description,
		CreatedAt:       m.CreatedAt,
	}
	if m.Metadata != nil {
		p.Metadata = json.RawMessage(*m.Metadata)
	}
	return p
}

// FromDomain converts domain entity to GORM model
func (m *PaymentModel) FromDomain(p *payments.Payment) {
	m.ID = p.ID
	m.StripePaymentID = p.StripePaymentID
	m.Amount = p.Amount
	m.Currency = p.Currency
	m.Status = p.Status
	m.CustomerEmail = p.CustomerEmail
	m.CustomerName = p.CustomerName
	m.PaymentMethod = p.PaymentMethod
	m.Description = p.Description
	m.Metadata = nil
	if len(p.Metadata) > 0 {
		metadata := string(p.Metadata)
		m.Metadata = &metadata
	}
	m.CreatedAt = p.CreatedAt
}
