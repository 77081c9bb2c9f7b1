package persistence

import (
	"context"
	"fmt"

	"github.com/CariHQ/nnp-web/internal/domain/payments"
	"github.com/CariHQ/nnp-web/internal/infrastructure/persistence/models"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormPaymentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPaymentRepository creates a new GORM-based PaymentRepository implementation
func NewGormPaymentRepository(db *gorm.DB, logger logger.Logger) (payments.PaymentRepository, error) {
	return &gormPaymentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPaymentRepository) CreateIfAbsent(ctx context.Context, payment *payments.Payment) (bool, error) {
	if err := payment.Validate(); err != nil {
		return false, fmt.Errorf("validation error: %w", err)
	}

	model := &models.PaymentModel{}
	model.FromDomain(payment)

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "stripe_payment_id"}},
			DoNothing: true,
		}).
		Create(model)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	*payment = *model.ToDomain()
	r.logger.Info("Recorded payment ", payment.StripePaymentID)
	return true, nil
}

func (r *gormPaymentRepository) List(ctx context.Context, limit int) ([]*payments.Payment, error) {
	var modelList []*models.PaymentModel
	query := r.db.WithContext(ctx).Order(byColumn("created_at", true)).Order(byColumn("id", true))
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	domainList := make([]*payments.Payment, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
