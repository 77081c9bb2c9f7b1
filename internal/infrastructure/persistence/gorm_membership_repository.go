package persistence

import (
	"context"
	"fmt"

	"github.com/CariHQ/nnp-web/internal/domain/membership"
	"github.com/CariHQ/nnp-web/internal/infrastructure/persistence/models"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormMembershipRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMembershipRepository creates a new GORM-based ApplicationRepository implementation
func NewGormMembershipRepository(db *gorm.DB, logger logger.Logger) (membership.ApplicationRepository, error) {
	return &gormMembershipRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMembershipRepository) Create(ctx context.Context, application *membership.Application) error {
	if err := application.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MembershipApplicationModel{}
	model.FromDomain(application)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create membership application: %w", err)
	}

	*application = *model.ToDomain()
	r.logger.Info("Stored membership application with id ", application.ID)
	return nil
}

func (r *gormMembershipRepository) List(ctx context.Context) ([]*membership.Application, error) {
	var modelList []*models.MembershipApplicationModel
	if err := r.db.WithContext(ctx).Order(byColumn("created_at", true)).Order(byColumn("id", true)).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch membership applications: %w", err)
	}

	domainList := make([]*membership.Application, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
