package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/infrastructure/persistence/models"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPageContentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPageContentRepository creates a new GORM-based PageContentRepository implementation
func NewGormPageContentRepository(db *gorm.DB, logger logger.Logger) (pages.PageContentRepository, error) {
	return &gormPageContentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPageContentRepository) Create(ctx context.Context, content *pages.PageContent) error {
	if err := content.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PageContentModel{}
	model.FromDomain(content)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create page content: %w", err)
	}

	*content = *model.ToDomain()
	r.logger.Info("Created page content ", content.Page, "/", content.Section, " with id ", content.ID)
	return nil
}

func (r *gormPageContentRepository) List(ctx context.Context, query *pages.PageContentQuery) ([]*pages.PageContent, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.PageContentModel{})
	if query.Page != "" {
		dbQuery = dbQuery.Where("page = ? AND active = ?", query.Page, true)
	}

	return r.find(dbQuery.Order(byColumn("order", true)).Order(byColumn("id", true)))
}

func (r *gormPageContentRepository) ListForPage(ctx context.Context, page string) ([]*pages.PageContent, error) {
	return r.find(r.db.WithContext(ctx).
		Where("page = ? AND active = ?", page, true).
		Order(byColumn("order", false)).
		Order(byColumn("id", false)))
}

func (r *gormPageContentRepository) find(query *gorm.DB) ([]*pages.PageContent, error) {
	var modelList []*models.PageContentModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch page content: %w", err)
	}

	domainList := make([]*pages.PageContent, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPageContentRepository) GetByID(ctx context.Context, id uint) (*pages.PageContent, error) {
	var model models.PageContentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("page content with ID %d: %w", id, pages.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch page content: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPageContentRepository) Update(ctx context.Context, content *pages.PageContent) error {
	if err := content.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PageContentModel{}
	model.FromDomain(content)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update page content: %w", err)
	}

	content.UpdatedAt = model.UpdatedAt
	r.logger.Info("Updated page content with id ", content.ID)
	return nil
}

func (r *gormPageContentRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PageContentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete page content: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("page content with ID %d: %w", id, pages.ErrNotFound)
	}

	r.logger.Info("Deleted page content with id ", id)
	return nil
}

func (r *gormPageContentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PageContentModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count page content: %w", err)
	}
	return count, nil
}
