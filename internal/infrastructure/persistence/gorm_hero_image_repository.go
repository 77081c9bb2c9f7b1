package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/infrastructure/persistence/models"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormHeroImageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormHeroImageRepository creates a new GORM-based HeroImageRepository implementation
func NewGormHeroImageRepository(db *gorm.DB, logger logger.Logger) (heroimages.HeroImageRepository, error) {
	return &gormHeroImageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormHeroImageRepository) Create(ctx context.Context, image *heroimages.HeroImage) error {
	if err := image.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.HeroImageModel{}
	model.FromDomain(image)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create hero image: %w", err)
	}

	*image = *model.ToDomain()
	r.logger.Info("Created hero image with id ", image.ID)
	return nil
}

func (r *gormHeroImageRepository) ListAll(ctx context.Context) ([]*heroimages.HeroImage, error) {
	return r.find(r.db.WithContext(ctx).Order(byColumn("order", true)).Order(byColumn("id", true)))
}

func (r *gormHeroImageRepository) ListActive(ctx context.Context) ([]*heroimages.HeroImage, error) {
	return r.find(r.db.WithContext(ctx).Where("active = ?", true).Order(byColumn("order", false)).Order(byColumn("id", false)))
}

func (r *gormHeroImageRepository) find(query *gorm.DB) ([]*heroimages.HeroImage, error) {
	var modelList []*models.HeroImageModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch hero images: %w", err)
	}

	domainList := make([]*heroimages.HeroImage, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormHeroImageRepository) GetByID(ctx context.Context, id uint) (*heroimages.HeroImage, error) {
	var model models.HeroImageModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("hero image with ID %d: %w", id, heroimages.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch hero image: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormHeroImageRepository) GetByTitle(ctx context.Context, title string) (*heroimages.HeroImage, error) {
	var model models.HeroImageModel
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("hero image titled %q: %w", title, heroimages.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch hero image: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormHeroImageRepository) Update(ctx context.Context, image *heroimages.HeroImage) error {
	if err := image.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.HeroImageModel{}
	model.FromDomain(image)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update hero image: %w", err)
	}

	image.UpdatedAt = model.UpdatedAt
	r.logger.Info("Updated hero image with id ", image.ID)
	return nil
}

func (r *gormHeroImageRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.HeroImageModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete hero image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("hero image with ID %d: %w", id, heroimages.ErrNotFound)
	}

	r.logger.Info("Deleted hero image with id ", id)
	return nil
}

func (r *gormHeroImageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.HeroImageModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count hero images: %w", err)
	}
	return count, nil
}
