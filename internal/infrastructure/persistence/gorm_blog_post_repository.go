package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/infrastructure/persistence/models"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormBlogPostRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBlogPostRepository creates a new GORM-based BlogPostRepository implementation
func NewGormBlogPostRepository(db *gorm.DB, logger logger.Logger) (posts.BlogPostRepository, error) {
	return &gormBlogPostRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBlogPostRepository) Create(ctx context.Context, post *posts.BlogPost) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BlogPostModel{}
	model.FromDomain(post)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}

	*post = *model.ToDomain()
	r.logger.Info("Created blog post ", post.Slug, " with id ", post.ID)
	return nil
}

func (r *gormBlogPostRepository) ListAll(ctx context.Context) ([]*posts.BlogPost, error) {
	return r.find(r.db.WithContext(ctx).Order(byColumn("created_at", true)).Order(byColumn("id", true)))
}

func (r *gormBlogPostRepository) ListPublished(ctx context.Context, limit int) ([]*posts.BlogPost, error) {
	query := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order(byColumn("published_at", true)).
		Order(byColumn("id", true))
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.find(query)
}

func (r *gormBlogPostRepository) find(query *gorm.DB) ([]*posts.BlogPost, error) {
	var modelList []*models.BlogPostModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch blog posts: %w", err)
	}

	domainList := make([]*posts.BlogPost, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormBlogPostRepository) GetBySlug(ctx context.Context, slug string) (*posts.BlogPost, error) {
	var model models.BlogPostModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog post %q: %w", slug, posts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch blog post: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBlogPostRepository) GetByID(ctx context.Context, id uint) (*posts.BlogPost, error) {
	var model models.BlogPostModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog post with ID %d: %w", id, posts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch blog post: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBlogPostRepository) Update(ctx context.Context, post *posts.BlogPost) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BlogPostModel{}
	model.FromDomain(post)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}

	post.UpdatedAt = model.UpdatedAt
	r.logger.Info("Updated blog post with id ", post.ID)
	return nil
}

func (r *gormBlogPostRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BlogPostModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete blog post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("blog post with ID %d: %w", id, posts.ErrNotFound)
	}

	r.logger.Info("Deleted blog post with id ", id)
	return nil
}
