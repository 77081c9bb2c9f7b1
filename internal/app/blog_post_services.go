package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// blogPostService implements the BlogPostService interface
type blogPostService struct {
	repo   posts.BlogPostRepository
	logger logger.Logger
	now    func() time.Time
}

// NewBlogPostService creates a new instance of BlogPostService
func NewBlogPostService(repo posts.BlogPostRepository, logger logger.Logger) (posts.BlogPostService, error) {
	return &blogPostService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (s *blogPostService) Create(ctx context.Context, post *posts.BlogPost) (*posts.BlogPost, error) {
	post.Normalize(s.now())

	if err := post.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureSlugFree(ctx, post.Slug, 0); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (s *blogPostService) ListAll(ctx context.Context) ([]*posts.BlogPost, error) {
	return s.repo.ListAll(ctx)
}

func (s *blogPostService) ListPublished(ctx context.Context, limit int) ([]*posts.BlogPost, error) {
	return s.repo.ListPublished(ctx, limit)
}

func (s *blogPostService) GetBySlug(ctx context.Context, slug string) (*posts.BlogPost, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *blogPostService) GetByID(ctx context.Context, id uint) (*posts.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *blogPostService) Update(ctx context.Context, id uint, patch *posts.BlogPostPatch) (*posts.BlogPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	patch.Apply(post, now)
	post.UpdatedAt = now

	if err := post.Validate(); err != nil {
		return nil, err
	}

	if patch.Slug != nil {
		if err := s.ensureSlugFree(ctx, post.Slug, post.ID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}

	return post, nil
}

func (s *blogPostService) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *blogPostService) UpsertBySlug(ctx context.Context, post *posts.BlogPost) (bool, error) {
	now := s.now()
	post.Normalize(now)

	existing, err := s.repo.GetBySlug(ctx, post.Slug)
	switch {
	case errors.Is(err, posts.ErrNotFound):
		if err := post.Validate(); err != nil {
			return false, err
		}
		if err := s.repo.Create(ctx, post); err != nil {
			return false, fmt.Errorf("failed to create post %s: %w", post.Slug, err)
		}
		return true, nil

	case err != nil:
		return false, err
	}

	existing.Title = post.Title
	existing.Content = post.Content
	existing.Excerpt = post.Excerpt
	existing.PublishedAt = post.PublishedAt
	existing.UpdatedAt = now

	if err := existing.Validate(); err != nil {
		return false, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return false, fmt.Errorf("failed to update post %s: %w", post.Slug, err)
	}

	*post = *existing
	return false, nil
}

// ensureSlugFree returns ErrSlugExists when a post other than selfID owns slug
func (s *blogPostService) ensureSlugFree(ctx context.Context, slug string, selfID uint) error {
	existing, err := s.repo.GetBySlug(ctx, slug)
	if errors.Is(err, posts.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return fmt.Errorf("%w: %s", posts.ErrSlugExists, slug)
	}
	return nil
}
