package app

import (
	"context"
	"fmt"
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// pageContentService implements the PageContentService interface
type pageContentService struct {
	repo   pages.PageContentRepository
	logger logger.Logger
	now    func() time.Time
}

// NewPageContentService creates a new instance of PageContentService
func NewPageContentService(repo pages.PageContentRepository, logger logger.Logger) (pages.PageContentService, error) {
	return &pageContentService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (s *pageContentService) Create(ctx context.Context, content *pages.PageContent) (*pages.PageContent, error) {
	if err := content.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to create page content: %w", err)
	}

	return content, nil
}

func (s *pageContentService) List(ctx context.Context, query *pages.PageContentQuery) ([]*pages.PageContent, error) {
	if query == nil {
		query = &pages.PageContentQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, query)
}

func (s *pageContentService) ListForPage(ctx context.Context, page string) ([]*pages.PageContent, error) {
	return s.repo.ListForPage(ctx, page)
}

func (s *pageContentService) GetByID(ctx context.Context, id uint) (*pages.PageContent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *pageContentService) Update(ctx context.Context, id uint, patch *pages.PageContentPatch) (*pages.PageContent, error) {
	content, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(content)
	content.UpdatedAt = s.now()

	if err := content.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to update page content %d: %w", id, err)
	}

	return content, nil
}

func (s *pageContentService) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(ctx, id)
}
