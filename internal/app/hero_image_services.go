package app

import (
	"context"
	"fmt"
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// heroImageService implements the HeroImageService interface
type heroImageService struct {
	repo   heroimages.HeroImageRepository
	logger logger.Logger
	now    func() time.Time
}

// NewHeroImageService creates a new instance of HeroImageService
func NewHeroImageService(repo heroimages.HeroImageRepository, logger logger.Logger) (heroimages.HeroImageService, error) {
	return &heroImageService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (s *heroImageService) Create(ctx context.Context, image *heroimages.HeroImage) (*heroimages.HeroImage, error) {
	if err := image.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to create hero image: %w", err)
	}

	return image, nil
}

func (s *heroImageService) ListAll(ctx context.Context) ([]*heroimages.HeroImage, error) {
	return s.repo.ListAll(ctx)
}

func (s *heroImageService) ListActive(ctx context.Context) ([]*heroimages.HeroImage, error) {
	return s.repo.ListActive(ctx)
}

func (s *heroImageService) GetByID(ctx context.Context, id uint) (*heroimages.HeroImage, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *heroImageService) Update(ctx context.Context, id uint, patch *heroimages.HeroImagePatch) (*heroimages.HeroImage, error) {
	image, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(image)
	image.UpdatedAt = s.now()

	if err := image.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to update hero image %d: %w", id, err)
	}

	return image, nil
}

func (s *heroImageService) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(ctx, id)
}
