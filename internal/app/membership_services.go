package app

import (
	"context"
	"fmt"

	"github.com/CariHQ/nnp-web/internal/domain/membership"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// applicationService implements the ApplicationService interface
type applicationService struct {
	repo   membership.ApplicationRepository
	logger logger.Logger
}

// NewApplicationService creates a new instance of ApplicationService
func NewApplicationService(repo membership.ApplicationRepository, logger logger.Logger) (membership.ApplicationService, error) {
	return &applicationService{repo: repo, logger: logger}, nil
}

func (s *applicationService) Submit(ctx context.Context, application *membership.Application) (*membership.Application, error) {
	if err := application.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("failed to store membership application: %w", err)
	}

	s.logger.Info("Membership application received for constituency ", application.ConstituencyLabel())
	return application, nil
}

func (s *applicationService) List(ctx context.Context) ([]*membership.Application, error) {
	return s.repo.List(ctx)
}
