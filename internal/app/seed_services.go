package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/domain/users"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// SeedOptions names the admin account created by Seed. An empty password skips it.
type SeedOptions struct {
	AdminEmail    string
	AdminName     string
	AdminPassword string
}

// SeedReport lists what Seed inserted
type SeedReport struct {
	AdminCreated      bool
	HeroImagesCreated int
	SectionsCreated   int
}

// SeedService fills an empty database with the admin user and starter content
type SeedService struct {
	auth   users.AuthService
	users  users.UserRepository
	heroes heroimages.HeroImageRepository
	pages  pages.PageContentRepository
	logger logger.Logger
}

// NewSeedService creates a new instance of SeedService
func NewSeedService(auth users.AuthService, userRepo users.UserRepository, heroRepo heroimages.HeroImageRepository, pageRepo pages.PageContentRepository, logger logger.Logger) *SeedService {
	return &SeedService{
		auth:   auth,
		users:  userRepo,
		heroes: heroRepo,
		pages:  pageRepo,
		logger: logger,
	}
}

// Seed is idempotent: existing admin, hero images or page sections are left alone
func (s *SeedService) Seed(ctx context.Context, opts SeedOptions) (*SeedReport, error) {
	report := &SeedReport{}

	if err := s.seedAdmin(ctx, opts, report); err != nil {
		return nil, err
	}

	count, err := s.heroes.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		for _, image := range defaultHeroImages() {
			if err := s.heroes.Create(ctx, image); err != nil {
				return nil, fmt.Errorf("failed to seed hero image %q: %w", image.Title, err)
			}
			report.HeroImagesCreated++
		}
		s.logger.Info("Sample hero images created")
	} else {
		s.logger.Info("Hero images already exist")
	}

	count, err = s.pages.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		for _, section := range defaultPageContent() {
			if err := s.pages.Create(ctx, section); err != nil {
				return nil, fmt.Errorf("failed to seed section %s/%s: %w", section.Page, section.Section, err)
			}
			report.SectionsCreated++
		}
		s.logger.Info("Page content seeded")
	} else {
		s.logger.Info("Page content already exists")
	}

	return report, nil
}

func (s *SeedService) seedAdmin(ctx context.Context, opts SeedOptions, report *SeedReport) error {
	if opts.AdminEmail == "" || opts.AdminPassword == "" {
		s.logger.Warn("No admin credentials given, skipping admin user")
		return nil
	}

	_, err := s.users.GetByEmail(ctx, opts.AdminEmail)
	if err == nil {
		s.logger.Info("Admin user already exists")
		return nil
	}
	if !errors.Is(err, users.ErrNotFound) {
		return err
	}

	name := opts.AdminName
	if name == "" {
		name = "Admin User"
	}

	if _, err := s.auth.CreateAdmin(ctx, opts.AdminEmail, name, opts.AdminPassword); err != nil {
		return err
	}
	report.AdminCreated = true
	return nil
}
