//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/domain/membership"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/domain/users"
	"github.com/CariHQ/nnp-web/internal/infrastructure/persistence"
	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/testutil"
)

// TestAuthSecret signs session tokens in integration tests
const TestAuthSecret = "integration-secret-0123456789abcdef"

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	HeroImageService   heroimages.HeroImageService
	PageContentService pages.PageContentService
	BlogPostService    posts.BlogPostService
	ApplicationService membership.ApplicationService
	AuthService        users.AuthService
	SeedService        *SeedService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all database backed services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	heroImageService, err := NewHeroImageService(dbContext.HeroImageRepo, logger)
	require.NoError(t, err, "Failed to create hero image service")

	pageContentService, err := NewPageContentService(dbContext.PageRepo, logger)
	require.NoError(t, err, "Failed to create page content service")

	blogPostService, err := NewBlogPostService(dbContext.PostRepo, logger)
	require.NoError(t, err, "Failed to create blog post service")

	applicationService, err := NewApplicationService(dbContext.MembershipRepo, logger)
	require.NoError(t, err, "Failed to create membership service")

	authSettings := &config.AuthSettings{Secret: TestAuthSecret, CookieName: "auth-token", SessionTTL: 7 * 24 * time.Hour}
	authService, err := NewAuthService(dbContext.UserRepo, dbContext.SessionRepo, authSettings, logger)
	require.NoError(t, err, "Failed to create auth service")

	return &TestServices{
		HeroImageService:   heroImageService,
		PageContentService: pageContentService,
		BlogPostService:    blogPostService,
		ApplicationService: applicationService,
		AuthService:        authService,
		SeedService:        NewSeedService(authService, dbContext.UserRepo, dbContext.HeroImageRepo, dbContext.PageRepo, logger),
		DBContext:          dbContext,
	}
}
