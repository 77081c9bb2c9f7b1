//go:build integration
// +build integration

package persistence

import (
	"fmt"
	"strings"
	"testing"

	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/domain/membership"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/domain/payments"
	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/domain/users"
	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB             *gorm.DB
	HeroImageRepo  heroimages.HeroImageRepository
	PageRepo       pages.PageContentRepository
	PostRepo       posts.BlogPostRepository
	PaymentRepo    payments.PaymentRepository
	MembershipRepo membership.ApplicationRepository
	UserRepo       users.UserRepository
	SessionRepo    users.SessionRepository
}

// SetupTestDB opens a fresh migrated database and registers cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)
	ctx := &TestContext{DB: db}

	ctx.HeroImageRepo, err = NewGormHeroImageRepository(db, log)
	require.NoError(t, err)
	ctx.PageRepo, err = NewGormPageContentRepository(db, log)
	require.NoError(t, err)
	ctx.PostRepo, err = NewGormBlogPostRepository(db, log)
	require.NoError(t, err)
	ctx.PaymentRepo, err = NewGormPaymentRepository(db, log)
	require.NoError(t, err)
	ctx.MembershipRepo, err = NewGormMembershipRepository(db, log)
	require.NoError(t, err)
	ctx.UserRepo, err = NewGormUserRepository(db, log)
	require.NoError(t, err)
	ctx.SessionRepo, err = NewGormSessionRepository(db, log)
	require.NoError(t, err)

	return ctx
}

// CreateTestHeroImage returns an unsaved hero image
func CreateTestHeroImage(title string, order int, active bool) *heroimages.HeroImage {
	caption := "Caption for " + title
	return &heroimages.HeroImage{
		Title:    title,
		ImageURL: "/" + strings.ToLower(strings.ReplaceAll(title, " ", "-")) + ".jpg",
		Caption:  &caption,
		Order:    order,
		Active:   active,
	}
}

// CreateTestPost returns an unsaved post
func CreateTestPost(slug string, published bool) *posts.BlogPost {
	author := "New National Party"
	return &posts.BlogPost{
		Title:     "Post " + slug,
		Slug:      slug,
		Content:   "Content of " + slug,
		Author:    &author,
		Published: published,
	}
}
