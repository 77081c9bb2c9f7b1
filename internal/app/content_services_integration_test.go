//go:build integration
// +build integration

package app

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
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

func TestHeroImageService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	services := SetupTestServices(t, config.SqliteDbType)

	first, err := services.HeroImageService.Create(ctx, &heroimages.HeroImage{Title: "Rally", ImageURL: "/images/rally.jpg", Order: 2, Active: true})
	require.NoError(t, err)
	_, err = services.HeroImageService.Create(ctx, &heroimages.HeroImage{Title: "Hidden", ImageURL: "/images/hidden.jpg", Order: 1, Active: false})
	require.NoError(t, err)

	active, err := services.HeroImageService.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Rally", active[0].Title)

	title := "Rally in St. George's"
	updated, err := services.HeroImageService.Update(ctx, first.ID, &heroimages.HeroImagePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.False(t, updated.UpdatedAt.Before(first.CreatedAt))

	require.NoError(t, services.HeroImageService.Delete(ctx, first.ID))
	_, err = services.HeroImageService.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, heroimages.ErrNotFound)
}

func TestPageContentService_ListForPage(t *testing.T) {
	ctx := context.Background()
	services := SetupTestServices(t, config.SqliteDbType)

	for i, section := range []string{"hero", "mission"} {
		_, err := services.PageContentService.Create(ctx, &pages.PageContent{
			Page:    pages.PageHome,
			Section: section,
			Content: json.RawMessage(`{"text":"` + section + `"}`),
			Order:   i,
			Active:  true,
		})
		require.NoError(t, err)
	}
	_, err := services.PageContentService.Create(ctx, &pages.PageContent{Page: pages.PageAbout, Section: "history", Content: json.RawMessage(`{}`), Active: true})
	require.NoError(t, err)

	home, err := services.PageContentService.ListForPage(ctx, pages.PageHome)
	require.NoError(t, err)
	require.Len(t, home, 2)
	assert.Equal(t, "hero", home[0].Section)
	assert.JSONEq(t, `{"text":"mission"}`, string(home[1].Content))

	all, err := services.PageContentService.List(ctx, &pages.PageContentQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBlogPostService_Integration(t *testing.T) {
	ctx := context.Background()
	services := SetupTestServices(t, config.SqliteDbType)

	post, err := services.BlogPostService.Create(ctx, &posts.BlogPost{Title: "Manifesto Launch", Content: "We launched.", Published: true})
	require.NoError(t, err)
	assert.Equal(t, "manifesto-launch", post.Slug)

	_, err = services.BlogPostService.Create(ctx, &posts.BlogPost{Title: "Manifesto Launch", Content: "Again."})
	assert.ErrorIs(t, err, posts.ErrSlugExists)

	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	created, err := services.BlogPostService.UpsertBySlug(ctx, &posts.BlogPost{Title: "Manifesto Launch", Slug: "manifesto-launch", Content: "Revised.", Published: true, PublishedAt: &date})
	require.NoError(t, err)
	assert.False(t, created)

	stored, err := services.BlogPostService.GetBySlug(ctx, "manifesto-launch")
	require.NoError(t, err)
	assert.Equal(t, "Revised.", stored.Content)
	assert.True(t, date.Equal(*stored.PublishedAt))

	published, err := services.BlogPostService.ListPublished(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, published, 1)
}

func TestApplicationService_Submit(t *testing.T) {
	ctx := context.Background()
	services := SetupTestServices(t, config.SqliteDbType)

	app, err := services.ApplicationService.Submit(ctx, &membership.Application{
		Name:                "Jane Citizen",
		Constituency:        "saint_george_north_east",
		AssistAreas:         []string{"house", "fund"},
		DeclarationAccepted: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, app.ID)

	list, err := services.ApplicationService.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"house", "fund"}, list[0].AssistAreas)
}

func TestSeedService_Idempotent(t *testing.T) {
	ctx := context.Background()
	services := SetupTestServices(t, config.SqliteDbType)
	opts := SeedOptions{AdminEmail: "admin@votenpp.com", AdminPassword: "change-me-now"}

	report, err := services.SeedService.Seed(ctx, opts)
	require.NoError(t, err)
	assert.True(t, report.AdminCreated)
	assert.Equal(t, len(defaultHeroImages()), report.HeroImagesCreated)
	assert.Equal(t, len(defaultPageContent()), report.SectionsCreated)

	again, err := services.SeedService.Seed(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, &SeedReport{}, again)

	result, err := services.AuthService.SignIn(ctx, "admin@votenpp.com", "change-me-now", users.ClientInfo{})
	require.NoError(t, err)

	claims, err := services.AuthService.Verify(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, "Admin User", claims.Name)

	require.NoError(t, services.AuthService.SignOut(ctx, result.Token))
	_, err = services.AuthService.Verify(ctx, result.Token)
	assert.ErrorIs(t, err, users.ErrUnauthorized)
}

func TestContentSyncService_Sync(t *testing.T) {
	ctx := context.Background()
	source := SetupTestServices(t, config.SqliteDbType)
	target := SetupTestServices(t, config.SqliteDbType)

	require.NoError(t, source.DBContext.HeroImageRepo.Create(ctx, persistence.CreateTestHeroImage("Rally", 1, true)))
	require.NoError(t, source.DBContext.HeroImageRepo.Create(ctx, persistence.CreateTestHeroImage("Youth", 2, true)))
	require.NoError(t, target.DBContext.HeroImageRepo.Create(ctx, persistence.CreateTestHeroImage("Rally", 1, true)))

	require.NoError(t, source.DBContext.PostRepo.Create(ctx, persistence.CreateTestPost("budget", true)))
	require.NoError(t, source.DBContext.PostRepo.Create(ctx, persistence.CreateTestPost("roads", true)))
	existing := persistence.CreateTestPost("budget", false)
	require.NoError(t, target.DBContext.PostRepo.Create(ctx, existing))

	svc := NewContentSyncService(
		ContentStore{HeroImages: source.DBContext.HeroImageRepo, Posts: source.DBContext.PostRepo},
		ContentStore{HeroImages: target.DBContext.HeroImageRepo, Posts: target.DBContext.PostRepo},
		testutil.SetupTestLogger(t),
	)

	report, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ContentSyncReport{HeroImagesCopied: 1, HeroImagesSkipped: 1, PostsCreated: 1, PostsUpdated: 1}, report)

	updated, err := target.DBContext.PostRepo.GetByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.True(t, updated.Published)

	images, err := target.DBContext.HeroImageRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, images, 2)
}
