//go:build unit
// +build unit

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/pkg/testutil"
)

func newTestBlogPostService(t *testing.T, repo *MockBlogPostRepository, now time.Time) *blogPostService {
	t.Helper()
	svc, err := NewBlogPostService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	s := svc.(*blogPostService)
	s.now = func() time.Time { return now }
	return s
}

func TestBlogPostService_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

	t.Run("derives slug excerpt and publication time", func(t *testing.T) {
		repo := &MockBlogPostRepository{}
		svc := newTestBlogPostService(t, repo, now)

		repo.On("GetBySlug", ctx, "a-new-direction-for-grenada").Return(nil, posts.ErrNotFound)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		post, err := svc.Create(ctx, &posts.BlogPost{
			Title:     "A New Direction for Grenada!",
			Content:   "We will fix the roads.",
			Published: true,
		})
		require.NoError(t, err)

		assert.Equal(t, "a-new-direction-for-grenada", post.Slug)
		assert.Equal(t, "We will fix the roads.", *post.Excerpt)
		assert.Equal(t, now, *post.PublishedAt)
	})

	t.Run("slug taken", func(t *testing.T) {
		repo := &MockBlogPostRepository{}
		svc := newTestBlogPostService(t, repo, now)

		repo.On("GetBySlug", ctx, "taken").Return(&posts.BlogPost{ID: 9, Slug: "taken"}, nil)

		_, err := svc.Create(ctx, &posts.BlogPost{Title: "Taken", Slug: "taken", Content: "c"})
		assert.ErrorIs(t, err, posts.ErrSlugExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid post", func(t *testing.T) {
		repo := &MockBlogPostRepository{}
		svc := newTestBlogPostService(t, repo, now)

		_, err := svc.Create(ctx, &posts.BlogPost{Title: "No content"})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "GetBySlug", mock.Anything, mock.Anything)
	})
}

func TestBlogPostService_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)

	repo := &MockBlogPostRepository{}
	svc := newTestBlogPostService(t, repo, now)

	existing := &posts.BlogPost{ID: 3, Title: "Draft", Slug: "draft", Content: "body"}
	repo.On("GetByID", ctx, uint(3)).Return(existing, nil)
	repo.On("GetBySlug", ctx, "final").Return(nil, posts.ErrNotFound)
	repo.On("Update", ctx, existing).Return(nil)

	slug := "final"
	published := true
	post, err := svc.Update(ctx, 3, &posts.BlogPostPatch{Slug: &slug, Published: &published})
	require.NoError(t, err)

	assert.Equal(t, "final", post.Slug)
	assert.True(t, post.Published)
	assert.Equal(t, now, *post.PublishedAt)
	assert.Equal(t, now, post.UpdatedAt)
}

func TestBlogPostService_UpsertBySlug(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC)
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	t.Run("creates", func(t *testing.T) {
		repo := &MockBlogPostRepository{}
		svc := newTestBlogPostService(t, repo, now)

		repo.On("GetBySlug", ctx, "budget").Return(nil, posts.ErrNotFound)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		created, err := svc.UpsertBySlug(ctx, &posts.BlogPost{Title: "Budget", Slug: "budget", Content: "c", Published: true, PublishedAt: &date})
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("updates in place", func(t *testing.T) {
		repo := &MockBlogPostRepository{}
		svc := newTestBlogPostService(t, repo, now)

		header := "/uploads/a.png"
		existing := &posts.BlogPost{ID: 5, Title: "Old", Slug: "budget", Content: "old", HeaderImage: &header, Published: true}
		repo.On("GetBySlug", ctx, "budget").Return(existing, nil)
		repo.On("Update", ctx, existing).Return(nil)

		incoming := &posts.BlogPost{Title: "Budget", Slug: "budget", Content: "new", Published: true, PublishedAt: &date}
		created, err := svc.UpsertBySlug(ctx, incoming)
		require.NoError(t, err)
		assert.False(t, created)

		assert.Equal(t, uint(5), incoming.ID)
		assert.Equal(t, "Budget", existing.Title)
		assert.Equal(t, "new", existing.Content)
		assert.Equal(t, "new", *existing.Excerpt)
		assert.Equal(t, date, *existing.PublishedAt)
		assert.Equal(t, &header, existing.HeaderImage)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
