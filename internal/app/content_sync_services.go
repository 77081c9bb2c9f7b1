package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// ContentStore is one side of a content sync
type ContentStore struct {
	HeroImages heroimages.HeroImageRepository
	Posts      posts.BlogPostRepository
}

// ContentSyncReport counts the rows handled by Sync
type ContentSyncReport struct {
	HeroImagesCopied  int
	HeroImagesSkipped int
	PostsCreated      int
	PostsUpdated      int
	Errors            int
}

// ContentSyncService copies editorial content from one database to another
type ContentSyncService struct {
	source ContentStore
	target ContentStore
	logger logger.Logger
	now    func() time.Time
}

// NewContentSyncService creates a new instance of ContentSyncService
func NewContentSyncService(source, target ContentStore, logger logger.Logger) *ContentSyncService {
	return &ContentSyncService{source: source, target: target, logger: logger, now: time.Now}
}

// Sync copies hero images missing from the target (matched by title) and
// upserts every post by slug. Row level failures are counted, not returned.
func (s *ContentSyncService) Sync(ctx context.Context) (*ContentSyncReport, error) {
	report := &ContentSyncReport{}

	if err := s.syncHeroImages(ctx, report); err != nil {
		return nil, err
	}
	if err := s.syncPosts(ctx, report); err != nil {
		return nil, err
	}

	s.logger.Info("Content sync finished: ", report.HeroImagesCopied, " hero images copied, ",
		report.PostsCreated, " posts created, ", report.PostsUpdated, " posts updated, ", report.Errors, " errors")
	return report, nil
}

func (s *ContentSyncService) syncHeroImages(ctx context.Context, report *ContentSyncReport) error {
	images, err := s.source.HeroImages.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read source hero images: %w", err)
	}

	for _, image := range images {
		_, err := s.target.HeroImages.GetByTitle(ctx, image.Title)
		if err == nil {
			report.HeroImagesSkipped++
			continue
		}
		if !errors.Is(err, heroimages.ErrNotFound) {
			s.logger.Error("Failed to look up hero image ", image.Title, ": ", err)
			report.Errors++
			continue
		}

		copied := *image
		copied.ID = 0
		if err := s.target.HeroImages.Create(ctx, &copied); err != nil {
			s.logger.Error("Failed to copy hero image ", image.Title, ": ", err)
			report.Errors++
			continue
		}
		report.HeroImagesCopied++
	}
	return nil
}

func (s *ContentSyncService) syncPosts(ctx context.Context, report *ContentSyncReport) error {
	list, err := s.source.Posts.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read source posts: %w", err)
	}

	for _, post := range list {
		existing, err := s.target.Posts.GetBySlug(ctx, post.Slug)
		switch {
		case errors.Is(err, posts.ErrNotFound):
			copied := *post
			copied.ID = 0
			if err := s.target.Posts.Create(ctx, &copied); err != nil {
				s.logger.Error("Failed to copy post ", post.Slug, ": ", err)
				report.Errors++
				continue
			}
			report.PostsCreated++

		case err != nil:
			s.logger.Error("Failed to look up post ", post.Slug, ": ", err)
			report.Errors++

		default:
			existing.Title = post.Title
			existing.Content = post.Content
			existing.Excerpt = post.Excerpt
			existing.Author = post.Author
			existing.Published = post.Published
			existing.PublishedAt = post.PublishedAt
			existing.HeaderImage = post.HeaderImage
			existing.UpdatedAt = s.now()
			if err := s.target.Posts.Update(ctx, existing); err != nil {
				s.logger.Error("Failed to update post ", post.Slug, ": ", err)
				report.Errors++
				continue
			}
			report.PostsUpdated++
		}
	}
	return nil
}
