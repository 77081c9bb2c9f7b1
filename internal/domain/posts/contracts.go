package posts

import "context"

// BlogPostService defines the use cases for blog posts and press releases.
type BlogPostService interface {
	// Create normalizes and stores a new post. ErrSlugExists when the slug is taken.
	Create(ctx context.Context, post *BlogPost) (*BlogPost, error)

	// ListAll returns every post, newest first.
	ListAll(ctx context.Context) ([]*BlogPost, error)

	// ListPublished returns published posts by publication time descending.
	// A limit of zero returns all of them.
	ListPublished(ctx context.Context, limit int) ([]*BlogPost, error)

	// GetBySlug returns the post with slug or ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)

	// GetByID returns ErrNotFound when the id is unknown.
	GetByID(ctx context.Context, id uint) (*BlogPost, error)

	// Update applies patch and bumps UpdatedAt.
	Update(ctx context.Context, id uint, patch *BlogPostPatch) (*BlogPost, error)

	// Delete removes the post.
	Delete(ctx context.Context, id uint) error

	// UpsertBySlug updates title, content, excerpt and publication time of the
	// post with the same slug, or inserts post when none exists. It reports
	// whether a new row was created.
	UpsertBySlug(ctx context.Context, post *BlogPost) (bool, error)
}

// BlogPostRepository defines the persistence operations for posts
type BlogPostRepository interface {
	Create(ctx context.Context, post *BlogPost) error
	ListAll(ctx context.Context) ([]*BlogPost, error)
	ListPublished(ctx context.Context, limit int) ([]*BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	GetByID(ctx context.Context, id uint) (*BlogPost, error)
	Update(ctx context.Context, post *BlogPost) error
	DeleteByID(ctx context.Context, id uint) error
}
