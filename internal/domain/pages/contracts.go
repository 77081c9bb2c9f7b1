package pages

import "context"

// PageContentService defines the use cases for editable page sections.
type PageContentService interface {
	// Create validates and stores a new section.
	Create(ctx context.Context, content *PageContent) (*PageContent, error)

	// List returns all sections ordered by Order descending, or only the
	// active sections of query.Page when it is set.
	List(ctx context.Context, query *PageContentQuery) ([]*PageContent, error)

	// ListForPage returns the active sections of page ordered by Order ascending.
	ListForPage(ctx context.Context, page string) ([]*PageContent, error)

	// GetByID returns ErrNotFound when the id is unknown.
	GetByID(ctx context.Context, id uint) (*PageContent, error)

	// Update applies patch and bumps UpdatedAt.
	Update(ctx context.Context, id uint, patch *PageContentPatch) (*PageContent, error)

	// Delete removes the section.
	Delete(ctx context.Context, id uint) error
}

// PageContentRepository defines the persistence operations for page sections
type PageContentRepository interface {
	Create(ctx context.Context, content *PageContent) error
	List(ctx context.Context, query *PageContentQuery) ([]*PageContent, error)
	ListForPage(ctx context.Context, page string) ([]*PageContent, error)
	GetByID(ctx context.Context, id uint) (*PageContent, error)
	Update(ctx context.Context, content *PageContent) error
	DeleteByID(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
