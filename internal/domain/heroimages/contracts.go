package heroimages

import "context"

// HeroImageService defines the use cases behind the carousel editor and the home page.
type HeroImageService interface {
	// Create validates and stores a new hero image.
	Create(ctx context.Context, image *HeroImage) (*HeroImage, error)

	// ListAll returns every hero image ordered by Order descending.
	ListAll(ctx context.Context) ([]*HeroImage, error)

	// ListActive returns the active hero images ordered by Order ascending.
	ListActive(ctx context.Context) ([]*HeroImage, error)

	// GetByID returns ErrNotFound when the id is unknown.
	GetByID(ctx context.Context, id uint) (*HeroImage, error)

	// Update applies patch and bumps UpdatedAt.
	Update(ctx context.Context, id uint, patch *HeroImagePatch) (*HeroImage, error)

	// Delete removes the hero image.
	Delete(ctx context.Context, id uint) error
}

// HeroImageRepository defines the persistence operations for hero images
type HeroImageRepository interface {
	Create(ctx context.Context, image *HeroImage) error
	ListAll(ctx context.Context) ([]*HeroImage, error)
	ListActive(ctx context.Context) ([]*HeroImage, error)
	GetByID(ctx context.Context, id uint) (*HeroImage, error)
	GetByTitle(ctx context.Context, title string) (*HeroImage, error)
	Update(ctx context.Context, image *HeroImage) error
	DeleteByID(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
