package posts

import (
	"errors"
	"time"

	"github.com/CariHQ/nnp-web/internal/pkg/strutil"
	"github.com/CariHQ/nnp-web/internal/pkg/validators"
)

// Errors returned by the post service
var (
	ErrNotFound   = errors.New("Post not found")
	ErrSlugExists = errors.New("a post with this slug already exists")
)

// ExcerptLength is the number of characters copied from the content when no excerpt is given
const ExcerptLength = 200

// BlogPost is a blog entry or press release
type BlogPost struct {
	ID          uint
	Title       string  `validate:"required,min=1,max=500"`
	Slug        string  `validate:"required,max=100,slug"`
	Content     string  `validate:"required"`
	Excerpt     *string `validate:"omitempty,max=1000"`
	HeaderImage *string `validate:"omitempty,imagelocation"`
	Author      *string `validate:"omitempty,max=255"`
	Published   bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate for validating BlogPost struct
func (p *BlogPost) Validate() error {
	return validators.ValidateStruct(p)
}

// Normalize fills the slug, excerpt and publication time the way the editor expects:
// a missing slug is derived from the title, a missing excerpt from the content,
// and a published post without a date is dated now.
func (p *BlogPost) Normalize(now time.Time) {
	if p.Slug == "" {
		p.Slug = strutil.Slugify(p.Title)
	}
	if p.Excerpt == nil && p.Content != "" {
		p.Excerpt = strutil.Ptr(DefaultExcerpt(p.Content))
	}
	if p.Published && p.PublishedAt == nil {
		p.PublishedAt = &now
	}
}

// DefaultExcerpt returns the first ExcerptLength characters of content
func DefaultExcerpt(content string) string {
	return strutil.Truncate(content, ExcerptLength)
}

// BlogPostPatch carries the fields of a partial update. Nil means unchanged.
type BlogPostPatch struct {
	Title       *string
	Slug        *string
	Content     *string
	Excerpt     *string
	HeaderImage *string
	Author      *string
	Published   *bool
	PublishedAt *time.Time
}

// Apply copies every set field onto p. Publishing a post that has no
// publication time stamps it with now.
func (patch *BlogPostPatch) Apply(p *BlogPost, now time.Time) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		p.Excerpt = patch.Excerpt
	}
	if patch.HeaderImage != nil {
		p.HeaderImage = patch.HeaderImage
	}
	if patch.Author != nil {
		p.Author = patch.Author
	}
	if patch.PublishedAt != nil {
		p.PublishedAt = patch.PublishedAt
	}
	if patch.Published != nil {
		p.Published = *patch.Published
		if p.Published && p.PublishedAt == nil {
			p.PublishedAt = &now
		}
	}
}
