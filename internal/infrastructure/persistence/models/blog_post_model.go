package models

import (
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/posts"
)

// BlogPostModel is the GORM database model for blog posts and press releases
type BlogPostModel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"not null;type:varchar(500)"`
	Slug        string  `gorm:"not null;uniqueIndex;type:varchar(100)"`
	Content     string  `gorm:"not null;type:text"`
	Excerpt     *string `gorm:"type:text"`
	HeaderImage *string `gorm:"column:header_image;type:text"`
	Author      *string `gorm:"type:varchar(255)"`
	Published   bool    `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// ToDomain converts GORM model to domain entity
func (m *BlogPostModel) ToDomain() *posts.BlogPost {
	return &posts.BlogPost{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Content:     m.Content,
		Excerpt:     m.Excerpt,
		HeaderImage: m.HeaderImage,
		Author:      m.Author,
		Published:   m.Published,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BlogPostModel) FromDomain(p *posts.BlogPost) {
	m.ID = p.ID
	m.Title = p.Title
	m.Slug = p.Slug
	m.Content = p.Content
	m.Excerpt = p.Excerpt
	m.HeaderImage = p.HeaderImage
	m.Author = p.Author
	m.Published = p.Published
	m.PublishedAt = p.PublishedAt
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
