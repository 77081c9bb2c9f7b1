package models

import (
	"encoding/json"
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/pages"
)

// PageContentModel is the GORM database model for page sections.
// Content is stored as JSON text.
type PageContentModel struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	Page      string  `gorm:"not null;type:varchar(100);index"`
	Section   string  `gorm:"not null;type:varchar(100)"`
	Title     *string `gorm:"type:varchar(255)"`
	Content   string  `gorm:"not null;type:text"`
	Order     int     `gorm:"column:order;not null"`
	Active    bool    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (PageContentModel) TableName() string {
	return "page_content"
}

// ToDomain converts GORM model to domain entity
func (m *PageContentModel) ToDomain() *pages.PageContent {
	return &pages.PageContent{
		ID:        m.ID,
		Page:      m.Page,
		Section:   m.Section,
		Title:     m.Title,
		Content:   json.RawMessage(m.Content),
		Order:     m.Order,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PageContentModel) FromDomain(p *pages.PageContent) {
	m.ID = p.ID
	m.Page = p.Page
	m.Section = p.Section
	m.Title = p.Title
	m.Content = string(p.Content)
	m.Order = p.Order
	m.Active = p.Active
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
