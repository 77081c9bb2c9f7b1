package models

import (
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
)

// HeroImageModel is the GORM database model for hero images
type HeroImageModel struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	Title     string  `gorm:"not null;type:varchar(255)"`
	ImageURL  string  `gorm:"column:image_url;not null;type:text"`
	Caption   *string `gorm:"type:text"`
	Link      *string `gorm:"type:text"`
	Order     int     `gorm:"column:order;not null;index"`
	Active    bool    `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (HeroImageModel) TableName() string {
	return "hero_images"
}

// ToDomain converts GORM model to domain entity
func (m *HeroImageModel) ToDomain() *heroimages.HeroImage {
	return &heroimages.HeroImage{
		ID:        m.ID,
		Title:     m.Title,
		ImageURL:  m.ImageURL,
		Caption:   m.Caption,
		Link:      m.Link,
		Order:     m.Order,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *HeroImageModel) FromDomain(h *heroimages.HeroImage) {
	m.ID = h.ID
	m.Title = h.Title
	m.ImageURL = h.ImageURL
	m.Caption = h.Caption
	m.Link = h.Link
	m.Order = h.Order
	m.Active = h.Active
	m.CreatedAt = h.CreatedAt
	m.UpdatedAt = h.UpdatedAt
}
