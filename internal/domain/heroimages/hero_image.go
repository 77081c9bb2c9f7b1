package heroimages

import (
	"errors"
	"time"

	"github.com/CariHQ/nnp-web/internal/pkg/validators"
)

// ErrNotFound is returned when no hero image has the requested id
var ErrNotFound = errors.New("hero image not found")

// HeroImage is a slide in the home page carousel
type HeroImage struct {
	ID        uint
	Title     string  `validate:"required,min=1,max=255"`
	ImageURL  string  `validate:"required,imagelocation"`
	Caption   *string `validate:"omitempty,max=1000"`
	Link      *string `validate:"omitempty,max=2048"`
	Order     int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate for validating HeroImage struct
func (h *HeroImage) Validate() error {
	return validators.ValidateStruct(h)
}

// HeroImagePatch carries the fields of a partial update. Nil means unchanged.
type HeroImagePatch struct {
	Title    *string
	ImageURL *string
	Caption  *string
	Link     *string
	Order    *int
	Active   *bool
}

// Apply copies every set field onto h
func (p *HeroImagePatch) Apply(h *HeroImage) {
	if p.Title != nil {
		h.Title = *p.Title
	}
	if p.ImageURL != nil {
		h.ImageURL = *p.ImageURL
	}
	if p.Caption != nil {
		h.Caption = p.Caption
	}
	if p.Link != nil {
		h.Link = p.Link
	}
	if p.Order != nil {
		h.Order = *p.Order
	}
	if p.Active != nil {
		h.Active = *p.Active
	}
}
