package pages

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/CariHQ/nnp-web/internal/pkg/validators"
)

// ErrNotFound is returned when no page section has the requested id
var ErrNotFound = errors.New("page content not found")

// Well known pages rendered by the site
const (
	PageHome  = "home"
	PageAbout = "about"
)

// PageContent is one editable section of a site page. Content is an arbitrary
// JSON object whose shape depends on the section (paragraphs, leaders, policies, text).
type PageContent struct {
	ID        uint
	Page      string  `validate:"required,min=1,max=100"`
	Section   string  `validate:"required,min=1,max=100"`
	Title     *string `validate:"omitempty,max=255"`
	Content   json.RawMessage
	Order     int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate for validating PageContent struct
func (p *PageContent) Validate() error {
	if err := validators.ValidateStruct(p); err != nil {
		return err
	}
	return ValidateContent(p.Content)
}

// ValidateContent requires a JSON object
func ValidateContent(content json.RawMessage) error {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return fmt.Errorf("validation failed: [Field: Content, Tag: required]")
	}
	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return fmt.Errorf("validation failed: [Field: Content, Tag: object]")
	}
	return nil
}

// Fields decodes Content into a map for rendering
func (p *PageContent) Fields() (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if len(p.Content) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(p.Content, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode content of %s/%s: %w", p.Page, p.Section, err)
	}
	return fields, nil
}

// PageContentQuery filters the admin listing. An empty Page lists everything.
type PageContentQuery struct {
	Page string `validate:"omitempty,max=100"`
}

// Validate for validating PageContentQuery struct
func (q *PageContentQuery) Validate() error {
	return validators.ValidateStruct(q)
}

// PageContentPatch carries the fields of a partial update. Nil means unchanged.
type PageContentPatch struct {
	Page    *string
	Section *string
	Title   *string
	Content json.RawMessage
	Order   *int
	Active  *bool
}

// Apply copies every set field onto p
func (patch *PageContentPatch) Apply(p *PageContent) {
	if patch.Page != nil {
		p.Page = *patch.Page
	}
	if patch.Section != nil {
		p.Section = *patch.Section
	}
	if patch.Title != nil {
		p.Title = patch.Title
	}
	if len(patch.Content) > 0 {
		p.Content = patch.Content
	}
	if patch.Order != nil {
		p.Order = *patch.Order
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}
}

// BySection indexes sections by name, keeping the first one seen.
func BySection(sections []*PageContent) map[string]*PageContent {
	index := make(map[string]*PageContent, len(sections))
	for _, s := range sections {
		if _, ok := index[s.Section]; !ok {
			index[s.Section] = s
		}
	}
	return index
}
