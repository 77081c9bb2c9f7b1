//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Slug  string `validate:"required,slug"`
	Image string `validate:"omitempty,imagelocation"`
}

func TestIsImageLocation(t *testing.T) {
	tests := map[string]bool{
		"/carenage.jpg":                    true,
		"/uploads/2024/hero.png":           true,
		"https://cdn.example.com/hero.jpg": true,
		"http://localhost:8080/a.png":      true,
		"//evil.example.com/a.png":         false,
		"ftp://example.com/a.png":          false,
		"carenage.jpg":                     false,
		"":                                 false,
	}

	for input, expected := range tests {
		assert.Equal(t, expected, IsImageLocation(input), input)
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{"valid", sample{Slug: "budget-2024", Image: "/hero.jpg"}, ""},
		{"valid without image", sample{Slug: "nnp"}, ""},
		{"uppercase slug", sample{Slug: "Budget-2024"}, "Field: Slug, Tag: slug"},
		{"double dash", sample{Slug: "budget--2024"}, "Field: Slug, Tag: slug"},
		{"trailing dash", sample{Slug: "budget-"}, "Field: Slug, Tag: slug"},
		{"bad image", sample{Slug: "ok", Image: "hero.jpg"}, "Field: Image, Tag: imagelocation"},
		{"missing slug", sample{}, "Field: Slug, Tag: required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
