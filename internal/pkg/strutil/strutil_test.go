//go:build unit
// +build unit

package strutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"NNP Statement on the 2024 Budget", "nnp-statement-on-the-2024-budget"},
		{"  Leading & trailing!! ", "leading-trailing"},
		{"Grenada's Future: Jobs, Health & Youth", "grenada-s-future-jobs-health-youth"},
		{"Élection Générale", "lection-g-n-rale"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.input), tt.input)
	}
}

func TestSlugify_MaxLength(t *testing.T) {
	slug := Slugify(strings.Repeat("word ", 40))

	assert.LessOrEqual(t, len(slug), MaxSlugLength)
	assert.False(t, strings.HasSuffix(slug, "-"))
	assert.True(t, strings.HasPrefix(slug, "word-word"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 200))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "né", Truncate("née", 2))
}

func TestPtrAndDeref(t *testing.T) {
	assert.Nil(t, Ptr("   "))
	assert.Equal(t, "caption", *Ptr(" caption "))
	assert.Equal(t, "", Deref(nil))
	assert.Equal(t, "x", Deref(Ptr("x")))
}
