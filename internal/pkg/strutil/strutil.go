// Package strutil has the small text helpers used for slugs and excerpts.
package strutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxSlugLength is the longest slug Slugify produces
const MaxSlugLength = 100

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s, turns every run of characters outside [a-z0-9] into a
// single dash, trims dashes at both ends and cuts the result to MaxSlugLength.
func Slugify(s string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], "-")
	}
	return slug
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// Ptr returns nil for an empty (after trimming) string and a pointer to the
// trimmed value otherwise.
func Ptr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
