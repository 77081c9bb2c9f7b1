// Package pressimport turns a folder of press release scans and PDFs into blog
// posts. This package holds the file-name and text heuristics; the import run
// itself lives in the app layer.
package pressimport

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/CariHQ/nnp-web/internal/pkg/strutil"
)

// DefaultAuthor is stored on every imported release
const DefaultAuthor = "New National Party"

// MinCleanLength is the shortest extracted text worth sending to the cleaner
const MinCleanLength = 100

// Kind of source file
type Kind int

// Supported source kinds
const (
	KindUnsupported Kind = iota
	KindPDF
	KindImage
)

// KindOf classifies a file by extension
func KindOf(filename string) Kind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF
	case ".png", ".jpg", ".jpeg":
		return KindImage
	default:
		return KindUnsupported
	}
}

var (
	extensionSuffix = regexp.MustCompile(`(?i)\.(pdf|png|jpg|jpeg)$`)
	nnpPrefix       = regexp.MustCompile(`(?i)^NNP\s+`)
	partyPrefix     = regexp.MustCompile(`(?i)^New National Party\s+`)
	copySuffix      = regexp.MustCompile(`\s*\(1\)$`)
)

// TitleFromFilename strips the extension, the party prefixes and a trailing " (1)".
func TitleFromFilename(filename string) string {
	title := extensionSuffix.ReplaceAllString(filename, "")
	title = nnpPrefix.ReplaceAllString(title, "")
	title = partyPrefix.ReplaceAllString(title, "")
	title = copySuffix.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

// PDFExtractionFailed is stored when a PDF has no text layer and OCR is unavailable
func PDFExtractionFailed(filename string) string {
	return fmt.Sprintf("Press release PDF: %s. Text extraction failed.", filename)
}

// PDFExtractionAndOCRFailed is used when the OCR fallback also produced nothing
func PDFExtractionAndOCRFailed(filename string) string {
	return fmt.Sprintf("Press release PDF: %s. Text extraction and OCR failed.", filename)
}

// ImageOCRUnavailable is used when no OCR engine is installed
func ImageOCRUnavailable(filename string) string {
	return fmt.Sprintf("Press release image: %s. OCR not available.", filename)
}

// ImageOCREmpty is used when OCR ran but found no text
func ImageOCREmpty(filename string) string {
	return fmt.Sprintf("Press release image: %s. OCR did not extract text from image.", filename)
}

// ImageOCRFailed is used when the OCR engine returned an error
func ImageOCRFailed(filename string, err error) string {
	return fmt.Sprintf("Press release image: %s. OCR failed: %v", filename, err)
}

// IsPlaceholder reports whether content is one of the failure placeholders
func IsPlaceholder(content string) bool {
	for _, marker := range []string{"Text extraction failed", "Text extraction and OCR failed", "OCR not available", "OCR did not extract", "OCR failed:"} {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

// ShouldClean reports whether extracted text is real content long enough to clean
func ShouldClean(content string) bool {
	return len(strings.TrimSpace(content)) > MinCleanLength && !IsPlaceholder(content)
}

// Release is one press release file ready to be stored
type Release struct {
	FileName string
	Path     string
	Title    string
	Slug     string
	Content  string
	// Date is nil when no valid date was found in the name or the text
	Date    *time.Time
	ModTime time.Time
}

// NewRelease derives title and slug from the file name
func NewRelease(path string, modTime time.Time) *Release {
	name := filepath.Base(path)
	title := TitleFromFilename(name)
	return &Release{
		FileName: name,
		Path:     path,
		Title:    title,
		Slug:     strutil.Slugify(title),
		ModTime:  modTime,
	}
}

// PublishedAt resolves the publication time: the found date, else the file
// modification time, else now.
func (r *Release) PublishedAt(now time.Time) time.Time {
	if r.Date != nil && IsValidDate(*r.Date) {
		return *r.Date
	}
	if !r.ModTime.IsZero() {
		return r.ModTime
	}
	return now
}

// SortReleases orders dated releases first by date ascending, then the undated
// ones by file name.
func SortReleases(releases []*Release) {
	sort.SliceStable(releases, func(i, j int) bool {
		a, b := releases[i], releases[j]
		switch {
		case a.Date != nil && b.Date != nil:
			if a.Date.Equal(*b.Date) {
				return a.FileName < b.FileName
			}
			return a.Date.Before(*b.Date)
		case a.Date != nil:
			return true
		case b.Date != nil:
			return false
		default:
			return a.FileName < b.FileName
		}
	})
}

// Report summarises an import run
type Report struct {
	Found   int
	Created int
	Updated int
	Failed  int
}
