package media

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Errors returned by the media service
var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file exceeds the upload limit")
	ErrNoFiles         = errors.New("no files in upload")
)

// DefaultMaxBytes is the per-file upload limit when none is configured
const DefaultMaxBytes int64 = 10 << 20

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// Asset is a stored image that can be referenced from hero images and posts
type Asset struct {
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// ContentTypeFor returns the MIME type for an allowed file name
func ContentTypeFor(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	ct, ok := contentTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
	return ct, nil
}

// CheckSize enforces maxBytes, falling back to DefaultMaxBytes when it is not positive
func CheckSize(size, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if size > maxBytes {
		return fmt.Errorf("%w: %d bytes > %d bytes", ErrTooLarge, size, maxBytes)
	}
	return nil
}
