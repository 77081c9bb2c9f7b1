package media

import (
	"context"
	"mime/multipart"
)

// MediaService defines the image upload use case of the admin editor.
type MediaService interface {
	// Upload stores every file of form (fields "file" and "files") and returns
	// their public URLs. Nothing is stored when any file is rejected.
	Upload(ctx context.Context, form *multipart.Form) ([]*Asset, error)
}

// MediaConnector stores image bytes and returns the URL they are served from
type MediaConnector interface {
	// Upload writes data under name and returns the public URL.
	Upload(ctx context.Context, name string, data []byte, contentType string) (string, error)

	// Delete removes the object stored under name.
	Delete(ctx context.Context, name string) error
}
