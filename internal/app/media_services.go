package app

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CariHQ/nnp-web/internal/domain/media"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
	"github.com/CariHQ/nnp-web/internal/pkg/strutil"
)

// mediaService implements the MediaService interface
type mediaService struct {
	connector media.MediaConnector
	maxBytes  int64
	logger    logger.Logger
	now       func() time.Time
}

// NewMediaService creates a new instance of MediaService
func NewMediaService(connector media.MediaConnector, maxBytes int64, logger logger.Logger) (media.MediaService, error) {
	return &mediaService{
		connector: connector,
		maxBytes:  maxBytes,
		logger:    logger,
		now:       time.Now,
	}, nil
}

type pendingUpload struct {
	header      *multipart.FileHeader
	contentType string
}

// Upload checks every file before storing any of them. Files already stored
// are removed again when a later one fails.
func (s *mediaService) Upload(ctx context.Context, form *multipart.Form) ([]*media.Asset, error) {
	if form == nil {
		return nil, media.ErrNoFiles
	}

	headers := append(append([]*multipart.FileHeader{}, form.File["file"]...), form.File["files"]...)
	if len(headers) == 0 {
		return nil, media.ErrNoFiles
	}

	pending := make([]pendingUpload, 0, len(headers))
	for _, h := range headers {
		ct, err := media.ContentTypeFor(h.Filename)
		if err != nil {
			return nil, err
		}
		if err := media.CheckSize(h.Size, s.maxBytes); err != nil {
			return nil, err
		}
		pending = append(pending, pendingUpload{header: h, contentType: ct})
	}

	assets := make([]*media.Asset, 0, len(pending))
	for _, p := range pending {
		asset, err := s.store(ctx, p)
		if err != nil {
			s.rollback(ctx, assets)
			return nil, err
		}
		assets = append(assets, asset)
	}

	return assets, nil
}

func (s *mediaService) store(ctx context.Context, p pendingUpload) (*media.Asset, error) {
	file, err := p.header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", p.header.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p.header.Filename, err)
	}
	if err := media.CheckSize(int64(len(data)), s.maxBytes); err != nil {
		return nil, err
	}

	name := storedName(p.header.Filename)
	url, err := s.connector.Upload(ctx, name, data, p.contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store %s: %w", p.header.Filename, err)
	}

	s.logger.Info("Uploaded image ", p.header.Filename, " as ", name)
	return &media.Asset{
		Name:        name,
		URL:         url,
		ContentType: p.contentType,
		Size:        int64(len(data)),
		UploadedAt:  s.now(),
	}, nil
}

func (s *mediaService) rollback(ctx context.Context, assets []*media.Asset) {
	for _, a := range assets {
		if err := s.connector.Delete(ctx, a.Name); err != nil {
			s.logger.Warn("Failed to remove ", a.Name, " after a failed upload: ", err)
		}
	}
}

// storedName keeps a readable slug of the original name behind a uuid prefix
func storedName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strutil.Slugify(strings.TrimSuffix(filename, filepath.Ext(filename)))
	if base == "" {
		return uuid.NewString() + ext
	}
	return uuid.NewString() + "-" + strings.TrimRight(strutil.Truncate(base, 40), "-") + ext
}
