package connector

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// LocalMediaConnector stores images in a directory served by the web server
type LocalMediaConnector struct {
	directory  string
	publicPath string
	logger     logger.Logger
}

// NewLocalMediaConnector creates the upload directory if needed
func NewLocalMediaConnector(settings *config.MediaSettings, logger logger.Logger) (*LocalMediaConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(settings.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory %s: %w", settings.Directory, err)
	}

	return &LocalMediaConnector{
		directory:  settings.Directory,
		publicPath: "/" + strings.Trim(settings.PublicPath, "/"),
		logger:     logger,
	}, nil
}

// Upload writes data to the media directory and returns its public path
func (c *LocalMediaConnector) Upload(_ context.Context, name string, data []byte, _ string) (string, error) {
	target, err := c.resolve(name)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	c.logger.Info("Stored media file ", name)
	return path.Join(c.publicPath, name), nil
}

// Delete removes a stored file. Missing files are not an error.
func (c *LocalMediaConnector) Delete(_ context.Context, name string) error {
	target, err := c.resolve(name)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}

	c.logger.Info("Deleted media file ", name)
	return nil
}

func (c *LocalMediaConnector) resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid media file name %q", name)
	}
	return filepath.Join(c.directory, name), nil
}
