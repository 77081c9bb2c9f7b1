//go:build unit
// +build unit

package connector

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/testutil"
)

func newLocalSettings(t *testing.T) *config.MediaSettings {
	return &config.MediaSettings{
		Provider:   config.LocalMediaProvider,
		Directory:  filepath.Join(t.TempDir(), "uploads"),
		PublicPath: "/uploads/",
	}
}

func TestLocalMediaConnector_UploadAndDelete(t *testing.T) {
	settings := newLocalSettings(t)
	c, err := NewLocalMediaConnector(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	ctx := context.Background()
	url, err := c.Upload(ctx, "hero-1.jpg", []byte("jpeg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/hero-1.jpg", url)

	data, err := os.ReadFile(filepath.Join(settings.Directory, "hero-1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)

	require.NoError(t, c.Delete(ctx, "hero-1.jpg"))
	_, err = os.Stat(filepath.Join(settings.Directory, "hero-1.jpg"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, c.Delete(ctx, "hero-1.jpg"))
}

func TestLocalMediaConnector_RejectsPaths(t *testing.T) {
	c, err := NewLocalMediaConnector(newLocalSettings(t), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	for _, name := range []string{"", "..", "../escape.jpg", "nested/file.jpg"} {
		_, err := c.Upload(context.Background(), name, []byte("x"), "image/jpeg")
		assert.Error(t, err, name)
	}
}

func TestNewMediaConnector(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	c, err := NewMediaConnector(context.Background(), newLocalSettings(t), log)
	require.NoError(t, err)
	assert.IsType(t, &LocalMediaConnector{}, c)

	_, err = NewMediaConnector(context.Background(), &config.MediaSettings{Provider: "s3"}, log)
	assert.Error(t, err)

	_, err = NewMediaConnector(context.Background(), &config.MediaSettings{Provider: config.AzureMediaProvider, ContainerName: "media"}, log)
	assert.Error(t, err)
}
