//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CariHQ/nnp-web/internal/domain/media"
	"github.com/CariHQ/nnp-web/internal/pkg/testutil"
)

func TestMediaService_Upload(t *testing.T) {
	connector := &MockMediaConnector{}
	svc, err := NewMediaService(connector, 0, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	form := testutil.CreateForm(t, "file", map[string][]byte{"Hero Banner.JPG": []byte("jpeg bytes")})
	connector.On("Upload", mock.Anything, mock.MatchedBy(func(name string) bool {
		return strings.HasSuffix(name, "-hero-banner.jpg")
	}), []byte("jpeg bytes"), "image/jpeg").Return("/uploads/x-hero-banner.jpg", nil)

	assets, err := svc.Upload(context.Background(), form)
	require.NoError(t, err)
	require.Len(t, assets, 1)

	assert.Equal(t, "/uploads/x-hero-banner.jpg", assets[0].URL)
	assert.Equal(t, "image/jpeg", assets[0].ContentType)
	assert.Equal(t, int64(len("jpeg bytes")), assets[0].Size)
	connector.AssertExpectations(t)
}

func TestMediaService_Upload_Rejections(t *testing.T) {
	connector := &MockMediaConnector{}
	svc, err := NewMediaService(connector, 4, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Upload(ctx, nil)
	assert.ErrorIs(t, err, media.ErrNoFiles)

	_, err = svc.Upload(ctx, testutil.CreateEmptyForm())
	assert.ErrorIs(t, err, media.ErrNoFiles)

	_, err = svc.Upload(ctx, testutil.CreateForm(t, "files", map[string][]byte{"notes.txt": []byte("x")}))
	assert.ErrorIs(t, err, media.ErrUnsupportedType)

	_, err = svc.Upload(ctx, testutil.CreateForm(t, "files", map[string][]byte{"big.png": []byte("too large")}))
	assert.ErrorIs(t, err, media.ErrTooLarge)

	connector.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMediaService_Upload_RollsBackOnFailure(t *testing.T) {
	connector := &MockMediaConnector{}
	svc, err := NewMediaService(connector, 0, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	form := testutil.CreateForm(t, "files", map[string][]byte{"a.png": []byte("a"), "b.png": []byte("b")})

	connector.On("Upload", mock.Anything, mock.Anything, mock.Anything, "image/png").Return("/uploads/first.png", nil).Once()
	connector.On("Upload", mock.Anything, mock.Anything, mock.Anything, "image/png").Return("", errors.New("disk full")).Once()
	connector.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()

	_, err = svc.Upload(context.Background(), form)
	assert.ErrorContains(t, err, "disk full")
	connector.AssertExpectations(t)
}

func TestStoredName(t *testing.T) {
	assert.True(t, strings.HasSuffix(storedName("My Photo.PNG"), "-my-photo.png"))
	assert.True(t, strings.HasSuffix(storedName("!!!.gif"), ".gif"))
	assert.NotEqual(t, storedName("a.png"), storedName("a.png"))
}
