//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/pkg/testutil"
	"github.com/CariHQ/nnp-web/internal/pkg/validators"
)

func TestHeroImageHandler_ListActive_Success(t *testing.T) {
	mockService := new(MockHeroImageService)
	handler := NewHeroImageHandler(mockService, testutil.SetupTestLogger(t))

	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	mockService.On("ListActive", mock.Anything).Return([]*heroimages.HeroImage{
		{ID: 1, Title: "Rally", ImageURL: "/rally.jpg", Order: 0, Active: true, CreatedAt: created, UpdatedAt: created},
	}, nil)

	c, w := newTestContext(http.MethodGet, "/api/hero-images", "")
	handler.ListActive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"images":[{"id":1,"title":"Rally","imageUrl":"/rally.jpg","caption":null,"link":null,"order":0,"active":true,"createdAt":"2024-05-01T00:00:00Z","updatedAt":"2024-05-01T00:00:00Z"}]}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestHeroImageHandler_ListActive_Empty(t *testing.T) {
	mockService := new(MockHeroImageService)
	handler := NewHeroImageHandler(mockService, testutil.SetupTestLogger(t))

	mockService.On("ListActive", mock.Anything).Return(nil, nil)

	c, w := newTestContext(http.MethodGet, "/api/hero-images", "")
	handler.ListActive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"images":[]}`, w.Body.String())
}

func TestHeroImageHandler_ListAll_Error(t *testing.T) {
	mockService := new(MockHeroImageService)
	handler := NewHeroImageHandler(mockService, testutil.SetupTestLogger(t))

	mockService.On("ListAll", mock.Anything).Return(nil, errors.New("database is locked"))

	c, w := newTestContext(http.MethodGet, "/api/admin/hero-images", "")
	handler.ListAll(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch images"}`, w.Body.String())
}

func TestHeroImageHandler_Create(t *testing.T) {
	t.Run("success defaults active", func(t *testing.T) {
		mockService := new(MockHeroImageService)
		handler := NewHeroImageHandler(mockService, testutil.SetupTestLogger(t))

		mockService.On("Create", mock.Anything, mock.MatchedBy(func(h *heroimages.HeroImage) bool {
			return h.Title == "Rally" && h.ImageURL == "/rally.jpg" && h.Active
		})).Return(&heroimages.HeroImage{ID: 7, Title: "Rally", ImageURL: "/rally.jpg", Active: true}, nil)

		c, w := newTestContext(http.MethodPost, "/api/admin/hero-images", `{"title":"Rally","imageUrl":"/rally.jpg"}`)
		handler.Create(c)

		assert.Equal(t, http.StatusOK, w.Code)
		image := decodeBody(t, w)["image"].(map[string]any)
		assert.Equal(t, float64(7), image["id"])
		mockService.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		mockService := new(MockHeroImageService)
		handler := NewHeroImageHandler(mockService, testutil.SetupTestLogger(t))

		mockService.On("Create", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: [Field: ImageURL, Tag: imagelocation]", validators.ErrValidation))

		c, w := newTestContext(http.MethodPost, "/api/admin/hero-images", `{"title":"Rally","imageUrl":"rally"}`)
		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ImageURL")
	})

	t.Run("invalid body", func(t *testing.T) {
		mockService := new(MockHeroImageService)
		handler := NewHeroImageHandler(mockService, testutil.SetupTestLogger(t))

		c, w := newTestContext(http.MethodPost, "/api/admin/hero-images", `{"title":`)
		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestHeroImageHandler_Update(t *testing.T) {
	mockService := new(MockHeroImageService)
	handler := NewHeroImageHandler(mockService, testutil.SetupTestLogger(t))

	mockService.On("Update", mock.Anything, uint(3), mock.MatchedBy(func(p *heroimages.HeroImagePatch) bool {
		return p.Active != nil && !*p.Active && p.Title == nil
	})).Return(&heroimages.HeroImage{ID: 3}, nil)

	c, w := newTestContext(http.MethodPatch, "/api/admin/hero-images/3", `{"active":false}`)
	withID(c, "3")
	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestHeroImageHandler_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockService := new(MockHeroImageService)
		handler := NewHeroImageHandler(mockService, testutil.SetupTestLogger(t))

		mockService.On("Delete", mock.Anything, uint(9)).Return(heroimages.ErrNotFound)

		c, w := newTestContext(http.MethodDelete, "/api/admin/hero-images/9", "")
		withID(c, "9")
		handler.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		mockService := new(MockHeroImageService)
		handler := NewHeroImageHandler(mockService, testutil.SetupTestLogger(t))

		c, w := newTestContext(http.MethodDelete, "/api/admin/hero-images/abc", "")
		withID(c, "abc")
		handler.Delete(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid id"}`, w.Body.String())
	})
}
