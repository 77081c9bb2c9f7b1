package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// HeroImageHandler defines the interface for handling hero image operations
type HeroImageHandler interface {
	ListActive(ctx *gin.Context)
	ListAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

// heroImageHandler struct holds the services
type heroImageHandler struct {
	heroImageService heroimages.HeroImageService
	logger           logger.Logger
}

// NewHeroImageHandler creates a new HeroImageHandler
func NewHeroImageHandler(heroImageService heroimages.HeroImageService, logger logger.Logger) HeroImageHandler {
	return &heroImageHandler{
		heroImageService: heroImageService,
		logger:           logger,
	}
}

// ListActive returns the carousel slides shown on the home page
func (handler *heroImageHandler) ListActive(ctx *gin.Context) {
	images, err := handler.heroImageService.ListActive(ctx)
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to fetch hero images")
		return
	}
	ctx.JSON(http.StatusOK, HeroImageListResponse{Images: NewHeroImageResponses(images)})
}

// ListAll returns every hero image for the admin list
func (handler *heroImageHandler) ListAll(ctx *gin.Context) {
	images, err := handler.heroImageService.ListAll(ctx)
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to fetch images")
		return
	}
	ctx.JSON(http.StatusOK, HeroImageListResponse{Images: NewHeroImageResponses(images)})
}

func (handler *heroImageHandler) Create(ctx *gin.Context) {
	var request CreateHeroImageRequest
	if !bindJSON(ctx, &request) {
		return
	}

	image, err := handler.heroImageService.Create(ctx, request.ToDomain())
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to create image")
		return
	}
	ctx.JSON(http.StatusOK, HeroImageItemResponse{Image: NewHeroImageResponse(image)})
}

func (handler *heroImageHandler) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var request UpdateHeroImageRequest
	if !bindJSON(ctx, &request) {
		return
	}

	if _, err := handler.heroImageService.Update(ctx, id, request.ToPatch()); err != nil {
		respondError(ctx, handler.logger, err, "Failed to update image")
		return
	}
	ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (handler *heroImageHandler) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := handler.heroImageService.Delete(ctx, id); err != nil {
		respondError(ctx, handler.logger, err, "Failed to delete image")
		return
	}
	ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}
