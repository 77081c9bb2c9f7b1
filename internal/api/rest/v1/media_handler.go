package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CariHQ/nnp-web/internal/domain/media"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// MediaHandler defines the interface for admin image uploads
type MediaHandler interface {
	Upload(ctx *gin.Context)
}

type mediaHandler struct {
	mediaService media.MediaService
	logger       logger.Logger
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaService media.MediaService, logger logger.Logger) MediaHandler {
	return &mediaHandler{
		mediaService: mediaService,
		logger:       logger,
	}
}

// Upload stores the files sent under "file" or "files"
func (handler *mediaHandler) Upload(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form data"})
		return
	}

	assets, err := handler.mediaService.Upload(ctx, form)
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to upload files")
		return
	}
	ctx.JSON(http.StatusCreated, MediaUploadResponse{Files: assets})
}
