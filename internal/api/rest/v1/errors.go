package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CariHQ/nnp-web/internal/domain/donations"
	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/domain/media"
	"github.com/CariHQ/nnp-web/internal/domain/membership"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/domain/payments"
	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
	"github.com/CariHQ/nnp-web/internal/pkg/validators"
)

// StatusFor maps service errors to HTTP status codes. Unknown errors are 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, validators.ErrValidation),
		errors.Is(err, membership.ErrDeclarationRequired),
		errors.Is(err, donations.ErrInvalidAmount),
		errors.Is(err, media.ErrNoFiles),
		errors.Is(err, media.ErrUnsupportedType),
		errors.Is(err, media.ErrTooLarge),
		errors.Is(err, payments.ErrSignatureInvalid):
		return http.StatusBadRequest
	case errors.Is(err, heroimages.ErrNotFound),
		errors.Is(err, pages.ErrNotFound),
		errors.Is(err, posts.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, posts.ErrSlugExists):
		return http.StatusConflict
	case errors.Is(err, donations.ErrNotConfigured),
		errors.Is(err, payments.ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes client errors with their own message. Server errors are
// logged and answered with the fixed message.
func respondError(ctx *gin.Context, logger logger.Logger, err error, message string) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		logger.Error(message, ": ", err)
		ctx.JSON(status, ErrorResponse{Error: message})
		return
	}
	ctx.JSON(status, ErrorResponse{Error: err.Error()})
}

// parseID reads the :id path parameter and answers 400 when it is not a positive integer
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the body and answers 400 when it is not valid JSON
func bindJSON(ctx *gin.Context, dst any) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return false
	}
	return true
}
