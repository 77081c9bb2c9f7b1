package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// PageContentHandler defines the interface for handling page section operations
type PageContentHandler interface {
	ListForPage(ctx *gin.Context)
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type pageContentHandler struct {
	pageContentService pages.PageContentService
	logger             logger.Logger
}

// NewPageContentHandler creates a new PageContentHandler
func NewPageContentHandler(pageContentService pages.PageContentService, logger logger.Logger) PageContentHandler {
	return &pageContentHandler{
		pageContentService: pageContentService,
		logger:             logger,
	}
}

// ListForPage serves GET /api/pages/:page
func (handler *pageContentHandler) ListForPage(ctx *gin.Context) {
	content, err := handler.pageContentService.ListForPage(ctx, ctx.Param("page"))
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to fetch content")
		return
	}
	ctx.JSON(http.StatusOK, PageContentListResponse{Content: NewPageContentResponses(content)})
}

// List serves the admin list, optionally narrowed with ?page=
func (handler *pageContentHandler) List(ctx *gin.Context) {
	query := &pages.PageContentQuery{Page: ctx.Query("page")}

	content, err := handler.pageContentService.List(ctx, query)
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to fetch content")
		return
	}
	ctx.JSON(http.StatusOK, PageContentListResponse{Content: NewPageContentResponses(content)})
}

func (handler *pageContentHandler) Create(ctx *gin.Context) {
	var request CreatePageContentRequest
	if !bindJSON(ctx, &request) {
		return
	}

	content, err := handler.pageContentService.Create(ctx, request.ToDomain())
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to create content")
		return
	}
	ctx.JSON(http.StatusOK, PageContentItemResponse{Content: NewPageContentResponse(content)})
}

func (handler *pageContentHandler) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var request UpdatePageContentRequest
	if !bindJSON(ctx, &request) {
		return
	}

	if _, err := handler.pageContentService.Update(ctx, id, request.ToPatch()); err != nil {
		respondError(ctx, handler.logger, err, "Failed to update content")
		return
	}
	ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (handler *pageContentHandler) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := handler.pageContentService.Delete(ctx, id); err != nil {
		respondError(ctx, handler.logger, err, "Failed to delete content")
		return
	}
	ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}
