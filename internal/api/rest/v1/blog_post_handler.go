package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// BlogPostHandler defines the interface for handling blog post and press release operations
type BlogPostHandler interface {
	Press(ctx *gin.Context)
	ListAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type blogPostHandler struct {
	blogPostService posts.BlogPostService
	logger          logger.Logger
	// noun names the resource in error messages ("post", "press release")
	noun   string
	plural string
}

// NewBlogPostHandler creates a handler whose error messages speak of blog posts
func NewBlogPostHandler(blogPostService posts.BlogPostService, logger logger.Logger) BlogPostHandler {
	return &blogPostHandler{blogPostService: blogPostService, logger: logger, noun: "post", plural: "posts"}
}

// NewPressReleaseHandler serves the same posts under the press release wording
func NewPressReleaseHandler(blogPostService posts.BlogPostService, logger logger.Logger) BlogPostHandler {
	return &blogPostHandler{blogPostService: blogPostService, logger: logger, noun: "press release", plural: "press releases"}
}

// Press serves GET /api/press: one post with ?slug=, else every published post
func (handler *blogPostHandler) Press(ctx *gin.Context) {
	if slug := ctx.Query("slug"); slug != "" {
		post, err := handler.blogPostService.GetBySlug(ctx, slug)
		if err != nil {
			respondError(ctx, handler.logger, err, "Failed to fetch "+handler.plural)
			return
		}
		ctx.JSON(http.StatusOK, BlogPostItemResponse{Post: NewBlogPostResponse(post)})
		return
	}

	list, err := handler.blogPostService.ListPublished(ctx, 0)
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to fetch "+handler.plural)
		return
	}
	ctx.JSON(http.StatusOK, BlogPostListResponse{Posts: NewBlogPostResponses(list)})
}

// ListAll returns drafts and published posts for the admin list
func (handler *blogPostHandler) ListAll(ctx *gin.Context) {
	list, err := handler.blogPostService.ListAll(ctx)
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to fetch "+handler.plural)
		return
	}
	ctx.JSON(http.StatusOK, BlogPostListResponse{Posts: NewBlogPostResponses(list)})
}

func (handler *blogPostHandler) Create(ctx *gin.Context) {
	var request CreateBlogPostRequest
	if !bindJSON(ctx, &request) {
		return
	}

	post, err := handler.blogPostService.Create(ctx, request.ToDomain())
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to create "+handler.noun)
		return
	}
	ctx.JSON(http.StatusOK, BlogPostItemResponse{Post: NewBlogPostResponse(post)})
}

func (handler *blogPostHandler) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var request UpdateBlogPostRequest
	if !bindJSON(ctx, &request) {
		return
	}

	if _, err := handler.blogPostService.Update(ctx, id, request.ToPatch()); err != nil {
		respondError(ctx, handler.logger, err, "Failed to update "+handler.noun)
		return
	}
	ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (handler *blogPostHandler) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := handler.blogPostService.Delete(ctx, id); err != nil {
		respondError(ctx, handler.logger, err, "Failed to delete "+handler.noun)
		return
	}
	ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}
