package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	v1 "github.com/CariHQ/nnp-web/internal/api/rest/v1"
	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/domain/posts"
)

// editorID parses the :id param. It renders the 404 page and returns false
// when the param is not a positive integer.
func (s *Site) editorID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		s.notFound(ctx)
		return 0, false
	}
	return uint(id), true
}

// editorForm carries what the form templates need to submit against the JSON API
type editorForm struct {
	Endpoint string
	Method   string
	Redirect string
	Editing  bool
}

func newEditorForm(collection, listPath string, id uint) editorForm {
	if id == 0 {
		return editorForm{Endpoint: v1.AdminPath + collection, Method: http.MethodPost, Redirect: listPath}
	}
	return editorForm{
		Endpoint: v1.AdminPath + collection + "/" + strconv.FormatUint(uint64(id), 10),
		Method:   http.MethodPatch,
		Redirect: listPath,
		Editing:  true,
	}
}

func (s *Site) newHeroImage(ctx *gin.Context) {
	s.render(ctx, http.StatusOK, "admin_hero_image_form.html", gin.H{
		"title": "New Hero Image",
		"image": &heroimages.HeroImage{Active: true},
		"form":  newEditorForm("/hero-images", "/admin/hero-images", 0),
	})
}

func (s *Site) editHeroImage(ctx *gin.Context) {
	id, ok := s.editorID(ctx)
	if !ok {
		return
	}
	image, err := s.services.HeroImages.GetByID(ctx, id)
	if errors.Is(err, heroimages.ErrNotFound) {
		s.notFound(ctx)
		return
	}
	if err != nil {
		s.serverError(ctx, "Failed to fetch image", err)
		return
	}
	s.render(ctx, http.StatusOK, "admin_hero_image_form.html", gin.H{
		"title": "Edit Hero Image",
		"image": image,
		"form":  newEditorForm("/hero-images", "/admin/hero-images", image.ID),
	})
}

func (s *Site) newPageContent(ctx *gin.Context) {
	s.render(ctx, http.StatusOK, "admin_page_form.html", gin.H{
		"title":   "New Page Section",
		"section": &pages.PageContent{Page: ctx.Query("page"), Active: true},
		"form":    newEditorForm("/pages", "/admin/pages", 0),
	})
}

func (s *Site) editPageContent(ctx *gin.Context) {
	id, ok := s.editorID(ctx)
	if !ok {
		return
	}
	section, err := s.services.Pages.GetByID(ctx, id)
	if errors.Is(err, pages.ErrNotFound) {
		s.notFound(ctx)
		return
	}
	if err != nil {
		s.serverError(ctx, "Failed to fetch page content", err)
		return
	}
	s.render(ctx, http.StatusOK, "admin_page_form.html", gin.H{
		"title":   "Edit Page Section",
		"section": section,
		"form":    newEditorForm("/pages", "/admin/pages", section.ID),
	})
}

func (s *Site) newPost(ctx *gin.Context) {
	s.render(ctx, http.StatusOK, "admin_post_form.html", gin.H{
		"title": "New Press Release",
		"post":  &posts.BlogPost{},
		"form":  newEditorForm("/press", "/admin/press", 0),
	})
}

func (s *Site) editPost(ctx *gin.Context) {
	id, ok := s.editorID(ctx)
	if !ok {
		return
	}
	post, err := s.services.Posts.GetByID(ctx, id)
	if errors.Is(err, posts.ErrNotFound) {
		s.notFound(ctx)
		return
	}
	if err != nil {
		s.serverError(ctx, "Failed to fetch press release", err)
		return
	}
	s.render(ctx, http.StatusOK, "admin_post_form.html", gin.H{
		"title": "Edit Press Release",
		"post":  post,
		"form":  newEditorForm("/press", "/admin/press", post.ID),
	})
}
