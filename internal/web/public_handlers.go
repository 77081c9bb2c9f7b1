package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CariHQ/nnp-web/internal/domain/membership"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/pkg/strutil"
	"github.com/CariHQ/nnp-web/internal/pkg/validators"
)

const homePostCount = 3

func (s *Site) home(ctx *gin.Context) {
	heroes, err := s.services.HeroImages.ListActive(ctx)
	if err != nil {
		s.serverError(ctx, "Failed to fetch hero images", err)
		return
	}
	sections, err := s.services.Pages.ListForPage(ctx, pages.PageHome)
	if err != nil {
		s.serverError(ctx, "Failed to fetch page content", err)
		return
	}
	latest, err := s.services.Posts.ListPublished(ctx, homePostCount)
	if err != nil {
		s.serverError(ctx, "Failed to fetch press releases", err)
		return
	}

	s.render(ctx, http.StatusOK, "home.html", gin.H{
		"heroes":   heroes,
		"sections": sections,
		"posts":    latest,
	})
}

func (s *Site) about(ctx *gin.Context) {
	sections, err := s.services.Pages.ListForPage(ctx, pages.PageAbout)
	if err != nil {
		s.serverError(ctx, "Failed to fetch page content", err)
		return
	}
	s.render(ctx, http.StatusOK, "about.html", gin.H{"title": "About", "sections": sections})
}

func (s *Site) pressList(ctx *gin.Context) {
	list, err := s.services.Posts.ListPublished(ctx, 0)
	if err != nil {
		s.serverError(ctx, "Failed to fetch press releases", err)
		return
	}
	s.render(ctx, http.StatusOK, "press.html", gin.H{"title": "Press Releases", "posts": list})
}

// post renders one published post; drafts are hidden from the public site
func (s *Site) post(ctx *gin.Context) {
	post, err := s.services.Posts.GetBySlug(ctx, ctx.Param("slug"))
	if errors.Is(err, posts.ErrNotFound) || (err == nil && !post.Published) {
		s.notFound(ctx)
		return
	}
	if err != nil {
		s.serverError(ctx, "Failed to fetch press release", err)
		return
	}
	s.render(ctx, http.StatusOK, "post.html", gin.H{"title": post.Title, "post": post})
}

func (s *Site) membershipData(form *membership.Application) gin.H {
	return gin.H{
		"title":           "Become a Member",
		"constituencies":  membership.Constituencies,
		"assistAreas":     membership.AssistAreas,
		"form":            form,
		"publishableKey":  s.options.PublishableKey,
		"displayCurrency": s.options.DisplayCurrency,
	}
}

func (s *Site) membershipForm(ctx *gin.Context) {
	s.render(ctx, http.StatusOK, "membership.html", s.membershipData(&membership.Application{}))
}

func (s *Site) membershipSubmit(ctx *gin.Context) {
	application := applicationFromForm(ctx)

	saved, err := s.services.Membership.Submit(ctx, application)
	if err != nil {
		if errors.Is(err, membership.ErrDeclarationRequired) || errors.Is(err, validators.ErrValidation) {
			data := s.membershipData(application)
			data["error"] = membershipErrorMessage(err)
			s.render(ctx, http.StatusBadRequest, "membership.html", data)
			return
		}
		s.serverError(ctx, "Failed to submit application", err)
		return
	}

	s.render(ctx, http.StatusOK, "membership_thanks.html", gin.H{"title": "Thank you", "application": saved})
}

func applicationFromForm(ctx *gin.Context) *membership.Application {
	field := func(name string) *string {
		return strutil.Ptr(ctx.PostForm(name))
	}
	return &membership.Application{
		IDNumber:            field("idNumber"),
		Name:                strings.TrimSpace(ctx.PostForm("name")),
		HomeAddress:         field("homeAddress"),
		HomePhone:           field("homePhone"),
		BusinessAddress:     field("businessAddress"),
		BusinessPhone:       field("businessPhone"),
		Email:               field("email"),
		Constituency:        ctx.PostForm("constituency"),
		PreviousPartyMember: ctx.PostForm("previousPartyMember") == "yes",
		AssistAreas:         ctx.PostFormArray("assistAreas"),
		DeclarationAccepted: ctx.PostForm("declaration") != "",
	}
}

func membershipErrorMessage(err error) string {
	if errors.Is(err, membership.ErrDeclarationRequired) {
		return "Please accept the declaration to apply."
	}
	return "Please check the highlighted fields and try again."
}
