package web

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	v1 "github.com/CariHQ/nnp-web/internal/api/rest/v1"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/domain/payments"
	"github.com/CariHQ/nnp-web/internal/domain/users"
)

func (s *Site) loginForm(ctx *gin.Context) {
	if token := s.options.Cookie.Token(ctx); token != "" {
		if _, err := s.services.Auth.Verify(ctx, token); err == nil {
			ctx.Redirect(http.StatusFound, "/admin")
			return
		}
	}
	s.render(ctx, http.StatusOK, "login.html", gin.H{"title": "Admin Login", "next": ctx.Query("next")})
}

func (s *Site) login(ctx *gin.Context) {
	email := strings.TrimSpace(ctx.PostForm("email"))
	next := ctx.PostForm("next")

	result, err := s.services.Auth.SignIn(ctx, email, ctx.PostForm("password"), v1.ClientInfo(ctx))
	if err != nil {
		status := http.StatusUnauthorized
		message := users.ErrInvalidCredentials.Error()
		switch {
		case errors.Is(err, users.ErrMissingCredentials):
			status, message = http.StatusBadRequest, err.Error()
		case !errors.Is(err, users.ErrInvalidCredentials):
			s.logger.Error("Login error: ", err)
			status, message = http.StatusInternalServerError, "Internal server error"
		}
		s.render(ctx, status, "login.html", gin.H{"title": "Admin Login", "error": message, "email": email, "next": next})
		return
	}

	s.options.Cookie.Set(ctx, result.Token)
	ctx.Redirect(http.StatusFound, safeNext(next))
}

// safeNext only follows redirects back into the admin area
func safeNext(next string) string {
	if strings.HasPrefix(next, "/admin") && !strings.HasPrefix(next, LoginPath) && !strings.Contains(next, "//") {
		return next
	}
	return "/admin"
}

func (s *Site) logout(ctx *gin.Context) {
	if err := s.services.Auth.SignOut(ctx, s.options.Cookie.Token(ctx)); err != nil {
		s.logger.Error("Logout error: ", err)
	}
	s.options.Cookie.Clear(ctx)
	ctx.Redirect(http.StatusFound, LoginPath)
}

func (s *Site) dashboard(ctx *gin.Context) {
	heroes, err := s.services.HeroImages.ListAll(ctx)
	if err != nil {
		s.serverError(ctx, "Failed to fetch hero images", err)
		return
	}
	sections, err := s.services.Pages.List(ctx, &pages.PageContentQuery{})
	if err != nil {
		s.serverError(ctx, "Failed to fetch page content", err)
		return
	}
	allPosts, err := s.services.Posts.ListAll(ctx)
	if err != nil {
		s.serverError(ctx, "Failed to fetch posts", err)
		return
	}
	applications, err := s.services.Membership.List(ctx)
	if err != nil {
		s.serverError(ctx, "Failed to fetch membership applications", err)
		return
	}

	s.render(ctx, http.StatusOK, "admin_dashboard.html", gin.H{
		"title":        "Dashboard",
		"heroCount":    len(heroes),
		"sectionCount": len(sections),
		"postCount":    len(allPosts),
		"memberCount":  len(applications),
	})
}

func (s *Site) adminHeroImages(ctx *gin.Context) {
	list, err := s.services.HeroImages.ListAll(ctx)
	if err != nil {
		s.serverError(ctx, "Failed to fetch images", err)
		return
	}
	s.render(ctx, http.StatusOK, "admin_hero_images.html", gin.H{"title": "Hero Images", "images": list})
}

func (s *Site) adminPages(ctx *gin.Context) {
	list, err := s.services.Pages.List(ctx, &pages.PageContentQuery{Page: ctx.Query("page")})
	if err != nil {
		s.serverError(ctx, "Failed to fetch page content", err)
		return
	}
	s.render(ctx, http.StatusOK, "admin_pages.html", gin.H{"title": "Page Content", "sections": list, "page": ctx.Query("page")})
}

func (s *Site) adminPress(ctx *gin.Context) {
	list, err := s.services.Posts.ListAll(ctx)
	if err != nil {
		s.serverError(ctx, "Failed to fetch press releases", err)
		return
	}
	s.render(ctx, http.StatusOK, "admin_press.html", gin.H{"title": "Press Releases", "posts": list})
}

func (s *Site) adminPayments(ctx *gin.Context) {
	list, err := s.services.Payments.List(ctx)
	if err != nil {
		s.serverError(ctx, "Failed to fetch payments", err)
		return
	}

	totals := map[string]int64{}
	for _, p := range list {
		if p.Status == payments.StatusSucceeded {
			totals[p.Currency] += p.Amount
		}
	}
	formatted := make([]string, 0, len(totals))
	for code, amount := range totals {
		formatted = append(formatted, FormatMoney(amount, code))
	}
	sort.Strings(formatted)

	s.render(ctx, http.StatusOK, "admin_payments.html", gin.H{"title": "Payments", "payments": list, "totals": formatted})
}

func (s *Site) adminMembership(ctx *gin.Context) {
	list, err := s.services.Membership.List(ctx)
	if err != nil {
		s.serverError(ctx, "Failed to fetch membership applications", err)
		return
	}
	s.render(ctx, http.StatusOK, "admin_membership.html", gin.H{"title": "Membership Applications", "applications": list})
}
