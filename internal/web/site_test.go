//go:build unit
// +build unit

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	v1 "github.com/CariHQ/nnp-web/internal/api/rest/v1"
	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/domain/membership"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/domain/payments"
	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/domain/users"
	"github.com/CariHQ/nnp-web/internal/pkg/strutil"
	"github.com/CariHQ/nnp-web/internal/pkg/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type siteMocks struct {
	heroImages *v1.MockHeroImageService
	pages      *v1.MockPageContentService
	posts      *v1.MockBlogPostService
	payments   *v1.MockPaymentService
	membership *v1.MockApplicationService
	auth       *v1.MockAuthService
}

func setupSite(t *testing.T, publicDir string) (*gin.Engine, *siteMocks) {
	t.Helper()

	m := &siteMocks{
		heroImages: new(v1.MockHeroImageService),
		pages:      new(v1.MockPageContentService),
		posts:      new(v1.MockBlogPostService),
		payments:   new(v1.MockPaymentService),
		membership: new(v1.MockApplicationService),
		auth:       new(v1.MockAuthService),
	}

	site, err := NewSite(v1.Services{
		HeroImages: m.heroImages,
		Pages:      m.pages,
		Posts:      m.posts,
		Payments:   m.payments,
		Membership: m.membership,
		Auth:       m.auth,
	}, Options{
		SiteName:        "New National Party",
		PublishableKey:  "pk_test_123",
		DisplayCurrency: "XCD",
		PublicDir:       publicDir,
		Cookie:          v1.SessionCookie{Name: "auth-token", TTL: 7 * 24 * time.Hour},
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	r := gin.New()
	site.SetupRoutes(r)
	return r, m
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signedIn(m *siteMocks, req *http.Request) *http.Request {
	m.auth.On("Verify", mock.Anything, "jwt-token").Return(&users.Claims{UserID: "u-1", Email: "admin@votenpp.com"}, nil)
	req.AddCookie(&http.Cookie{Name: "auth-token", Value: "jwt-token"})
	return req
}

func TestSite_Home(t *testing.T) {
	r, m := setupSite(t, "")

	mission, _ := json.Marshal(map[string]string{"text": "To serve the people of Grenada"})
	published := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	m.heroImages.On("ListActive", mock.Anything).Return([]*heroimages.HeroImage{
		{ID: 1, Title: "Empowering Communities", ImageURL: "/carenage.jpg", Caption: strutil.Ptr("Working together")},
	}, nil)
	m.pages.On("ListForPage", mock.Anything, pages.PageHome).Return([]*pages.PageContent{
		{ID: 1, Page: "home", Section: "mission", Title: strutil.Ptr("Our Mission"), Content: mission, Active: true},
	}, nil)
	m.posts.On("ListPublished", mock.Anything, 3).Return([]*posts.BlogPost{
		{ID: 1, Title: "Budget Response", Slug: "budget-response", Published: true, PublishedAt: &published},
	}, nil)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Empowering Communities")
	assert.Contains(t, body, "Working together")
	assert.Contains(t, body, "To serve the people of Grenada")
	assert.Contains(t, body, `href="/press/budget-response"`)
	assert.Contains(t, body, "June 30, 2024")
}

func TestSite_Post(t *testing.T) {
	r, m := setupSite(t, "")

	m.posts.On("GetBySlug", mock.Anything, "roads").Return(&posts.BlogPost{Title: "Roads", Slug: "roads", Content: "First.\n\n## Works\n\n**Second.**<script>x()</script>", Published: true}, nil)
	m.posts.On("GetBySlug", mock.Anything, "draft").Return(&posts.BlogPost{Title: "Draft", Slug: "draft", Content: "x"}, nil)
	m.posts.On("GetBySlug", mock.Anything, "missing").Return(nil, posts.ErrNotFound)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/press/roads", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<p>First.</p>")
	assert.Contains(t, w.Body.String(), "Works</h2>")
	assert.Contains(t, w.Body.String(), "<strong>Second.</strong>")
	assert.NotContains(t, w.Body.String(), "x()")

	w = serve(r, httptest.NewRequest(http.MethodGet, "/blog/draft", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/press/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestSite_PublicFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "carenage.jpg"), []byte("jpeg"), 0o644))

	r, _ := setupSite(t, dir)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/carenage.jpg", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg", w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/../site_test.go", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSite_Membership(t *testing.T) {
	t.Run("form lists constituencies", func(t *testing.T) {
		r, _ := setupSite(t, "")

		w := serve(r, httptest.NewRequest(http.MethodGet, "/membership", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Carriacou and Petite Martinique")
		assert.Contains(t, w.Body.String(), `data-publishable-key="pk_test_123"`)
	})

	t.Run("submit", func(t *testing.T) {
		r, m := setupSite(t, "")

		m.membership.On("Submit", mock.Anything, mock.MatchedBy(func(a *membership.Application) bool {
			return a.Name == "Jane Citizen" && a.DeclarationAccepted && a.Email == nil &&
				assert.ObjectsAreEqual([]string{"house", "fund"}, a.AssistAreas)
		})).Return(&membership.Application{ID: 1, Name: "Jane Citizen"}, nil)

		form := url.Values{
			"name":         {"Jane Citizen"},
			"constituency": {"saint_john"},
			"assistAreas":  {"house", "fund"},
			"declaration":  {"yes"},
		}
		req := httptest.NewRequest(http.MethodPost, "/membership", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := serve(r, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Thank you, Jane Citizen")
	})

	t.Run("declaration missing", func(t *testing.T) {
		r, m := setupSite(t, "")

		m.membership.On("Submit", mock.Anything, mock.Anything).Return(nil, membership.ErrDeclarationRequired)

		form := url.Values{"name": {"Jane Citizen"}, "constituency": {"saint_john"}}
		req := httptest.NewRequest(http.MethodPost, "/membership", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := serve(r, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Please accept the declaration")
		assert.Contains(t, w.Body.String(), `value="Jane Citizen"`)
	})
}

func TestSite_AdminRedirectsToLoginWithoutSession(t *testing.T) {
	r, m := setupSite(t, "")
	m.auth.On("Verify", mock.Anything, mock.Anything).Return(nil, users.ErrUnauthorized)

	for _, target := range []string{"/admin", "/admin/hero-images", "/admin/payments", "/admin/press/new", "/admin/press/1", "/admin/pages/2"} {
		w := serve(r, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusFound, w.Code, target)
		assert.True(t, strings.HasPrefix(w.Header().Get("Location"), LoginPath+"?next="), target)
	}
	m.heroImages.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestSite_Login(t *testing.T) {
	t.Run("success redirects", func(t *testing.T) {
		r, m := setupSite(t, "")
		m.auth.On("SignIn", mock.Anything, "admin@votenpp.com", "change-me-now", mock.Anything).
			Return(&users.SignInResult{Token: "jwt-token", User: &users.User{ID: "u-1"}}, nil)

		form := url.Values{"email": {"admin@votenpp.com"}, "password": {"change-me-now"}, "next": {"/admin/press"}}
		req := httptest.NewRequest(http.MethodPost, LoginPath, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := serve(r, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/press", w.Header().Get("Location"))
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "jwt-token", cookies[0].Value)
	})

	t.Run("bad credentials", func(t *testing.T) {
		r, m := setupSite(t, "")
		m.auth.On("SignIn", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, users.ErrInvalidCredentials)

		form := url.Values{"email": {"admin@votenpp.com"}, "password": {"nope"}}
		req := httptest.NewRequest(http.MethodPost, LoginPath, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := serve(r, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestSite_Logout(t *testing.T) {
	r, m := setupSite(t, "")
	m.auth.On("SignOut", mock.Anything, "jwt-token").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: "auth-token", Value: "jwt-token"})
	w := serve(r, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
	m.auth.AssertExpectations(t)
}

func TestSite_AdminPayments(t *testing.T) {
	r, m := setupSite(t, "")

	m.payments.On("List", mock.Anything).Return([]*payments.Payment{
		{ID: 1, StripePaymentID: "pi_1", Amount: 1250, Currency: "usd", Status: payments.StatusSucceeded, CustomerName: strutil.Ptr("Jane")},
		{ID: 2, StripePaymentID: "pi_2", Amount: 500, Currency: "usd", Status: "requires_payment_method"},
	}, nil)

	w := serve(r, signedIn(m, httptest.NewRequest(http.MethodGet, "/admin/payments", nil)))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "pi_1")
	assert.Contains(t, body, "Jane")
	assert.Contains(t, body, "12.5")
	assert.Contains(t, body, "admin@votenpp.com")
}

func TestSite_Dashboard(t *testing.T) {
	r, m := setupSite(t, "")

	m.heroImages.On("ListAll", mock.Anything).Return([]*heroimages.HeroImage{{ID: 1}, {ID: 2}}, nil)
	m.pages.On("List", mock.Anything, mock.Anything).Return([]*pages.PageContent{{ID: 1}}, nil)
	m.posts.On("ListAll", mock.Anything).Return([]*posts.BlogPost{}, nil)
	m.membership.On("List", mock.Anything).Return([]*membership.Application{}, nil)

	w := serve(r, signedIn(m, httptest.NewRequest(http.MethodGet, "/admin", nil)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<strong>2</strong> hero images")
}

func TestSite_AdminEditors(t *testing.T) {
	t.Run("new hero image", func(t *testing.T) {
		r, m := setupSite(t, "")

		w := serve(r, signedIn(m, httptest.NewRequest(http.MethodGet, "/admin/hero-images/new", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `data-api="/api/admin/hero-images"`)
		assert.Contains(t, body, `data-method="POST"`)
		assert.Contains(t, body, `data-upload="imageUrl"`)
		assert.Contains(t, body, `/static/admin.js`)
	})

	t.Run("edit hero image", func(t *testing.T) {
		r, m := setupSite(t, "")
		m.heroImages.On("GetByID", mock.Anything, uint(4)).
			Return(&heroimages.HeroImage{ID: 4, Title: "Carriacou Rally", ImageURL: "/uploads/rally.jpg", Active: true}, nil)

		w := serve(r, signedIn(m, httptest.NewRequest(http.MethodGet, "/admin/hero-images/4", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `data-api="/api/admin/hero-images/4"`)
		assert.Contains(t, body, `data-method="PATCH"`)
		assert.Contains(t, body, `value="Carriacou Rally"`)
	})

	t.Run("edit press release", func(t *testing.T) {
		r, m := setupSite(t, "")
		published := time.Date(2024, 6, 30, 9, 30, 0, 0, time.UTC)
		m.posts.On("GetByID", mock.Anything, uint(7)).Return(&posts.BlogPost{
			ID: 7, Title: "Budget Response", Slug: "budget-response", Content: "## Summary\n\n**Cuts** ahead",
			Published: true, PublishedAt: &published,
		}, nil)

		w := serve(r, signedIn(m, httptest.NewRequest(http.MethodGet, "/admin/press/7", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `data-api="/api/admin/press/7"`)
		assert.Contains(t, body, `value="2024-06-30T09:30"`)
		assert.Contains(t, body, "## Summary")
		assert.Contains(t, body, "<strong>Cuts</strong>")
	})

	t.Run("new press release", func(t *testing.T) {
		r, m := setupSite(t, "")

		w := serve(r, signedIn(m, httptest.NewRequest(http.MethodGet, "/admin/press/new", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `data-api="/api/admin/press"`)
		m.posts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("edit page section", func(t *testing.T) {
		r, m := setupSite(t, "")
		content, _ := json.Marshal(map[string]string{"text": "To serve the people"})
		m.pages.On("GetByID", mock.Anything, uint(2)).
			Return(&pages.PageContent{ID: 2, Page: "home", Section: "mission", Content: content, Active: true}, nil)

		w := serve(r, signedIn(m, httptest.NewRequest(http.MethodGet, "/admin/pages/2", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `data-api="/api/admin/pages/2"`)
		assert.Contains(t, body, "To serve the people")
		assert.Contains(t, body, `data-type="json"`)
	})

	t.Run("new page section keeps page filter", func(t *testing.T) {
		r, m := setupSite(t, "")

		w := serve(r, signedIn(m, httptest.NewRequest(http.MethodGet, "/admin/pages/new?page=about", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `name="page" value="about"`)
	})

	t.Run("unknown id", func(t *testing.T) {
		r, m := setupSite(t, "")
		m.posts.On("GetByID", mock.Anything, uint(99)).Return(nil, posts.ErrNotFound)

		w := serve(r, signedIn(m, httptest.NewRequest(http.MethodGet, "/admin/press/99", nil)))
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = serve(r, signedIn(m, httptest.NewRequest(http.MethodGet, "/admin/press/abc", nil)))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list has edit and delete controls", func(t *testing.T) {
		r, m := setupSite(t, "")
		m.posts.On("ListAll", mock.Anything).Return([]*posts.BlogPost{{ID: 3, Title: "Roads", Slug: "roads"}}, nil)

		w := serve(r, signedIn(m, httptest.NewRequest(http.MethodGet, "/admin/press", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `href="/admin/press/3"`)
		assert.Contains(t, body, `data-delete="/api/admin/press/3"`)
		assert.Contains(t, body, `href="/admin/press/new"`)
	})
}

func TestSafeNext(t *testing.T) {
	tests := map[string]string{
		"":                  "/admin",
		"/admin/press":      "/admin/press",
		"https://evil.test": "/admin",
		"/admin//evil.test": "/admin",
		LoginPath:           "/admin",
	}
	for in, want := range tests {
		assert.Equal(t, want, safeNext(in), in)
	}
}
