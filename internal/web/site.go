package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	v1 "github.com/CariHQ/nnp-web/internal/api/rest/v1"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// LoginPath is where unauthenticated admin page requests are sent
const LoginPath = "/admin/login"

// Options holds the values rendered into pages
type Options struct {
	SiteName        string
	PublishableKey  string
	DisplayCurrency string
	// PublicDir holds files served from the site root, like /carenage.jpg
	PublicDir       string
	Cookie          v1.SessionCookie
}

// Site serves the public pages and the admin UI
type Site struct {
	services v1.Services
	options  Options
	logger   logger.Logger
	tmpl     *template.Template
}

// NewSite parses the embedded templates
func NewSite(services v1.Services, options Options, logger logger.Logger) (*Site, error) {
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Site{
		services: services,
		options:  options,
		logger:   logger,
		tmpl:     tmpl,
	}, nil
}

// SetupRoutes registers the HTML routes on r
func (s *Site) SetupRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(s.tmpl)

	assets, _ := fs.Sub(staticFS, "static")
	r.StaticFS("/static", http.FS(assets))

	r.GET("/", s.home)
	r.GET("/about", s.about)
	r.GET("/press", s.pressList)
	r.GET("/press/:slug", s.post)
	r.GET("/blog", s.pressList)
	r.GET("/blog/:slug", s.post)
	r.GET("/membership", s.membershipForm)
	r.POST("/membership", s.membershipSubmit)

	r.GET(LoginPath, s.loginForm)
	r.POST(LoginPath, s.login)
	r.POST("/admin/logout", s.logout)

	admin := r.Group("/admin", v1.RequireSessionPage(s.services.Auth, s.options.Cookie, LoginPath))
	admin.GET("", s.dashboard)
	admin.GET("/hero-images", s.adminHeroImages)
	admin.GET("/hero-images/new", s.newHeroImage)
	admin.GET("/hero-images/:id", s.editHeroImage)
	admin.GET("/pages", s.adminPages)
	admin.GET("/pages/new", s.newPageContent)
	admin.GET("/pages/:id", s.editPageContent)
	admin.GET("/press", s.adminPress)
	admin.GET("/press/new", s.newPost)
	admin.GET("/press/:id", s.editPost)
	admin.GET("/payments", s.adminPayments)
	admin.GET("/membership", s.adminMembership)

	r.NoRoute(s.publicFile)
}

func (s *Site) render(ctx *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["siteName"] = s.options.SiteName
	data["path"] = ctx.Request.URL.Path
	if claims, ok := v1.ClaimsFrom(ctx); ok {
		data["user"] = claims
	}
	ctx.HTML(status, name, data)
}

// publicFile serves a file from PublicDir or renders the 404 page
func (s *Site) publicFile(ctx *gin.Context) {
	if s.options.PublicDir != "" && ctx.Request.Method == http.MethodGet {
		name := filepath.Join(s.options.PublicDir, filepath.FromSlash(path.Clean("/"+ctx.Request.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			ctx.File(name)
			return
		}
	}
	s.notFound(ctx)
}

func (s *Site) notFound(ctx *gin.Context) {
	s.render(ctx, http.StatusNotFound, "not_found.html", gin.H{"title": "Page not found"})
}

func (s *Site) serverError(ctx *gin.Context, message string, err error) {
	s.logger.Error(message+": ", err)
	s.render(ctx, http.StatusInternalServerError, "error.html", gin.H{"title": "Something went wrong", "message": message})
}
