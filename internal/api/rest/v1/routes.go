package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/CariHQ/nnp-web/internal/domain/donations"
	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/domain/media"
	"github.com/CariHQ/nnp-web/internal/domain/membership"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/domain/payments"
	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/domain/users"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// Services bundles the application services behind the JSON API
type Services struct {
	HeroImages heroimages.HeroImageService
	Pages      pages.PageContentService
	Posts      posts.BlogPostService
	Payments   payments.PaymentService
	Donations  donations.DonationService
	Membership membership.ApplicationService
	Media      media.MediaService
	Auth       users.AuthService
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services Services, cookie SessionCookie, logger logger.Logger) {
	api := r.Group(BasePath)

	heroImageHandler := NewHeroImageHandler(services.HeroImages, logger)
	pageContentHandler := NewPageContentHandler(services.Pages, logger)
	blogHandler := NewBlogPostHandler(services.Posts, logger)
	pressHandler := NewPressReleaseHandler(services.Posts, logger)
	paymentHandler := NewPaymentHandler(services.Payments, logger)
	donationHandler := NewDonationHandler(services.Donations, logger)
	membershipHandler := NewMembershipHandler(services.Membership, logger)
	mediaHandler := NewMediaHandler(services.Media, logger)
	authHandler := NewAuthHandler(services.Auth, cookie, logger)

	// Public Routes
	api.GET("/hero-images", heroImageHandler.ListActive)
	api.GET("/pages/:page", pageContentHandler.ListForPage)
	api.GET("/press", pressHandler.Press)
	api.POST("/create-customer", donationHandler.CreateCustomer)
	api.POST("/create-payment-intent", donationHandler.CreatePaymentIntent)
	api.POST("/create-subscription", donationHandler.CreateSubscription)
	api.POST("/stripe-webhook", paymentHandler.Webhook)
	api.POST("/membership", membershipHandler.Submit)

	// Auth Routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/session", authHandler.Session)

	requireSession := RequireSession(services.Auth, cookie)

	api.GET("/sync-stripe-payments", requireSession, paymentHandler.Sync)

	// Admin Routes
	admin := r.Group(AdminPath, requireSession)

	admin.GET("/hero-images", heroImageHandler.ListAll)
	admin.POST("/hero-images", heroImageHandler.Create)
	admin.PATCH("/hero-images/:id", heroImageHandler.Update)
	admin.DELETE("/hero-images/:id", heroImageHandler.Delete)

	admin.GET("/pages", pageContentHandler.List)
	admin.POST("/pages", pageContentHandler.Create)
	admin.PATCH("/pages/:id", pageContentHandler.Update)
	admin.DELETE("/pages/:id", pageContentHandler.Delete)

	admin.GET("/blog", blogHandler.ListAll)
	admin.POST("/blog", blogHandler.Create)
	admin.PATCH("/blog/:id", blogHandler.Update)
	admin.DELETE("/blog/:id", blogHandler.Delete)

	admin.GET("/press", pressHandler.ListAll)
	admin.POST("/press", pressHandler.Create)
	admin.PATCH("/press/:id", pressHandler.Update)
	admin.DELETE("/press/:id", pressHandler.Delete)

	admin.GET("/payments", paymentHandler.List)
	admin.POST("/payments/sync", paymentHandler.Sync)

	admin.GET("/membership", membershipHandler.List)
	admin.POST("/media", mediaHandler.Upload)
}
