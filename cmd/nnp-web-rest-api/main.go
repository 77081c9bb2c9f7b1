// Package main is the entry point for the nnp-web-rest-api application.
// It serves the public site, the admin UI and the JSON API from one gin engine.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	v1 "github.com/CariHQ/nnp-web/internal/api/rest/v1"
	"github.com/CariHQ/nnp-web/internal/app"
	"github.com/CariHQ/nnp-web/internal/domain/media"
	"github.com/CariHQ/nnp-web/internal/infrastructure/connector"
	"github.com/CariHQ/nnp-web/internal/infrastructure/persistence"
	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
	"github.com/CariHQ/nnp-web/internal/pkg/telemetry"
	"github.com/CariHQ/nnp-web/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	appConfig, err := config.InitializeAppConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&appConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	ctx := context.Background()
	shutdownTracing, err := telemetry.Setup(ctx, appConfig.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error("Failed to flush traces: ", err)
		}
	}()

	db, err := openDatabase(appConfig.Database, log)
	if err != nil {
		return err
	}
	defer closeDatabase(db, log)

	services, err := initializeServices(ctx, appConfig, db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	return startServerWithGracefulShutdown(appConfig, services, log)
}

// openDatabase connects and migrates the schema
func openDatabase(settings config.DatabaseSettings, log logger.Logger) (*gorm.DB, error) {
	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		closeDatabase(db, log)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")
	return db, nil
}

func closeDatabase(db *gorm.DB, log logger.Logger) {
	if err := persistence.CloseDB(db); err != nil {
		log.Error("Failed to close database: ", err)
		return
	}
	log.Info("Database connection closed")
}

// initializeServices builds the connectors and the application services on db
func initializeServices(ctx context.Context, cfg *config.AppConfig, db *gorm.DB, log logger.Logger) (v1.Services, error) {
	var services v1.Services

	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create user repository: %w", err)
	}
	sessionRepo, err := persistence.NewGormSessionRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create session repository: %w", err)
	}
	heroRepo, err := persistence.NewGormHeroImageRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create hero image repository: %w", err)
	}
	pageRepo, err := persistence.NewGormPageContentRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create page content repository: %w", err)
	}
	postRepo, err := persistence.NewGormBlogPostRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create blog post repository: %w", err)
	}
	paymentRepo, err := persistence.NewGormPaymentRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create payment repository: %w", err)
	}
	membershipRepo, err := persistence.NewGormMembershipRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create membership repository: %w", err)
	}

	mediaConnector, err := connector.NewMediaConnector(ctx, &cfg.Media, log)
	if err != nil {
		return services, fmt.Errorf("failed to create media connector: %w", err)
	}

	stripeGateway := connector.NewStripeGateway(&cfg.Stripe, log)
	if !cfg.Stripe.Enabled() {
		log.Warn("STRIPE_SECRET_KEY not set, donations and payment sync are disabled")
	}

	if services.Auth, err = app.NewAuthService(userRepo, sessionRepo, &cfg.Auth, log); err != nil {
		return services, fmt.Errorf("failed to create auth service: %w", err)
	}
	if services.HeroImages, err = app.NewHeroImageService(heroRepo, log); err != nil {
		return services, fmt.Errorf("failed to create hero image service: %w", err)
	}
	if services.Pages, err = app.NewPageContentService(pageRepo, log); err != nil {
		return services, fmt.Errorf("failed to create page content service: %w", err)
	}
	if services.Posts, err = app.NewBlogPostService(postRepo, log); err != nil {
		return services, fmt.Errorf("failed to create blog post service: %w", err)
	}
	if services.Payments, err = app.NewPaymentService(paymentRepo, stripeGateway, log); err != nil {
		return services, fmt.Errorf("failed to create payment service: %w", err)
	}
	if services.Donations, err = app.NewDonationService(stripeGateway, &cfg.Donations, &cfg.Stripe, log); err != nil {
		return services, fmt.Errorf("failed to create donation service: %w", err)
	}
	if services.Membership, err = app.NewApplicationService(membershipRepo, log); err != nil {
		return services, fmt.Errorf("failed to create membership service: %w", err)
	}
	if services.Media, err = app.NewMediaService(mediaConnector, cfg.Media.MaxUploadBytes, log); err != nil {
		return services, fmt.Errorf("failed to create media service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return services, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.AppConfig, services v1.Services, log logger.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.MaxMultipartMemory = media.DefaultMaxBytes
	if cfg.Media.MaxUploadBytes > 0 {
		r.MaxMultipartMemory = cfg.Media.MaxUploadBytes
	}

	if telemetry.Enabled(cfg.Telemetry) {
		r.Use(telemetry.Middleware(cfg.Telemetry))
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(cfg),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	cookie := v1.SessionCookie{
		Name:   cfg.Auth.CookieName,
		TTL:    cfg.Auth.SessionTTL,
		Secure: cfg.IsProduction(),
	}

	v1.SetupRoutes(r, services, cookie, log)

	if cfg.Media.Provider == config.LocalMediaProvider {
		web.ServeUploads(r, cfg.Media.PublicPath, cfg.Media.Directory)
	}

	site, err := web.NewSite(services, web.Options{
		SiteName:        cfg.Site.Name,
		PublishableKey:  cfg.Stripe.PublishableKey,
		DisplayCurrency: cfg.Donations.DisplayCurrency,
		PublicDir:       cfg.Site.StaticDir,
		Cookie:          cookie,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create site: %w", err)
	}
	site.SetupRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// allowedOrigins limits credentialed CORS to the site itself when a base URL is configured
func allowedOrigins(cfg *config.AppConfig) []string {
	if cfg.Site.BaseURL != "" {
		return []string{cfg.Site.BaseURL}
	}
	return []string{"http://localhost:" + cfg.Port}
}
