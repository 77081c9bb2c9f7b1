package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/domain/payments"
	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/domain/users"
	"github.com/CariHQ/nnp-web/internal/infrastructure/persistence"
	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

const defaultConfigPath = "configs/rest-app.yaml"

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// configPath resolves --config, then CONFIG_PATH, then the default file when it exists
func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return defaultConfigPath
	}
	return ""
}

// repositories holds the GORM repositories of one database
type repositories struct {
	db         *gorm.DB
	users      users.UserRepository
	sessions   users.SessionRepository
	heroImages heroimages.HeroImageRepository
	pages      pages.PageContentRepository
	posts      posts.BlogPostRepository
	payments   payments.PaymentRepository
}

// openRepositories connects to settings, migrates the schema and builds the repositories
func openRepositories(settings config.DatabaseSettings, log logger.Logger) (*repositories, error) {
	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	repos := &repositories{db: db}

	if repos.users, err = persistence.NewGormUserRepository(db, log); err != nil {
		return nil, err
	}
	if repos.sessions, err = persistence.NewGormSessionRepository(db, log); err != nil {
		return nil, err
	}
	if repos.heroImages, err = persistence.NewGormHeroImageRepository(db, log); err != nil {
		return nil, err
	}
	if repos.pages, err = persistence.NewGormPageContentRepository(db, log); err != nil {
		return nil, err
	}
	if repos.posts, err = persistence.NewGormBlogPostRepository(db, log); err != nil {
		return nil, err
	}
	if repos.payments, err = persistence.NewGormPaymentRepository(db, log); err != nil {
		return nil, err
	}

	return repos, nil
}

func (r *repositories) close() {
	_ = persistence.CloseDB(r.db)
}

// environment is the configuration plus the primary database of a command run
type environment struct {
	cfg   *config.AppConfig
	repos *repositories
}

func loadEnvironment(cmd *cobra.Command, log logger.Logger) (*environment, error) {
	cfg, err := config.InitializeAppConfig(configPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	repos, err := openRepositories(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	return &environment{cfg: cfg, repos: repos}, nil
}

func (e *environment) close() {
	e.repos.close()
}
