package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// Environment names
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// SecretSettings are read only from the environment
type SecretSettings struct {
	OpenAIAPIKey                 string `env:"OPENAI_API_KEY"`
	AzureStorageConnectionString string `env:"AZURE_STORAGE_CONNECTION_STRING"`
	DatabaseURL                  string `env:"DATABASE_URL"`
}

// AppConfig is the configuration shared by the REST server and the CLI
type AppConfig struct {
	Port        string            `mapstructure:"port"`
	Environment string            `mapstructure:"environment"`
	Database    DatabaseSettings  `mapstructure:"database"`
	Logger      LoggerSettings    `mapstructure:"logger"`
	Media       MediaSettings     `mapstructure:"media"`
	Donations   DonationSettings  `mapstructure:"donations"`
	Telemetry   TelemetrySettings `mapstructure:"telemetry"`
	Site        SiteSettings      `mapstructure:"site"`
	Auth        AuthSettings      `mapstructure:"auth"`
	Stripe      StripeSettings    `mapstructure:"-"`
	Secrets     SecretSettings    `mapstructure:"-"`
}

// IsProduction reports whether cookies must be marked Secure
func (c *AppConfig) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// Validate checks every section of the configuration
func (c *AppConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Media.Validate(); err != nil {
		return err
	}
	if err := c.Donations.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("environment", EnvironmentDevelopment)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "local.db")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("media.provider", LocalMediaProvider)
	v.SetDefault("media.directory", "uploads")
	v.SetDefault("media.public_path", "/uploads")
	v.SetDefault("media.max_upload_bytes", 10<<20)
	v.SetDefault("donations.display_currency", "XCD")
	v.SetDefault("donations.charge_currency", "USD")
	v.SetDefault("donations.exchange_rate", "2.7")
	v.SetDefault("donations.minimum_amount", "5")
	v.SetDefault("telemetry.service_name", "nnp-web")
	v.SetDefault("site.name", "New National Party")
	v.SetDefault("site.static_dir", "public")
	v.SetDefault("site.press_author", "New National Party")
	v.SetDefault("auth.cookie_name", "auth-token")
	v.SetDefault("auth.session_ttl", 7*24*time.Hour)
}

// InitializeAppConfig reads the YAML file at path (when it exists), overlays
// environment secrets and validates the result.
func InitializeAppConfig(path string) (*AppConfig, error) {
	cfg, err := readAppConfig(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func readAppConfig(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := applyEnvironment(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvironment(cfg *AppConfig) error {
	if err := env.Parse(&cfg.Logger); err != nil {
		return fmt.Errorf("parse logger env: %w", err)
	}
	if err := env.Parse(&cfg.Stripe); err != nil {
		return fmt.Errorf("parse stripe env: %w", err)
	}
	if err := env.Parse(&cfg.Auth); err != nil {
		return fmt.Errorf("parse auth env: %w", err)
	}
	if err := env.Parse(&cfg.Telemetry); err != nil {
		return fmt.Errorf("parse telemetry env: %w", err)
	}
	if err := env.Parse(&cfg.Secrets); err != nil {
		return fmt.Errorf("parse secrets env: %w", err)
	}

	if cfg.Secrets.DatabaseURL != "" {
		cfg.Database.DSN = cfg.Secrets.DatabaseURL
		if strings.HasPrefix(cfg.Secrets.DatabaseURL, "postgres://") || strings.HasPrefix(cfg.Secrets.DatabaseURL, "postgresql://") {
			cfg.Database.Type = PostgresDbType
		}
	}
	cfg.Media.ConnectionString = cfg.Secrets.AzureStorageConnectionString

	return nil
}
