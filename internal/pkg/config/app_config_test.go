//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeAppConfig_FileAndEnvironment(t *testing.T) {
	t.Setenv("AUTH_SECRET", "0123456789abcdef0123")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")

	path := writeConfigFile(t, `
port: "9090"
environment: production
database:
  type: sqlite
  dsn: test.db
logger:
  log_level: debug
  log_type: console
auth:
  session_ttl: 24h
`)

	cfg, err := InitializeAppConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "test.db", cfg.Database.DSN)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "auth-token", cfg.Auth.CookieName)
	assert.Equal(t, "sk_test_123", cfg.Stripe.SecretKey)
	assert.True(t, cfg.Stripe.Enabled())
	assert.Equal(t, "2.7", cfg.Donations.ExchangeRate)
}

func TestInitializeAppConfig_DatabaseURLSelectsPostgres(t *testing.T) {
	t.Setenv("AUTH_SECRET", "0123456789abcdef0123")
	t.Setenv("DATABASE_URL", "postgres://nnp:secret@db:5432/nnp?sslmode=disable")

	cfg, err := InitializeAppConfig("")
	require.NoError(t, err)

	assert.Equal(t, PostgresDbType, cfg.Database.Type)
	assert.Equal(t, "postgres://nnp:secret@db:5432/nnp?sslmode=disable", cfg.Database.DSN)
}

func TestInitializeAppConfig_LogLevelFromEnvironment(t *testing.T) {
	t.Setenv("AUTH_SECRET", "0123456789abcdef0123")
	t.Setenv("LOG_LEVEL", LogLevelDebug)

	cfg, err := InitializeAppConfig("")
	require.NoError(t, err)

	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
}

func TestInitializeAppConfig_MissingSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")

	_, err := InitializeAppConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_SECRET")
}

func TestInitializeAppConfig_MissingFile(t *testing.T) {
	_, err := InitializeAppConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDonationSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      DonationSettings
		expectedError bool
	}{
		{"valid", DonationSettings{DisplayCurrency: "XCD", ChargeCurrency: "USD", ExchangeRate: "2.7"}, false},
		{"non decimal rate", DonationSettings{DisplayCurrency: "XCD", ChargeCurrency: "USD", ExchangeRate: "abc"}, true},
		{"zero rate", DonationSettings{DisplayCurrency: "XCD", ChargeCurrency: "USD", ExchangeRate: "0"}, true},
		{"bad currency", DonationSettings{DisplayCurrency: "XC", ChargeCurrency: "USD", ExchangeRate: "2.7"}, true},
		{"bad minimum", DonationSettings{DisplayCurrency: "XCD", ChargeCurrency: "USD", ExchangeRate: "2.7", MinimumAmount: "five"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMediaSettingsValidation(t *testing.T) {
	local := MediaSettings{Provider: LocalMediaProvider, Directory: "uploads", PublicPath: "/uploads"}
	assert.NoError(t, local.Validate())

	azureMissingConn := MediaSettings{Provider: AzureMediaProvider, ContainerName: "media"}
	assert.Error(t, azureMissingConn.Validate())

	unknown := MediaSettings{Provider: "s3"}
	assert.Error(t, unknown.Validate())
}
