//go:build integration
// +build integration

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CariHQ/nnp-web/internal/infrastructure/persistence/models"
	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/testutil"
)

func TestOpenAndCloseDatabase(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  filepath.Join(t.TempDir(), "nnp.db"),
	}

	db, err := openDatabase(settings, log)
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&models.BlogPostModel{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())

	closeDatabase(db, log)

	assert.Error(t, sqlDB.Ping())
}
