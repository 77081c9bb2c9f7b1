// Package testutil contains helpers shared by tests across packages.
package testutil

import (
	"io"
	"testing"

	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// SetupTestLogger returns a logger that discards output so test runs stay quiet.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	return logger.NewWriterLogger(io.Discard, config.LogLevelDebug)
}
