//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestWriterLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, config.LogLevelWarning)

	log.Debug("debug line")
	log.Info("info line")
	log.Warn("warn ", "line")
	log.Error("error line")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "warn line")
	assert.Contains(t, out, "error line")
}

func TestSlogLogger_FatalExits(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	log := &SlogLogger{
		logger: slog.New(slog.NewTextHandler(&buf, nil)),
		exit:   func(c int) { code = c },
	}

	log.Fatal("shutting down")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "shutting down")
}

func TestWriterLogger_CriticalThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := &SlogLogger{
		logger: slog.New(textHandler(&buf, config.LogLevelCritical)),
		exit:   func(int) {},
	}

	log.Error("ordinary failure")
	log.Fatal("database unreachable")

	out := buf.String()
	assert.NotContains(t, out, "ordinary failure")
	assert.Contains(t, out, "database unreachable")
	assert.Contains(t, out, "level=CRITICAL")
}

func TestSlogLogger_Panic(t *testing.T) {
	log := NewWriterLogger(&bytes.Buffer{}, config.LogLevelInfo)
	assert.PanicsWithValue(t, "boom", func() { log.Panic("boom") })
}

func TestInitLogger_File(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	path := filepath.Join(t.TempDir(), "nnp-web.log")
	err := InitLogger(&config.LoggerSettings{
		LogLevel:   config.LogLevelInfo,
		LogType:    config.LogTypeFile,
		FilePath:   path,
		MaxSize:    5,
		MaxBackups: 2,
		MaxAge:     7,
	})
	require.NoError(t, err)

	log, err := GetLogger()
	require.NoError(t, err)
	log.Info("hero image created")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hero image created"`)
}

func TestInitLogger_Invalid(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	err := InitLogger(&config.LoggerSettings{LogLevel: "loud", LogType: config.LogTypeConsole})
	assert.Error(t, err)

	log, getErr := GetLogger()
	assert.Error(t, getErr)
	assert.Nil(t, log)
}

func TestInitLogger_FirstCallWins(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	first, _ := GetLogger()

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole}))
	second, _ := GetLogger()

	assert.Same(t, first, second)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		config.LogLevelDebug:    slog.LevelDebug,
		config.LogLevelInfo:     slog.LevelInfo,
		config.LogLevelWarning:  slog.LevelWarn,
		config.LogLevelError:    slog.LevelError,
		config.LogLevelCritical: LevelCritical,
		"unknown":               slog.LevelInfo,
	}

	for level, expected := range tests {
		assert.Equal(t, expected, parseLevel(level), level)
	}
}
