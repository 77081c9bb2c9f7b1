//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileLogger(maxSize, maxBackups, maxAge int) *LoggerSettings {
	return &LoggerSettings{
		LogLevel:   LogLevelWarning,
		LogType:    LogTypeFile,
		FilePath:   "/var/log/nnp-web/app.log",
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}
}

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{"console", &LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole}, false},
		{"console ignores missing path", &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole, MaxSize: 50}, false},
		{"file with rotation", fileLogger(20, 5, 30), false},
		{"file at upper bounds", fileLogger(100, 10, 365), false},
		{"no level", &LoggerSettings{LogType: LogTypeConsole}, true},
		{"unknown level", &LoggerSettings{LogLevel: "trace", LogType: LogTypeConsole}, true},
		{"unknown type", &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, true},
		{"file without path", &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, MaxSize: 1, MaxBackups: 1, MaxAge: 1}, true},
		{"negative size", fileLogger(-1, 5, 30), true},
		{"file size too large", fileLogger(101, 5, 30), true},
		{"file too many backups", fileLogger(20, 11, 30), true},
		{"file age too long", fileLogger(20, 5, 366), true},
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

func TestLoggerSettings_RotationDefaults(t *testing.T) {
	settings := fileLogger(0, 0, 0)

	assert.NoError(t, settings.Validate())
	assert.Equal(t, DefaultLogMaxSizeMB, settings.MaxSize)
	assert.Equal(t, DefaultLogMaxBackups, settings.MaxBackups)
	assert.Equal(t, DefaultLogMaxAgeDays, settings.MaxAge)
}
