package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log levels accepted in the configuration
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log sinks
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation defaults used when a file sink leaves them at zero
const (
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

// LoggerSettings selects the log level and sink. LOG_LEVEL and LOG_FILE override
// the file so a deployment can turn on debug output without a new config.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" env:"LOG_LEVEL" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" env:"LOG_FILE"`
	MaxSize    int    `mapstructure:"max_size" validate:"gte=0,lte=100"`
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0,lte=10"`
	MaxAge     int    `mapstructure:"max_age" validate:"gte=0,lte=365"`
}

// Validate checks the settings and fills rotation defaults for file sinks
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}
	if s.FilePath == "" {
		return fmt.Errorf("file path is required for file logger")
	}
	if s.MaxSize == 0 {
		s.MaxSize = DefaultLogMaxSizeMB
	}
	if s.MaxBackups == 0 {
		s.MaxBackups = DefaultLogMaxBackups
	}
	if s.MaxAge == 0 {
		s.MaxAge = DefaultLogMaxAgeDays
	}
	return nil
}
