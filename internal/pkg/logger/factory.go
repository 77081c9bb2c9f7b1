package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/natefinch/lumberjack"

	"github.com/CariHQ/nnp-web/internal/pkg/config"
)

// LevelCritical sits above slog's error level. Fatal and Panic log at it,
// and a "critical" threshold keeps only those lines.
const LevelCritical = slog.LevelError + 4

var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: LevelCritical,
}

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// InitLogger builds the process logger from settings. Only the first call has an effect.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the logger built by InitLogger
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

func newLogger(c *config.LoggerSettings) (Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	handler, err := newHandler(c)
	if err != nil {
		return nil, err
	}
	return &SlogLogger{logger: slog.New(handler), exit: os.Exit}, nil
}

// newHandler picks the sink: text lines on stdout for the console, JSON lines
// on a rotated file otherwise
func newHandler(c *config.LoggerSettings) (slog.Handler, error) {
	switch c.LogType {
	case config.LogTypeConsole:
		return textHandler(os.Stdout, c.LogLevel), nil
	case config.LogTypeFile:
		return jsonHandler(rotatingWriter(c.FilePath, c.MaxSize, c.MaxBackups, c.MaxAge), c.LogLevel), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", c.LogType)
	}
}

func rotatingWriter(filePath string, maxSize, maxBackups, maxAge int) io.Writer {
	return &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
}

func textHandler(w io.Writer, level string) slog.Handler {
	return slog.NewTextHandler(w, handlerOptions(level))
}

func jsonHandler(w io.Writer, level string) slog.Handler {
	return slog.NewJSONHandler(w, handlerOptions(level))
}

func handlerOptions(level string) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl >= LevelCritical {
					a.Value = slog.StringValue("CRITICAL")
				}
			}
			return a
		},
	}
}

// parseLevel falls back to info for names it does not know
func parseLevel(level string) slog.Level {
	if lvl, ok := levels[level]; ok {
		return lvl
	}
	return slog.LevelInfo
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
