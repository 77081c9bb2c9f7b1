package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// SlogLogger implements Logger on top of log/slog
type SlogLogger struct {
	logger *slog.Logger
	exit   func(int)
}

// NewWriterLogger writes text lines to w. Tests pass a buffer or io.Discard.
func NewWriterLogger(w io.Writer, level string) Logger {
	return &SlogLogger{logger: slog.New(textHandler(w, level)), exit: os.Exit}
}

// Debug logs a debug message.
func (l *SlogLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

// Info logs an informational message.
func (l *SlogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message.
func (l *SlogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message.
func (l *SlogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs at critical level and exits with status 1.
func (l *SlogLogger) Fatal(args ...interface{}) {
	l.logger.Log(context.Background(), LevelCritical, formatArgs(args...))
	l.exit(1)
}

// Panic logs at critical level and panics with the message.
func (l *SlogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Log(context.Background(), LevelCritical, msg)
	panic(msg)
}
