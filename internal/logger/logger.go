// Package logger provides the leveled logger used by the onedrive-live CLI.
// It is built on log/slog and satisfies the onedrive.Logger interface, so the
// same instance can be handed to the SDK.
package logger

import (
	"fmt"
	"io"
	"log/slog"
)

// Logger defines the interface for structured logging with multiple levels,
// in simple and formatted variants.
type Logger interface {
	Debug(msg string, args ...any)
	Debugf(format string, args ...any)

	Info(msg string, args ...any)
	Infof(format string, args ...any)

	Warn(msg string, args ...any)
	Warnf(format string, args ...any)

	Error(msg string, args ...any)
	Errorf(format string, args ...any)
}

// NoopLogger is a logger that discards all log messages.
type NoopLogger struct{}

func (l NoopLogger) Debug(msg string, args ...any)     {}
func (l NoopLogger) Debugf(format string, args ...any) {}
func (l NoopLogger) Info(msg string, args ...any)      {}
func (l NoopLogger) Infof(format string, args ...any)  {}
func (l NoopLogger) Warn(msg string, args ...any)      {}
func (l NoopLogger) Warnf(format string, args ...any)  {}
func (l NoopLogger) Error(msg string, args ...any)     {}
func (l NoopLogger) Errorf(format string, args ...any) {}

// SlogLogger wraps a *slog.Logger.
type SlogLogger struct {
	logger *slog.Logger
}

// New returns a text logger writing to w. Debug output, which includes raw
// provider payloads, is only emitted when debug is true.
func New(w io.Writer, debug bool) *SlogLogger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &SlogLogger{logger: slog.New(handler)}
}

// With returns a logger that adds args to every record.
func (l *SlogLogger) With(args ...any) *SlogLogger {
	return &SlogLogger{logger: l.logger.With(args...)}
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Debugf(format string, args ...any) {
	l.logger.Debug(sprintf(format, args...))
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Infof(format string, args ...any) {
	l.logger.Info(sprintf(format, args...))
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) Warnf(format string, args ...any) {
	l.logger.Warn(sprintf(format, args...))
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *SlogLogger) Errorf(format string, args ...any) {
	l.logger.Error(sprintf(format, args...))
}

// sprintf leaves format untouched when there are no args, so a literal
// percent sign in a message survives.
func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
