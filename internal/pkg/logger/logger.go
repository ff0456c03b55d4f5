// Package logger provides the structured logger shared by all pawcap components.
package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	defaultLogger *slog.Logger
	level         slog.LevelVar
	once          sync.Once
)

// Initialize sets up the structured logger. Log output goes to stderr so
// packet output on stdout stays machine-readable.
func Initialize() {
	once.Do(func() {
		handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     &level,
			AddSource: false,
		})
		defaultLogger = slog.New(handler)
	})
}

// Get returns the default structured logger
func Get() *slog.Logger {
	Initialize() // Always call Initialize, sync.Once ensures it only runs once
	return defaultLogger
}

// SetLevel adjusts the minimum level for all subsequent log output
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Info logs an info level message
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Warn logs a warning level message
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// Error logs an error level message
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// Debug logs a debug level message
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// With returns a logger with the given attributes
func With(args ...any) *slog.Logger {
	return Get().With(args...)
}
