package logger

import (
	"log/slog"
	"testing"
)

func TestLogger(t *testing.T) {
	// Test that logger functions don't panic
	Initialize()

	t.Run("Info", func(t *testing.T) {
		Info("Test info message", "component", "test")
	})

	t.Run("Warn", func(t *testing.T) {
		Warn("Test warning message", "component", "test")
	})

	t.Run("Error", func(t *testing.T) {
		Error("Test error message", "component", "test")
	})

	t.Run("Debug", func(t *testing.T) {
		SetLevel(slog.LevelDebug)
		Debug("Test debug message", "component", "test")
		SetLevel(slog.LevelInfo)
	})

	t.Run("With", func(t *testing.T) {
		l := With("session_id", "abc123")
		if l == nil {
			t.Fatal("With returned nil logger")
		}
		l.Info("Test message with attributes")
	})
}

func TestGetReturnsSameLogger(t *testing.T) {
	if Get() != Get() {
		t.Fatal("Get should return the same logger instance")
	}
}
