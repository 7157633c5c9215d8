package logger

import (
	"errors"
	"testing"
	"time"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
	}{
		{
			name:  "development mode",
			debug: true,
		},
		{
			name:  "production mode",
			debug: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewLogger(tt.debug)
			if err != nil {
				t.Fatalf("NewLogger() error = %v, want nil", err)
			}
			if log == nil {
				t.Fatal("NewLogger() returned nil logger")
			}

			log.Info("test message")

			// Sync errors are acceptable in test environments
			_ = log.Sync()
		})
	}
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()

	// None of these should panic or produce output
	log.Debug("debug", String("k", "v"))
	log.Info("info", Int("n", 1))
	log.Warn("warn", Bool("b", true))
	log.Error("error", Error(errors.New("boom")))

	if err := log.Sync(); err != nil {
		t.Errorf("Sync() error = %v, want nil", err)
	}
}

func TestWith(t *testing.T) {
	log := NewNopLogger()

	child := log.With(
		String("service", "content-resolver"),
		Duration("elapsed", time.Second),
	)
	if child == nil {
		t.Fatal("With() returned nil logger")
	}

	// Child logger must be independent of the parent
	child.Info("from child")
	log.Info("from parent")
}
