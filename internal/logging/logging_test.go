package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/finlit/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		config        config.LoggingConfig
		override      string
		expectedLevel zapcore.Level
		wantError     bool
	}{
		{"Defaults", config.LoggingConfig{}, "", zapcore.InfoLevel, false},
		{"Configured debug console", config.LoggingConfig{Level: "debug", Format: "console"}, "", zapcore.DebugLevel, false},
		{"Override wins", config.LoggingConfig{Level: "debug"}, "error", zapcore.ErrorLevel, false},
		{"Warning alias", config.LoggingConfig{Level: "warning"}, "", zapcore.WarnLevel, false},
		{"Invalid level", config.LoggingConfig{Level: "verbose"}, "", zapcore.InfoLevel, true},
		{"Invalid format", config.LoggingConfig{Format: "xml"}, "", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.config, tt.override)
			if tt.wantError {
				if err == nil {
					t.Errorf("New() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if !logger.Core().Enabled(tt.expectedLevel) {
				t.Errorf("expected level %s to be enabled", tt.expectedLevel)
			}
			if tt.expectedLevel > zapcore.DebugLevel && logger.Core().Enabled(tt.expectedLevel-1) {
				t.Errorf("expected level below %s to be disabled", tt.expectedLevel)
			}
		})
	}
}

func TestNewOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "finlit.log")

	logger, err := New(config.LoggingConfig{Level: "info", Format: "json", OutputFile: path}, "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("hello from test")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("expected log line in file, got %q", string(data))
	}
}
