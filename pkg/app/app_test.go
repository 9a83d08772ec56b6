package app

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/decker502/graveyard/pkg/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		enabled zapcore.Level
		quiet   zapcore.Level
	}{
		{"console info", config.LoggingConfig{Level: "info", Format: "console"}, zapcore.InfoLevel, zapcore.DebugLevel},
		{"json warn", config.LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel, zapcore.InfoLevel},
		{"invalid level falls back to info", config.LoggingConfig{Level: "loud"}, zapcore.InfoLevel, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewLogger(tt.cfg)
			if err != nil {
				t.Fatalf("NewLogger() error: %v", err)
			}
			if !log.Core().Enabled(tt.enabled) {
				t.Errorf("expected %v enabled", tt.enabled)
			}
			if log.Core().Enabled(tt.quiet) {
				t.Errorf("expected %v disabled", tt.quiet)
			}
		})
	}
}
