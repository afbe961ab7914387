package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/msto63/chemformula/foundation/core/log"
	"github.com/msto63/chemformula/pkg/core/config"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("chemformula")

	if cfg.Name != "chemformula" {
		t.Errorf("Name = %v, want chemformula", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"bogus", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(LoggerConfig{Level: tt.level, Output: &bytes.Buffer{}})
			if got := logger.GetLevel(); got != tt.expected {
				t.Errorf("GetLevel() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewLogger_Output(t *testing.T) {
	var primary, extra bytes.Buffer

	logger := NewLogger(LoggerConfig{
		Name:              "test",
		Level:             "info",
		Format:            "json",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})
	logger.Info("hello", mdwlog.Fields{"formula": "H2O"})

	for name, buf := range map[string]*bytes.Buffer{"primary": &primary, "extra": &extra} {
		out := buf.String()
		if !strings.Contains(out, `"message":"hello"`) {
			t.Errorf("%s output missing message: %s", name, out)
		}
		if !strings.Contains(out, `"formula":"H2O"`) {
			t.Errorf("%s output missing field: %s", name, out)
		}
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.General.LogLevel = "error"

	if got := FromConfig(cfg, "chemformula", false).GetLevel(); got != mdwlog.LevelError {
		t.Errorf("level = %v, want error", got)
	}
	if got := FromConfig(cfg, "chemformula", true).GetLevel(); got != mdwlog.LevelDebug {
		t.Errorf("verbose level = %v, want debug", got)
	}
	if got := FromConfig(nil, "chemformula", false).GetLevel(); got != mdwlog.LevelWarn {
		t.Errorf("nil config level = %v, want warn", got)
	}
}
