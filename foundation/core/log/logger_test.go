// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, immutable cloning, level
//              filtering and structured error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-17 v0.2.0: Adapted to the reduced logger API

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}
	if logger.name != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.name)
	}
	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	newLogger := logger.WithLevel(LevelDebug)

	if newLogger == logger {
		t.Error("WithLevel() should return a new logger instance")
	}
	if newLogger.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", newLogger.GetLevel(), LevelDebug)
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
}

func TestLoggerWithFieldDoesNotLeak(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatText)
	child := base.WithField("component", "parser")

	base.Info("from base")
	child.Info("from child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if strings.Contains(lines[0], "component=parser") {
		t.Errorf("base logger line carries child field: %q", lines[0])
	}
	if !strings.Contains(lines[1], "component=parser") {
		t.Errorf("child logger line misses its field: %q", lines[1])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		minLevel Level
		log      func(*Logger)
		want     bool
	}{
		{"debug below info", LevelInfo, func(l *Logger) { l.Debug("m") }, false},
		{"info at info", LevelInfo, func(l *Logger) { l.Info("m") }, true},
		{"warn above info", LevelInfo, func(l *Logger) { l.Warn("m") }, true},
		{"trace at trace", LevelTrace, func(l *Logger) { l.Trace("m") }, true},
		{"error at error", LevelError, func(l *Logger) { l.Error("m") }, true},
		{"warn below error", LevelError, func(l *Logger) { l.Warn("m") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(tt.minLevel, FormatText)
			tt.log(logger)
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoggerWithFieldsAndName(t *testing.T) {
	base, buf := newBufferLogger(LevelDebug, FormatText)
	catalog := base.WithFields(Fields{"component": "catalog", "path": "/tmp/catalog.db"})
	doctor := catalog.WithName("doctor").WithFields(Fields{"path": "/srv/catalog.db"})

	catalog.Debug("opened")
	doctor.Debug("checked", Fields{"check": "catalog"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}

	wantFirst := "[DBG] opened [component=catalog path=/tmp/catalog.db]"
	if !strings.HasSuffix(lines[0], wantFirst) {
		t.Errorf("first line = %q, want suffix %q", lines[0], wantFirst)
	}
	wantSecond := "[DBG] {doctor} checked [check=catalog component=catalog path=/srv/catalog.db]"
	if !strings.HasSuffix(lines[1], wantSecond) {
		t.Errorf("second line = %q, want suffix %q", lines[1], wantSecond)
	}
}

func TestLoggerCallFieldsOverrideContext(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger = logger.WithField("component", "catalog")

	logger.Info("first", Fields{"component": "import"}, Fields{"entry": 2})
	logger.Info("second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}

	var first, second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if first["component"] != "import" || first["entry"] != float64(2) {
		t.Errorf("first = %v, want component=import entry=2", first)
	}
	if second["component"] != "catalog" {
		t.Errorf("call fields leaked into the logger: %v", second)
	}
}

func TestLoggerWarnWithErr(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)
	err := mdwerror.New("database is locked").WithCode(mdwerror.CodeDatabaseError)

	logger.WarnWithErr("Catalog unavailable, saving disabled", err, Fields{"path": "catalog.db"})

	out := buf.String()
	for _, want := range []string{"[WRN]", `error="database is locked"`, "code=DATABASE_ERROR", "path=catalog.db"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q misses %q", out, want)
		}
	}
}

func TestFieldsMerge(t *testing.T) {
	a := Fields{"component": "catalog", "path": "a.db"}
	b := Fields{"path": "b.db"}

	merged := a.Merge(b)
	if merged["path"] != "b.db" || merged["component"] != "catalog" {
		t.Errorf("Merge() = %v", merged)
	}
	if a["path"] != "a.db" {
		t.Errorf("Merge() modified the receiver: %v", a)
	}
	if got := Fields(nil).Merge(nil); got == nil || len(got) != 0 {
		t.Errorf("nil.Merge(nil) = %v, want empty map", got)
	}
}

func TestLoggerErrorWithErr(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger.ErrorWithErr("cannot open catalog", errors.New("permission denied"), Fields{"path": "/tmp/x.db"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["level"] != "error" {
		t.Errorf("level = %v, want error", entry["level"])
	}
	if entry["error"] != "permission denied" {
		t.Errorf("error = %v, want permission denied", entry["error"])
	}
	if entry["path"] != "/tmp/x.db" {
		t.Errorf("path = %v, want /tmp/x.db", entry["path"])
	}
}

func TestLoggerLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
	}{
		{
			name:      "plain error",
			err:       errors.New("boom"),
			wantLevel: "error",
		},
		{
			name:      "low severity",
			err:       mdwerror.New("bad formula").WithCode(mdwerror.CodeFormulaSyntax),
			wantLevel: "info",
			wantCode:  "FORMULA_SYNTAX",
		},
		{
			name:      "medium severity",
			err:       mdwerror.New("bad config").WithCode(mdwerror.CodeConfigError),
			wantLevel: "warn",
			wantCode:  "CONFIG_ERROR",
		},
		{
			name:      "high severity",
			err:       mdwerror.New("db").WithCode(mdwerror.CodeDatabaseError),
			wantLevel: "error",
			wantCode:  "DATABASE_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", entry["level"], tt.wantLevel)
			}
			if tt.wantCode != "" && entry["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", entry["error_code"], tt.wantCode)
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write anything")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard() logger should have every level disabled")
	}
	logger.Error("dropped")
}

func TestSetDefault(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	custom, buf := newBufferLogger(LevelDebug, FormatText)
	SetDefault(custom)
	GetDefault().Debug("through default")

	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("default logger did not write to custom output: %q", buf.String())
	}

	SetDefault(nil)
	if GetDefault() != custom {
		t.Error("SetDefault(nil) should keep the current logger")
	}
}

func BenchmarkLoggerLevelFiltering(b *testing.B) {
	logger, _ := newBufferLogger(LevelError, FormatJSON)
	for i := 0; i < b.N; i++ {
		logger.Debug("filtered", Fields{"i": i})
	}
}
