// File: format_test.go
// Title: Log Format and Level Tests
// Description: Tests for level and format parsing and for the JSON and text
//              formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive formatter tests
// - 2026-10-17 v0.2.0: Level parsing folded in, console and logfmt removed

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"verbose", LevelDebug, false},
		{"WRN", LevelWarn, false},
		{"fatal", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"logfmt", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	_, err := ParseFormat("yaml")
	if err == nil || err.Error() != "invalid format: yaml" {
		t.Errorf("ParseFormat(yaml) error = %v, want invalid format: yaml", err)
	}
}

func testEntry() *Entry {
	entry := NewEntry(LevelWarn, "formula rejected")
	entry.Timestamp = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	entry.Logger = "parser"
	entry.Fields["position"] = 3
	entry.Fields["input"] = "H2O)"
	return entry
}

func TestJSONFormatter_Format(t *testing.T) {
	entry := testEntry()
	entry.Fields["cause"] = errors.New("unbalanced")

	data, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	want := map[string]interface{}{
		"timestamp": "2026-10-17T09:30:00Z",
		"level":     "warn",
		"message":   "formula rejected",
		"logger":    "parser",
		"input":     "H2O)",
		"position":  float64(3),
		"cause":     "unbalanced",
	}
	for k, v := range want {
		if decoded[k] != v {
			t.Errorf("%s = %v, want %v", k, decoded[k], v)
		}
	}
}

func TestTextFormatter_Format(t *testing.T) {
	entry := testEntry()
	entry.Error = errors.New("unbalanced")

	data, err := NewTextFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `09:30:00 [WRN] {parser} formula rejected [input=H2O) position=3] error="unbalanced"` + "\n"
	if string(data) != want {
		t.Errorf("Format() = %q, want %q", string(data), want)
	}
}

func TestTextFormatter_DisableTimestamp(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true

	data, _ := f.Format(NewEntry(LevelInfo, "hello"))
	if string(data) != "[INF] hello\n" {
		t.Errorf("Format() = %q, want %q", string(data), "[INF] hello\n")
	}
}

func TestTextFormatter_QuotesValues(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true

	entry := NewEntry(LevelDebug, "Formula rejected")
	entry.Fields["input"] = "H2 O"
	entry.Fields["near"] = ""
	entry.Fields["kind"] = "UnrecognizedCharacter"

	data, _ := f.Format(entry)
	want := `[DBG] Formula rejected [input="H2 O" kind=UnrecognizedCharacter near=""]` + "\n"
	if string(data) != want {
		t.Errorf("Format() = %q, want %q", string(data), want)
	}
}

func TestFormatters_ErrorCode(t *testing.T) {
	err := mdwerror.Wrap(errors.New("UNIQUE constraint failed"), "formula already in catalog").
		WithCode(mdwerror.CodeDuplicateEntry).
		WithOperation("catalog.Add")

	entry := NewEntry(LevelError, "add failed")
	entry.Error = err

	text := NewTextFormatter()
	text.DisableTimestamp = true
	data, _ := text.Format(entry)
	want := `[ERR] add failed error="formula already in catalog: UNIQUE constraint failed" code=DUPLICATE_ENTRY op=catalog.Add` + "\n"
	if string(data) != want {
		t.Errorf("text Format() = %q, want %q", string(data), want)
	}

	data, _ = NewJSONFormatter().Format(entry)
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["error_code"] != "DUPLICATE_ENTRY" || decoded["operation"] != "catalog.Add" {
		t.Errorf("error_code = %v, operation = %v", decoded["error_code"], decoded["operation"])
	}
}
