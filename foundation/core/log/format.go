// File: format.go
// Title: Log Format Definitions
// Description: JSON and text output formats for log entries. Structured
//              errors contribute their code and operation as extra keys.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-17 v0.2.0: Reduced to JSON and text, sorted and quoted text fields,
//                      error codes in the output

package log

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs one JSON object per line
	FormatJSON Format = iota

	// FormatText outputs human-readable text lines
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat parses "json" or "text"
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	}
	return FormatText, &ParseError{Input: format, Type: "format"}
}

// Formatter turns an entry into one line of output including the newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// errorKeys returns the error message plus code and operation of the
// outermost *mdwerror.Error in the chain
func errorKeys(err error) (msg string, code mdwerror.Code, op string) {
	msg = err.Error()
	var e *mdwerror.Error
	if errors.As(err, &e) {
		code, op = e.Code(), e.Operation()
	}
	return msg, code, op
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with RFC 3339 timestamps
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format encodes fields first so that the fixed keys win on collisions
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+7)

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}

	if entry.Error != nil {
		msg, code, op := errorKeys(entry.Error)
		data["error"] = msg
		if code != "" {
			data["error_code"] = string(code)
		}
		if op != "" {
			data["operation"] = op
		}
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats entries as
//
//	15:04:05 [WRN] {parser} message [key=value ...] error="..." code=...
//
// Values containing spaces, quotes or '=' are quoted so that rejected
// formula input like "H2 O" stays readable.
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a text formatter with a clock-only timestamp
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var sb strings.Builder

	if !f.DisableTimestamp {
		sb.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		sb.WriteByte(' ')
	}
	sb.WriteString("[" + entry.Level.ShortString() + "]")
	if entry.Logger != "" {
		sb.WriteString(" {" + entry.Logger + "}")
	}
	sb.WriteByte(' ')
	sb.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		sb.WriteString(" [")
		for i, k := range entry.Fields.Keys() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(k + "=" + textValue(entry.Fields[k]))
		}
		sb.WriteByte(']')
	}

	if entry.Error != nil {
		msg, code, op := errorKeys(entry.Error)
		sb.WriteString(" error=" + strconv.Quote(msg))
		if code != "" {
			sb.WriteString(" code=" + string(code))
		}
		if op != "" {
			sb.WriteString(" op=" + op)
		}
	}

	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

func textValue(v interface{}) string {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case error:
		s = x.Error()
	default:
		return fmt.Sprint(v)
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

// GetFormatter returns the formatter for format, JSON for unknown values
func GetFormatter(format Format) Formatter {
	if format == FormatText {
		return NewTextFormatter()
	}
	return NewJSONFormatter()
}
