// File: level.go
// Title: Log Level Definitions
// Description: Log levels, their long and short names, and parsing from
//              configuration values and --verbose style flags.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-17 v0.2.0: Dropped fatal and audit levels, names in one table

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level, e.g. individual lexer tokens
	LevelTrace Level = iota

	// LevelDebug provides detailed information such as rejected formulas
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates a recoverable problem, e.g. a missing config file
	LevelWarn

	// LevelError represents a failed operation
	LevelError
)

type levelName struct {
	long    string
	short   string
	aliases []string
}

var levelNames = [...]levelName{
	LevelTrace: {"trace", "TRC", []string{"trc"}},
	LevelDebug: {"debug", "DBG", []string{"dbg", "verbose"}},
	LevelInfo:  {"info", "INF", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", []string{"err"}},
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelError
}

// String returns the lower-case level name used in config files and JSON
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three-letter tag used by the text formatter
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog reports whether l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a level name, its short tag or an alias. Matching is
// case-insensitive. Unknown input yields LevelInfo and a *ParseError.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for l, n := range levelNames {
		if s == n.long || s == strings.ToLower(n.short) {
			return Level(l), nil
		}
		for _, alias := range n.aliases {
			if s == alias {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports a log level or format that could not be parsed
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel is the level of loggers created without a config
func DefaultLevel() Level {
	return LevelInfo
}
