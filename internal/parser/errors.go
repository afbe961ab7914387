// File: errors.go
// Title: Formula Parse Errors
// Description: Typed parse error with failure kind and byte position.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: ParseError with line and column
// - 2026-10-17 v0.2.0: Failure kinds, byte positions only

package parser

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse failure
type ErrorKind int

const (
	UnrecognizedCharacter ErrorKind = iota + 1
	UnknownElementSymbol
	UnbalancedParentheses
	EmptySegment
	DanglingMultiplier
	InvalidCount
)

// String returns a human readable description of the kind
func (k ErrorKind) String() string {
	switch k {
	case UnrecognizedCharacter:
		return "unrecognized character"
	case UnknownElementSymbol:
		return "unknown element symbol"
	case UnbalancedParentheses:
		return "unbalanced parentheses"
	case EmptySegment:
		return "empty segment"
	case DanglingMultiplier:
		return "dangling multiplier"
	case InvalidCount:
		return "invalid count"
	default:
		return "unknown parse error"
	}
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Kind     ErrorKind
	Position int    // byte offset into Input, -1 if not from text
	Input    string // the complete formula text
	Near     string // offending text, empty at end of input
}

func (pe *ParseError) Error() string {
	if pe.Position < 0 {
		if pe.Near == "" {
			return fmt.Sprintf("%s in composition", pe.Kind)
		}
		return fmt.Sprintf("%s in composition (near '%s')", pe.Kind, pe.Near)
	}
	if pe.Near == "" {
		return fmt.Sprintf("%s at position %d (end of input)", pe.Kind, pe.Position)
	}
	return fmt.Sprintf("%s at position %d (near '%s')", pe.Kind, pe.Position, pe.Near)
}

// IsKind reports whether err is, or wraps, a *ParseError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == kind
}
