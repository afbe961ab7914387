// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across chemformula for consistent
//              classification of failures in parsing, rendering, configuration
//              and catalog storage.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Replaced platform codes with formula, element and catalog codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Formula core
	CodeFormulaSyntax     Code = "FORMULA_SYNTAX"
	CodeUnknownElement    Code = "UNKNOWN_ELEMENT"
	CodeInvalidFormatMode Code = "INVALID_FORMAT_MODE"

	// Element tables
	CodeInvalidTable Code = "INVALID_TABLE"

	// Catalog storage
	CodeDatabaseError  Code = "DATABASE_ERROR"
	CodeDuplicateEntry Code = "DUPLICATE_ENTRY"
	CodeImportError    Code = "IMPORT_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeFormulaSyntax, CodeUnknownElement, CodeInvalidFormatMode,
		CodeInvalidTable,
		CodeDatabaseError, CodeDuplicateEntry, CodeImportError,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeFormulaSyntax, CodeUnknownElement, CodeInvalidFormatMode:
		return "formula"
	case CodeInvalidTable:
		return "elements"
	case CodeDatabaseError, CodeDuplicateEntry, CodeImportError:
		return "catalog"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status a command line tool should use
// when it terminates because of an error with this code
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeFormulaSyntax, CodeUnknownElement, CodeInvalidFormatMode:
		return 2
	case CodeNotFound:
		return 3
	case CodeConfigError, CodeInvalidConfig, CodeInvalidTable:
		return 4
	case CodeDatabaseError, CodeDuplicateEntry, CodeImportError:
		return 5
	default:
		return 1
	}
}
