// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to decide how loudly an error is
//              reported by loggers and command line front ends.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Severity mapping for formula and catalog codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad user input, e.g. a malformed formula
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure with a workaround
	SeverityMedium

	// SeverityHigh indicates a failure of a backing resource such as the catalog database
	SeverityHigh

	// SeverityCritical indicates the program cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeDatabaseError, CodeInvalidTable:
		return SeverityHigh

	case CodeConfigError, CodeInvalidConfig, CodeImportError, CodeDuplicateEntry:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound,
		CodeFormulaSyntax, CodeUnknownElement, CodeInvalidFormatMode:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
