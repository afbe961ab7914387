package formula

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
	"github.com/msto63/chemformula/internal/parser"
)

// ParseError is returned by Build for malformed text or an invalid explicit
// composition.
type ParseError = parser.ParseError

// ErrorKind classifies a ParseError
type ErrorKind = parser.ErrorKind

const (
	UnrecognizedCharacter = parser.UnrecognizedCharacter
	UnknownElementSymbol  = parser.UnknownElementSymbol
	UnbalancedParentheses = parser.UnbalancedParentheses
	EmptySegment          = parser.EmptySegment
	DanglingMultiplier    = parser.DanglingMultiplier
	InvalidCount          = parser.InvalidCount
)

// UnknownElementError reports a symbol that is missing from the element
// table used for a computation.
type UnknownElementError struct {
	Symbol string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("unknown element %q", e.Symbol)
}

// InvalidFormatModeError reports an unrecognized ordering mode
type InvalidFormatModeError struct {
	Mode string
}

func (e *InvalidFormatModeError) Error() string {
	return fmt.Sprintf("invalid format mode %q (want formula, hill or sum)", e.Mode)
}

// CodeFor returns the structured error code matching err
func CodeFor(err error) mdwerror.Code {
	var (
		pe   *ParseError
		ue   *UnknownElementError
		me   *InvalidFormatModeError
		mErr *mdwerror.Error
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &pe):
		if pe.Kind == UnknownElementSymbol {
			return mdwerror.CodeUnknownElement
		}
		return mdwerror.CodeFormulaSyntax
	case errors.As(err, &ue):
		return mdwerror.CodeUnknownElement
	case errors.As(err, &me):
		return mdwerror.CodeInvalidFormatMode
	case errors.As(err, &mErr):
		return mErr.Code()
	default:
		return mdwerror.CodeUnknown
	}
}

// Wrap turns err into a structured error carrying the code from CodeFor.
// The message names the formula text when it is known.
func Wrap(err error, operation, text string) *mdwerror.Error {
	if err == nil {
		return nil
	}

	message := operation
	if text != "" {
		message = fmt.Sprintf("formula %q", text)
	}
	wrapped := mdwerror.Wrap(err, message).
		WithCode(CodeFor(err)).
		WithOperation(operation)
	if text != "" {
		wrapped.WithDetail("formula", text)
	}

	var pe *ParseError
	if errors.As(err, &pe) && pe.Position >= 0 {
		wrapped.WithDetail("position", pe.Position)
	}
	return wrapped
}
