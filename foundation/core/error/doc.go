// Package error provides structured error handling for chemformula.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements an error type carrying a code, severity, the failing
//              operation and free-form details. Front ends (configuration,
//              catalog, command line) wrap the typed errors of the formula core
//              with it so that exit status and log level follow the code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Formula, element table and catalog codes; exit status mapping
//
// Usage:
//
//	import mdwerror "github.com/msto63/chemformula/foundation/core/error"
//
//	err := mdwerror.Wrap(parseErr, "cannot add formula to catalog").
//		WithCode(mdwerror.CodeFormulaSyntax).
//		WithDetail("formula", "H2O)").
//		WithOperation("catalog.Add")
//
//	if mdwerror.HasCode(err, mdwerror.CodeFormulaSyntax) {
//		os.Exit(mdwerror.GetCode(err).ExitCode())
//	}
package error
