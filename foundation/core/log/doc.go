// Package log provides structured logging for chemformula.
//
// Package: log
// Title: Structured Logging
// Description: Implements a small structured logger with levels, persistent
//              context fields, JSON and text output, and integration with the
//              structured error package. The formula core logs rejected input
//              at debug level; front ends log at info and above.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: Removed async buffering, timers and audit level; default output is stderr
//
// Usage:
//
//	import mdwlog "github.com/msto63/chemformula/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithField("component", "parser")
//
//	logger.Debug("formula rejected", mdwlog.Fields{
//		"input":    "H2O)",
//		"position": 3,
//	})
//	logger.LogError(err)
package log
