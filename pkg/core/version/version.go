// ============================================================================
// chemformula - Chemical formula toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all chemformula components
const (
	// Application version
	Application = "0.3.0"

	// Component versions
	Parser   = "0.3.0"
	Formula  = "0.3.0"
	Elements = "0.2.0"
	Catalog  = "0.1.0"
	Explorer = "0.1.0"

	// CatalogSchema is the schema version stored in the catalog database
	CatalogSchema = 1
)

// Set at build time via -ldflags "-X .../version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "parser":
		return Parser
	case "formula":
		return Formula
	case "elements":
		return Elements
	case "catalog":
		return Catalog
	case "explorer":
		return Explorer
	default:
		return Application
	}
}

// Info returns a one-line build description
func Info() string {
	return fmt.Sprintf("chemformula %s (commit %s, built %s, %s/%s)",
		Application, Commit, BuildDate, runtime.GOOS, runtime.GOARCH)
}
