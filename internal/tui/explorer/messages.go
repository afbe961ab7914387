// ============================================================================
// chemformula - Chemical formula toolkit
// ============================================================================
//
// Package:     explorer
// Description: Message types for async catalog operations in the explorer
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package explorer

import (
	"github.com/msto63/chemformula/internal/catalog"
)

// Message types for tea.Cmd async operations

// catalogLoadedMsg is sent when the catalog entries are loaded
type catalogLoadedMsg struct {
	entries []*catalog.Entry
	err     error
}

// entrySavedMsg is sent when the current formula was added to the catalog
type entrySavedMsg struct {
	entry *catalog.Entry
	err   error
}
