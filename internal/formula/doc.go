// ============================================================================
// chemformula - Chemical formula toolkit
// ============================================================================
//
// Package:     formula
// Description: Immutable chemical formulas with ordering, rendering and mass
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package formula builds validated, immutable chemical formulas from text
// such as "Fe(CN)6*5H2O" or from an explicit element composition, and
// derives text, Unicode and LaTeX (mhchem) renderings, Hill and sum
// orderings, formula mass, molar mass and mass fractions from them.
//
// All functions are pure. A *Formula never changes after Build returns and
// may be shared between goroutines.
package formula
