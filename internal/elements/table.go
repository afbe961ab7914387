// ============================================================================
// chemformula - Chemical formula toolkit
// ============================================================================
//
// Package:     elements
// Description: Immutable atomic weight table keyed by element symbol
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package elements

import (
	"sort"
	"sync"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
)

// Entry describes one element of the table
type Entry struct {
	Number      int     `toml:"number" yaml:"number"`
	Symbol      string  `toml:"symbol" yaml:"symbol"`
	Name        string  `toml:"name" yaml:"name"`
	Mass        float64 `toml:"mass" yaml:"mass"`
	Uncertainty float64 `toml:"uncertainty" yaml:"uncertainty"`
	Radioactive bool    `toml:"radioactive,omitempty" yaml:"radioactive,omitempty"`
}

// Table is a read-only lookup from element symbol to Entry.
// It is safe for concurrent use.
type Table struct {
	entries  []Entry
	bySymbol map[string]int
}

// NewTable validates entries and builds a table ordered by atomic number.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, invalidTable("table has no elements", -1, "")
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})

	t := &Table{
		entries:  sorted,
		bySymbol: make(map[string]int, len(sorted)),
	}
	numbers := make(map[int]string, len(sorted))

	for i, e := range sorted {
		if !validSymbol(e.Symbol) {
			return nil, invalidTable("malformed element symbol", e.Number, e.Symbol)
		}
		if e.Number <= 0 {
			return nil, invalidTable("atomic number must be positive", e.Number, e.Symbol)
		}
		if e.Mass <= 0 {
			return nil, invalidTable("mass must be positive", e.Number, e.Symbol)
		}
		if e.Uncertainty < 0 {
			return nil, invalidTable("uncertainty must not be negative", e.Number, e.Symbol)
		}
		if _, dup := t.bySymbol[e.Symbol]; dup {
			return nil, invalidTable("duplicate element symbol", e.Number, e.Symbol)
		}
		if other, dup := numbers[e.Number]; dup {
			return nil, invalidTable("duplicate atomic number", e.Number, e.Symbol).
				WithDetail("other_symbol", other)
		}
		t.bySymbol[e.Symbol] = i
		numbers[e.Number] = e.Symbol
	}

	return t, nil
}

func invalidTable(msg string, number int, symbol string) *mdwerror.Error {
	err := mdwerror.New(msg).
		WithCode(mdwerror.CodeInvalidTable).
		WithOperation("elements.NewTable")
	if number >= 0 {
		err.WithDetail("number", number)
	}
	if symbol != "" {
		err.WithDetail("symbol", symbol)
	}
	return err
}

// validSymbol accepts one uppercase ASCII letter optionally followed by one
// lowercase ASCII letter.
func validSymbol(s string) bool {
	switch len(s) {
	case 1:
		return isUpper(s[0])
	case 2:
		return isUpper(s[0]) && s[1] >= 'a' && s[1] <= 'z'
	default:
		return false
	}
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// Lookup returns the entry for symbol
func (t *Table) Lookup(symbol string) (Entry, bool) {
	i, ok := t.bySymbol[symbol]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Has reports whether symbol is a known element
func (t *Table) Has(symbol string) bool {
	_, ok := t.bySymbol[symbol]
	return ok
}

// Len returns the number of elements
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of all entries ordered by atomic number
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the embedded IUPAC table. It is parsed on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(iupacData, FormatTOML)
		if err != nil {
			panic("elements: embedded table is invalid: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}
