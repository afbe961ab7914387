package formula

import (
	"iter"
	"sort"
	"strings"
)

// Mode selects the element order used for rendering
type Mode int

const (
	// ModeOriginal renders the text as written. A formula built from a
	// composition without text falls back to ModeSum.
	ModeOriginal Mode = iota
	// ModeHill puts carbon first and hydrogen second when carbon is
	// present, everything else ascending by symbol.
	ModeHill
	// ModeSum keeps first-occurrence order of the parsed text.
	ModeSum
)

// String returns the canonical mode name
func (m Mode) String() string {
	switch m {
	case ModeOriginal:
		return "formula"
	case ModeHill:
		return "hill"
	case ModeSum:
		return "sum"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the defined modes
func (m Mode) Valid() bool {
	return m >= ModeOriginal && m <= ModeSum
}

// ParseMode maps "formula", "hill", "hillformula", "sum" and "sumformula"
// case-insensitively to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "formula":
		return ModeOriginal, nil
	case "hill", "hillformula":
		return ModeHill, nil
	case "sum", "sumformula":
		return ModeSum, nil
	default:
		return ModeOriginal, &InvalidFormatModeError{Mode: s}
	}
}

// Elements yields (symbol, count) pairs in the order of mode. ModeOriginal
// yields the order of appearance in the text, which is the sum order. The
// sequence can be ranged over any number of times.
func (f *Formula) Elements(mode Mode) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, sym := range f.orderedSymbols(mode) {
			if !yield(sym, f.composition[sym]) {
				return
			}
		}
	}
}

func (f *Formula) orderedSymbols(mode Mode) []string {
	if mode != ModeHill {
		return f.order
	}
	return hillOrder(f.order, f.composition)
}

// hillOrder sorts symbols by the Hill convention
func hillOrder(symbols []string, composition map[string]int) []string {
	out := make([]string, 0, len(symbols))
	rest := make([]string, 0, len(symbols))

	_, hasCarbon := composition["C"]
	for _, sym := range symbols {
		if hasCarbon && (sym == "C" || sym == "H") {
			continue
		}
		rest = append(rest, sym)
	}
	sort.Strings(rest)

	if hasCarbon {
		out = append(out, "C")
		if _, ok := composition["H"]; ok {
			out = append(out, "H")
		}
	}
	return append(out, rest...)
}
