package formula

import (
	"fmt"
	"strconv"
	"strings"

	mdwlog "github.com/msto63/chemformula/foundation/core/log"
	"github.com/msto63/chemformula/internal/elements"
	"github.com/msto63/chemformula/internal/parser"
)

// Options configures Build. The zero value parses text against the
// embedded IUPAC table with charge 0 and no name.
type Options struct {
	// Composition, when non-nil, is used instead of parsing the text.
	// The text is then kept only for original-order rendering.
	Composition map[string]int

	Charge int
	Name   string

	// Table defaults to elements.Default()
	Table *elements.Table

	// Logger defaults to the process default logger
	Logger *mdwlog.Logger
}

// Formula is an immutable chemical formula
type Formula struct {
	text        string
	composition map[string]int
	order       []string // sum order
	charge      int
	name        string
	table       *elements.Table
}

// Build creates a Formula from text, or from opts.Composition when set.
// No Formula is returned on error.
func Build(text string, opts Options) (*Formula, error) {
	table := opts.Table
	if table == nil {
		table = elements.Default()
	}

	f := &Formula{
		text:   text,
		charge: opts.Charge,
		name:   opts.Name,
		table:  table,
	}

	var err error
	if opts.Composition != nil {
		f.composition, f.order, err = fromComposition(opts.Composition, table)
	} else {
		var tree *parser.Tree
		tree, err = parser.New(table, parser.Options{Logger: opts.Logger}).Parse(text)
		if err == nil {
			f.composition, f.order, err = fromTree(tree)
		}
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

// Parse is Build with default options
func Parse(text string) (*Formula, error) {
	return Build(text, Options{})
}

// MustBuild is like Build but panics on error. It is meant for constants
// and tests.
func MustBuild(text string, opts Options) *Formula {
	f, err := Build(text, opts)
	if err != nil {
		panic("formula: " + err.Error())
	}
	return f
}

// Text returns the text the formula was built from
func (f *Formula) Text() string { return f.text }

// Charge returns the electrical charge
func (f *Formula) Charge() int { return f.charge }

// Table returns the element table the formula was validated against
func (f *Formula) Table() *elements.Table { return f.table }

// Name returns the optional name
func (f *Formula) Name() (string, bool) {
	return f.name, f.name != ""
}

// Composition returns a copy of the element counts
func (f *Formula) Composition() map[string]int {
	out := make(map[string]int, len(f.composition))
	for k, v := range f.composition {
		out[k] = v
	}
	return out
}

// Count returns the number of atoms of symbol, 0 if absent
func (f *Formula) Count(symbol string) int {
	return f.composition[symbol]
}

// Symbols returns the elements in sum order
func (f *Formula) Symbols() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Atoms returns the total number of atoms in one formula unit
func (f *Formula) Atoms() int {
	n := 0
	for _, c := range f.composition {
		n += c
	}
	return n
}

// WithCharge returns a copy of f with a different charge
func (f *Formula) WithCharge(charge int) *Formula {
	clone := *f
	clone.charge = charge
	return &clone
}

// Equal reports whether both formulas have the same composition and charge
func (f *Formula) Equal(other *Formula) bool {
	if other == nil || f.charge != other.charge || len(f.composition) != len(other.composition) {
		return false
	}
	for k, v := range f.composition {
		if other.composition[k] != v {
			return false
		}
	}
	return true
}

// String returns a debugging representation such as
// Formula("H2O", {H:2, O:1}, 0, "water")
func (f *Formula) String() string {
	parts := make([]string, len(f.order))
	for i, sym := range f.order {
		parts[i] = sym + ":" + strconv.Itoa(f.composition[sym])
	}

	s := fmt.Sprintf("Formula(%q, {%s}, %d", f.text, strings.Join(parts, ", "), f.charge)
	if f.name != "" {
		s += fmt.Sprintf(", %q", f.name)
	}
	return s + ")"
}
