package formula

import "github.com/msto63/chemformula/internal/elements"

// IsCharged reports whether the formula carries a charge
func (f *Formula) IsCharged() bool {
	return f.charge != 0
}

// IsRadioactive reports whether any element of the formula has no stable
// isotope
func (f *Formula) IsRadioactive() bool {
	radioactive, _ := IsRadioactiveWith(f, nil)
	return radioactive
}

// IsRadioactiveWith checks radioactivity against table, or the formula's
// own table when table is nil.
func IsRadioactiveWith(f *Formula, table *elements.Table) (bool, error) {
	if table == nil {
		table = f.table
	}

	for _, sym := range f.order {
		e, ok := table.Lookup(sym)
		if !ok {
			return false, &UnknownElementError{Symbol: sym}
		}
		if e.Radioactive {
			return true, nil
		}
	}
	return false, nil
}
