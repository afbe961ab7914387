package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
	"github.com/msto63/chemformula/internal/elements"
)

// Unit labels a Measurement
type Unit string

const (
	// UnitDalton is the unified atomic mass unit, per formula unit
	UnitDalton Unit = "u"
	// UnitMolar is grams per mole of formula units
	UnitMolar Unit = "g mol⁻¹"
)

// Measurement is a value with its uncertainty
type Measurement struct {
	Value       float64
	Uncertainty float64
	Unit        Unit
}

// String rounds the value to the first significant digit of the
// uncertainty, e.g. "18.015 g mol⁻¹". Exact values keep all digits.
func (m Measurement) String() string {
	var value string
	if m.Uncertainty > 0 {
		decimals := int(-math.Floor(math.Log10(m.Uncertainty)))
		decimals = max(0, min(decimals, 12))
		value = strconv.FormatFloat(m.Value, 'f', decimals, 64)
	} else {
		value = strconv.FormatFloat(m.Value, 'f', -1, 64)
	}

	if m.Unit == "" {
		return value
	}
	return value + " " + string(m.Unit)
}

// Propagation selects how element uncertainties are combined
type Propagation int

const (
	// PropagationLinear sums count × uncertainty, a conservative bound
	PropagationLinear Propagation = iota
	// PropagationQuadrature takes the root of the summed squares of
	// count × uncertainty
	PropagationQuadrature
)

// String returns the propagation name
func (p Propagation) String() string {
	switch p {
	case PropagationLinear:
		return "linear"
	case PropagationQuadrature:
		return "quadrature"
	default:
		return "unknown"
	}
}

// ParsePropagation maps "linear" and "quadrature" case-insensitively
func ParsePropagation(s string) (Propagation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "":
		return PropagationLinear, nil
	case "quadrature", "quadratic":
		return PropagationQuadrature, nil
	default:
		return PropagationLinear, mdwerror.Newf("unknown uncertainty propagation %q", s).
			WithCode(mdwerror.CodeInvalidInput)
	}
}

// Mass returns the mass of one formula unit in u using the formula's table
// and linear uncertainty propagation.
func (f *Formula) Mass() (Measurement, error) {
	return MassWith(f, nil, PropagationLinear)
}

// Weight returns the molar mass in g mol⁻¹. The numbers equal Mass.
func (f *Formula) Weight() (Measurement, error) {
	m, err := f.Mass()
	if err != nil {
		return Measurement{}, err
	}
	m.Unit = UnitMolar
	return m, nil
}

// MassWith computes the formula mass against table, or the formula's own
// table when table is nil.
func MassWith(f *Formula, table *elements.Table, p Propagation) (Measurement, error) {
	if table == nil {
		table = f.table
	}

	var value, linear, squares float64
	for _, sym := range f.order {
		e, ok := table.Lookup(sym)
		if !ok {
			return Measurement{}, &UnknownElementError{Symbol: sym}
		}
		n := float64(f.composition[sym])
		value += n * e.Mass
		linear += n * e.Uncertainty
		squares += (n * e.Uncertainty) * (n * e.Uncertainty)
	}

	m := Measurement{Value: value, Unit: UnitDalton}
	switch p {
	case PropagationLinear:
		m.Uncertainty = linear
	case PropagationQuadrature:
		m.Uncertainty = math.Sqrt(squares)
	default:
		return Measurement{}, fmt.Errorf("unknown propagation %d", int(p))
	}
	return m, nil
}

// MassFractions returns the mass fraction of every element. The fractions
// sum to 1.
func (f *Formula) MassFractions() (map[string]float64, error) {
	return MassFractionsWith(f, nil)
}

// MassFractionsWith computes mass fractions against table, or the
// formula's own table when table is nil.
func MassFractionsWith(f *Formula, table *elements.Table) (map[string]float64, error) {
	if table == nil {
		table = f.table
	}

	total, err := MassWith(f, table, PropagationLinear)
	if err != nil {
		return nil, err
	}

	fractions := make(map[string]float64, len(f.order))
	for _, sym := range f.order {
		e, _ := table.Lookup(sym)
		fractions[sym] = float64(f.composition[sym]) * e.Mass / total.Value
	}
	return fractions, nil
}
