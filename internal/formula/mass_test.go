package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/chemformula/internal/elements"
)

func TestMassOfWater(t *testing.T) {
	water := MustBuild("H2O", Options{Name: "water"})

	m, err := water.Mass()
	require.NoError(t, err)
	assert.InDelta(t, 18.015, m.Value, 1e-9)
	assert.InDelta(t, 0.0014, m.Uncertainty, 1e-12)
	assert.Equal(t, UnitDalton, m.Unit)
	assert.Equal(t, "18.015 u", m.String())

	w, err := water.Weight()
	require.NoError(t, err)
	assert.Equal(t, m.Value, w.Value)
	assert.Equal(t, m.Uncertainty, w.Uncertainty)
	assert.Equal(t, "18.015 g mol⁻¹", w.String())
}

func TestMassAdditivity(t *testing.T) {
	hydrate := MustBuild("CuSO4*5H2O", Options{})
	anhydrous := MustBuild("CuSO4", Options{})
	water := MustBuild("H2O", Options{})

	mh, err := hydrate.Mass()
	require.NoError(t, err)
	ma, err := anhydrous.Mass()
	require.NoError(t, err)
	mw, err := water.Mass()
	require.NoError(t, err)

	assert.InDelta(t, ma.Value+5*mw.Value, mh.Value, 1e-9)
	assert.InDelta(t, 249.68, mh.Value, 0.01)
}

func TestMassQuadrature(t *testing.T) {
	water := MustBuild("H2O", Options{})

	m, err := MassWith(water, nil, PropagationQuadrature)
	require.NoError(t, err)
	assert.InDelta(t, 18.015, m.Value, 1e-9)
	assert.InDelta(t, math.Sqrt(0.0004*0.0004+0.001*0.001), m.Uncertainty, 1e-12)

	_, err = MassWith(water, nil, Propagation(5))
	assert.Error(t, err)
}

func TestMassUnknownElement(t *testing.T) {
	table, err := elements.NewTable([]elements.Entry{{Number: 1, Symbol: "H", Mass: 1.008}})
	require.NoError(t, err)
	water := MustBuild("H2O", Options{})

	_, err = MassWith(water, table, PropagationLinear)
	var ue *UnknownElementError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "O", ue.Symbol)

	_, err = MassFractionsWith(water, table)
	require.ErrorAs(t, err, &ue)
}

func TestMassFractions(t *testing.T) {
	for _, s := range []string{"H2O", "Fe(CN)6*5H2O", "C6H12O6", "UO2F2*H2O", "Og"} {
		t.Run(s, func(t *testing.T) {
			f := MustBuild(s, Options{})
			fractions, err := f.MassFractions()
			require.NoError(t, err)
			assert.Len(t, fractions, len(f.Composition()))

			sum := 0.0
			for _, v := range fractions {
				assert.Greater(t, v, 0.0)
				sum += v
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		})
	}

	fractions, err := MustBuild("H2O", Options{}).MassFractions()
	require.NoError(t, err)
	assert.InDelta(t, 2*1.008/18.015, fractions["H"], 1e-12)
}

func TestMeasurementString(t *testing.T) {
	tests := []struct {
		m    Measurement
		want string
	}{
		{Measurement{Value: 18.015, Uncertainty: 0.0014, Unit: UnitMolar}, "18.015 g mol⁻¹"},
		{Measurement{Value: 98, Unit: UnitDalton}, "98 u"},
		{Measurement{Value: 207.2, Uncertainty: 1.1}, "207"},
		{Measurement{Value: 58.933194, Uncertainty: 0.000003, Unit: UnitDalton}, "58.933194 u"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.m.String())
	}
}

func TestParsePropagation(t *testing.T) {
	p, err := ParsePropagation("Quadrature")
	require.NoError(t, err)
	assert.Equal(t, PropagationQuadrature, p)

	p, err = ParsePropagation("")
	require.NoError(t, err)
	assert.Equal(t, PropagationLinear, p)

	_, err = ParsePropagation("monte-carlo")
	assert.Error(t, err)
}
