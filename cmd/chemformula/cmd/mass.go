package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/chemformula/internal/formula"
)

var (
	massWeight      bool
	massFractions   bool
	massPropagation string
	massCharge      int
)

var massCmd = &cobra.Command{
	Use:   "mass <formula>...",
	Short: "Compute formula masses with uncertainty",
	Long: `Computes the mass of one formula unit (u) or the molar mass
(g mol⁻¹, with --weight) from IUPAC standard atomic weights. The
uncertainty is propagated linearly unless configured otherwise.

Examples:
  chemformula mass H2O
  chemformula mass --weight "CuSO4*5H2O" C6H12O6
  chemformula mass --fractions CaCO3
  chemformula mass --propagation quadrature C60`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMass,
}

func init() {
	rootCmd.AddCommand(massCmd)

	massCmd.Flags().BoolVarP(&massWeight, "weight", "w", false, "Molar mass in g mol⁻¹")
	massCmd.Flags().BoolVarP(&massFractions, "fractions", "f", false, "Show mass fractions per element")
	massCmd.Flags().StringVarP(&massPropagation, "propagation", "p", "", "Uncertainty propagation: linear or quadrature")
	massCmd.Flags().IntVar(&massCharge, "charge", 0, "Net charge")
}

func runMass(cmd *cobra.Command, args []string) error {
	p, err := appConfig.Propagation()
	if err != nil {
		return err
	}
	if massPropagation != "" {
		if p, err = formula.ParsePropagation(massPropagation); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for _, text := range args {
		f, err := buildFormula(text, massCharge)
		if err != nil {
			return err
		}

		m, err := formula.MassWith(f, nil, p)
		if err != nil {
			return formula.Wrap(err, "mass", text)
		}
		if massWeight {
			m.Unit = formula.UnitMolar
		}

		fmt.Fprintf(out, "%s\t%s\t± %s\n",
			formula.Text(f, formula.DefaultRenderOptions()),
			m,
			strconv.FormatFloat(m.Uncertainty, 'g', 2, 64))

		if !massFractions {
			continue
		}

		fractions, err := f.MassFractions()
		if err != nil {
			return formula.Wrap(err, "mass", text)
		}
		t := newTable("Element", "Count", "Mass fraction")
		for sym, count := range f.Elements(formula.ModeHill) {
			t.Row(sym, strconv.Itoa(count), fmt.Sprintf("%.4f %%", 100*fractions[sym]))
		}
		fmt.Fprintln(out, t.String())
	}
	return nil
}
