package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/chemformula/internal/formula"
)

var (
	parseCharge int
	parseMode   string
)

var parseCmd = &cobra.Command{
	Use:   "parse <formula>",
	Short: "Show the elemental composition of a formula",
	Long: `Parses a formula and prints one row per element with its count.

Examples:
  chemformula parse H2O
  chemformula parse "K4Fe(CN)6" --mode hill
  chemformula parse SO4 --charge -2`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().IntVar(&parseCharge, "charge", 0, "Net charge")
	parseCmd.Flags().StringVar(&parseMode, "mode", "formula", "Row order: formula, hill or sum")
}

func runParse(cmd *cobra.Command, args []string) error {
	mode, err := formula.ParseMode(parseMode)
	if err != nil {
		return formula.Wrap(err, "parse", "")
	}

	f, err := buildFormula(args[0], parseCharge)
	if err != nil {
		return err
	}

	t := newTable("Element", "Name", "Count")
	for sym, count := range f.Elements(mode) {
		name := ""
		if e, ok := f.Table().Lookup(sym); ok {
			name = e.Name
		}
		t.Row(sym, name, strconv.Itoa(count))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(formula.Text(f, formula.DefaultRenderOptions())))
	fmt.Fprintln(out, t.String())
	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("Hill: %s  atoms: %d  charge: %d",
		formula.HillFormula(f), f.Atoms(), f.Charge())))
	return nil
}
