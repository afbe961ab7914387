package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/chemformula/internal/formula"
)

var (
	renderRenderer string
	renderMode     string
	renderNoCharge bool
	renderCharge   int
	renderAll      bool
)

var renderCmd = &cobra.Command{
	Use:   "render <formula>",
	Short: "Render a formula as text, Unicode or LaTeX",
	Long: `Renders a formula in the chosen notation and element order.

Defaults come from the [render] section of the config file.

Examples:
  chemformula render H2SO4 --renderer unicode
  chemformula render SO4 --charge -2 --renderer latex
  chemformula render C2H5OH --mode hill
  chemformula render "CuSO4*5H2O" --all`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderRenderer, "renderer", "r", "", "Notation: text, unicode or latex")
	renderCmd.Flags().StringVarP(&renderMode, "mode", "m", "", "Element order: formula, hill or sum")
	renderCmd.Flags().BoolVar(&renderNoCharge, "no-charge", false, "Omit the charge")
	renderCmd.Flags().IntVar(&renderCharge, "charge", 0, "Net charge")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Print every notation in every order")
}

func runRender(cmd *cobra.Command, args []string) error {
	r, opts, err := appConfig.RenderOptions()
	if err != nil {
		return err
	}
	if renderRenderer != "" {
		if r, err = formula.ParseRenderer(renderRenderer); err != nil {
			return err
		}
	}
	if renderMode != "" {
		if opts.Mode, err = formula.ParseMode(renderMode); err != nil {
			return formula.Wrap(err, "render", "")
		}
	}
	if renderNoCharge {
		opts.IncludeCharge = false
	}

	f, err := buildFormula(args[0], renderCharge)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !renderAll {
		s, err := formula.Render(f, r, opts)
		if err != nil {
			return formula.Wrap(err, "render", args[0])
		}
		fmt.Fprintln(out, s)
		return nil
	}

	modes := []formula.Mode{formula.ModeOriginal, formula.ModeHill, formula.ModeSum}
	headers := []string{""}
	for _, mode := range modes {
		headers = append(headers, mode.String())
	}
	t := newTable(headers...)
	for _, r := range formula.Renderers() {
		row := []string{r.String()}
		for _, mode := range modes {
			s, err := formula.Render(f, r, formula.RenderOptions{Mode: mode, IncludeCharge: opts.IncludeCharge})
			if err != nil {
				return formula.Wrap(err, "render", args[0])
			}
			row = append(row, s)
		}
		t.Row(row...)
	}
	fmt.Fprintln(out, t.String())
	return nil
}
