package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
	"github.com/msto63/chemformula/internal/elements"
)

var elementsFormat string

var elementsCmd = &cobra.Command{
	Use:   "elements [symbol]",
	Short: "List the element table or show one element",
	Long: `Lists the configured element table, or shows a single element.

With --format toml or yaml the table is written in a format that can be
edited and referenced from [elements] table_path.

Examples:
  chemformula elements
  chemformula elements Fe
  chemformula elements --format yaml > table.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runElements,
}

func init() {
	rootCmd.AddCommand(elementsCmd)

	elementsCmd.Flags().StringVar(&elementsFormat, "format", "table", "Output format: table, toml or yaml")
}

func runElements(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		e, ok := appTable.Lookup(args[0])
		if !ok {
			return mdwerror.Newf("unknown element %q", args[0]).
				WithCode(mdwerror.CodeNotFound).
				WithDetail("symbol", args[0])
		}
		t := newTable("Z", "Symbol", "Name", "Mass (u)", "Uncertainty", "Radioactive")
		t.Row(elementRow(e)...)
		fmt.Fprintln(out, t.String())
		return nil
	}

	if elementsFormat != "table" {
		format, err := elements.ParseFormat(elementsFormat)
		if err != nil {
			return err
		}
		return elements.Encode(out, appTable, format)
	}

	t := newTable("Z", "Symbol", "Name", "Mass (u)", "Uncertainty", "Radioactive")
	for _, e := range appTable.Entries() {
		t.Row(elementRow(e)...)
	}
	fmt.Fprintln(out, t.String())
	return nil
}

func elementRow(e elements.Entry) []string {
	radioactive := ""
	if e.Radioactive {
		radioactive = "yes"
	}
	return []string{
		strconv.Itoa(e.Number),
		e.Symbol,
		e.Name,
		strconv.FormatFloat(e.Mass, 'f', -1, 64),
		strconv.FormatFloat(e.Uncertainty, 'f', -1, 64),
		radioactive,
	}
}
