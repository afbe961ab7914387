package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
	"github.com/msto63/chemformula/internal/catalog"
	"github.com/msto63/chemformula/internal/formula"
)

var catalogCharge int

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the catalog of named formulas",
	Long: `The catalog stores named formulas in a local SQLite database
([catalog] path in the config file). Every formula is validated before it
is stored.

Examples:
  chemformula catalog add sulfate SO4 --charge -2
  chemformula catalog list
  chemformula catalog show sulfate
  chemformula catalog export > formulas.yaml
  chemformula catalog import formulas.yaml`,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add <name> <formula>",
	Short: "Add a formula",
	Args:  cobra.ExactArgs(2),
	RunE:  runCatalogAdd,
}

var catalogListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all formulas",
	Args:    cobra.NoArgs,
	RunE:    runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <name|id>",
	Short: "Show a formula with its renderings and mass",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogRmCmd = &cobra.Command{
	Use:     "rm <name|id>",
	Aliases: []string{"delete"},
	Short:   "Remove a formula",
	Args:    cobra.ExactArgs(1),
	RunE:    runCatalogRm,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Import formulas from a YAML export",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogImport,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all formulas as YAML (stdout by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogExport,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogRmCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	catalogAddCmd.Flags().IntVar(&catalogCharge, "charge", 0, "Net charge")
}

// withCatalog opens the catalog, runs fn and closes it again
func withCatalog(cmd *cobra.Command, fn func(ctx context.Context, s catalog.Store) error) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, store)
}

func runCatalogAdd(cmd *cobra.Command, args []string) error {
	return withCatalog(cmd, func(ctx context.Context, s catalog.Store) error {
		e := &catalog.Entry{Name: args[0], Text: args[1], Charge: catalogCharge}
		if err := s.Add(ctx, e); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", e.Name, e.ID)
		return nil
	})
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	return withCatalog(cmd, func(ctx context.Context, s catalog.Store) error {
		entries, err := s.List(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "Catalog is empty.")
			return nil
		}

		t := newTable("Name", "Formula", "Charge", "ID", "Created")
		for _, e := range entries {
			t.Row(e.Name, e.Text, formula.TextCharge(e.Charge), e.ID.String(), e.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		fmt.Fprintln(out, t.String())
		return nil
	})
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	return withCatalog(cmd, func(ctx context.Context, s catalog.Store) error {
		e, err := catalog.Resolve(ctx, s, args[0])
		if err != nil {
			return err
		}

		f, err := e.Formula(appTable)
		if err != nil {
			return formula.Wrap(err, "catalog.show", e.Text)
		}
		weight, err := f.Weight()
		if err != nil {
			return formula.Wrap(err, "catalog.show", e.Text)
		}

		opts := formula.DefaultRenderOptions()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(e.Name))
		fmt.Fprintf(out, "  ID:       %s\n", e.ID)
		fmt.Fprintf(out, "  Formula:  %s\n", formula.Text(f, opts))
		fmt.Fprintf(out, "  Unicode:  %s\n", formula.Unicode(f, opts))
		fmt.Fprintf(out, "  LaTeX:    %s\n", formula.LaTeX(f, opts))
		fmt.Fprintf(out, "  Hill:     %s\n", formula.HillFormula(f))
		fmt.Fprintf(out, "  Weight:   %s\n", weight)
		fmt.Fprintf(out, "  Created:  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		return nil
	})
}

func runCatalogRm(cmd *cobra.Command, args []string) error {
	return withCatalog(cmd, func(ctx context.Context, s catalog.Store) error {
		e, err := catalog.Resolve(ctx, s, args[0])
		if err != nil {
			return err
		}
		if err := s.Delete(ctx, e.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", e.Name)
		return nil
	})
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return mdwerror.Wrap(err, "cannot open import file").
				WithCode(mdwerror.CodeImportError).
				WithDetail("path", args[0])
		}
		defer file.Close()
		r = file
	}

	return withCatalog(cmd, func(ctx context.Context, s catalog.Store) error {
		n, err := catalog.Import(ctx, s, r, appTable)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d formulas\n", n)
		return nil
	})
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	var w io.Writer = cmd.OutOrStdout()
	if len(args) == 1 {
		file, err := os.Create(args[0])
		if err != nil {
			return mdwerror.Wrap(err, "cannot create export file").
				WithCode(mdwerror.CodeInvalidInput).
				WithDetail("path", args[0])
		}
		defer file.Close()
		w = file
	}

	return withCatalog(cmd, func(ctx context.Context, s catalog.Store) error {
		return catalog.Export(ctx, s, w)
	})
}
