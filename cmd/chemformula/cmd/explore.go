package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/chemformula/foundation/core/log"
	"github.com/msto63/chemformula/internal/tui/explorer"
)

var exploreCharge int

var exploreCmd = &cobra.Command{
	Use:     "explore [formula]",
	Aliases: []string{"tui"},
	Short:   "Start the interactive formula explorer",
	Long: `Starts the interactive formula explorer.

The explorer renders the formula in every notation and order while you
type, and shows mass, molar mass and mass fractions.

Keys:
  Tab / Shift+Tab   Switch between formula, charge and name
  Ctrl+T            Toggle linear / quadrature uncertainty
  Ctrl+E            Toggle charge in rendered output
  Ctrl+S            Save the formula to the catalog under the given name
  Ctrl+N / Ctrl+B   Next / previous catalog entry
  Esc / Ctrl+C      Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().IntVar(&exploreCharge, "charge", 0, "Initial charge")
}

func runExplore(cmd *cobra.Command, args []string) error {
	p, err := appConfig.Propagation()
	if err != nil {
		return err
	}
	_, opts, err := appConfig.RenderOptions()
	if err != nil {
		return err
	}

	cfg := explorer.DefaultConfig()
	cfg.Table = appTable
	cfg.Propagation = p
	cfg.IncludeCharge = opts.IncludeCharge
	cfg.Charge = exploreCharge
	cfg.Logger = mdwlog.Discard()
	if len(args) == 1 {
		cfg.Formula = args[0]
	}

	// The explorer works without a catalog
	store, err := openCatalog()
	if err != nil {
		appLogger.WarnWithErr("Catalog unavailable, saving disabled", err, mdwlog.Fields{
			"path": appConfig.Catalog.Path,
		})
	} else {
		defer store.Close()
		cfg.Store = store
	}
	return explorer.Run(cfg)
}
