package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/chemformula/foundation/core/log"
	"github.com/msto63/chemformula/internal/catalog"
	"github.com/msto63/chemformula/internal/elements"
	"github.com/msto63/chemformula/internal/formula"
	"github.com/msto63/chemformula/pkg/core/config"
	"github.com/msto63/chemformula/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
)

// state shared by all commands, set up before each run
var (
	appConfig     *config.Config
	appConfigPath string
	appLogger     *mdwlog.Logger
	appTable      *elements.Table
)

var rootCmd = &cobra.Command{
	Use:   "chemformula",
	Short: "Chemical formula toolkit",
	Long: `chemformula parses chemical formulas, renders them as plain text,
Unicode or mhchem LaTeX, and computes formula masses from IUPAC standard
atomic weights.

Formula syntax:
  H2O  Ca(OH)2  K4Fe(CN)6  CuSO4*5H2O  Fe(CN)6*5H2O

Charges are given separately with --charge.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

// ExitCode maps err to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return formula.CodeFor(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $"+config.EnvConfigPath+", ./chemformula.toml, ~/.config/chemformula/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")
}

// setup loads configuration, logger and element table
func setup(cmd *cobra.Command, args []string) error {
	cfg, path, err := config.LoadFromEnv(cfgFile)
	if err != nil {
		return err
	}

	appConfig = cfg
	appConfigPath = path
	appLogger = logging.FromConfig(cfg, "chemformula", verbose)
	mdwlog.SetDefault(appLogger)

	if path != "" {
		appLogger.Debug("Configuration loaded", mdwlog.Fields{"path": path})
	}

	appTable = elements.Default()
	if cfg.Elements.TablePath != "" {
		table, err := elements.LoadFile(cfg.Elements.TablePath)
		if err != nil {
			return err
		}
		appTable = table
		appLogger.Debug("Element table loaded", mdwlog.Fields{
			"path":     cfg.Elements.TablePath,
			"elements": table.Len(),
		})
	}

	return nil
}

// buildFormula builds text against the configured table
func buildFormula(text string, charge int) (*formula.Formula, error) {
	f, err := formula.Build(text, formula.Options{
		Charge: charge,
		Table:  appTable,
		Logger: appLogger,
	})
	if err != nil {
		return nil, formula.Wrap(err, "build", text)
	}
	return f, nil
}

// openCatalog opens the configured catalog database
func openCatalog() (*catalog.SQLiteStore, error) {
	return catalog.Open(catalog.Config{
		Path:        appConfig.Catalog.Path,
		BusyTimeout: appConfig.Catalog.BusyTimeout.Duration,
		Table:       appTable,
		Logger:      appLogger,
	})
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if verbose && appLogger != nil {
		appLogger.LogError(err)
	}
}
