package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
	mdwlog "github.com/msto63/chemformula/foundation/core/log"
	"github.com/msto63/chemformula/internal/elements"
	"github.com/msto63/chemformula/internal/formula"
	"github.com/msto63/chemformula/pkg/core/health"
	"github.com/msto63/chemformula/pkg/core/version"
)

var doctorTimeout time.Duration

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, element table and catalog",
	Long: `Runs installation checks and prints one row per check.

A custom element table missing elements of the IUPAC table is reported as
degraded; an unreadable catalog as unhealthy.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().DurationVar(&doctorTimeout, "timeout", 10*time.Second, "Timeout for all checks")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	registry := health.NewRegistry("chemformula", version.Application)
	registry.RegisterFunc("config", checkConfig)
	registry.RegisterFunc("elements", checkElements)
	registry.RegisterFunc("catalog", checkCatalog)

	report := registry.CheckWithTimeout(doctorTimeout)

	logger := appLogger.WithName("doctor")
	t := newTable("Check", "Status", "Message", "Duration")
	for _, c := range report.Checks {
		logger.Debug("Check finished", mdwlog.Fields{
			"check":    c.Name,
			"status":   string(c.Status),
			"duration": c.Duration.String(),
		})
		t.Row(c.Name, string(c.Status), c.Message, c.Duration.Round(time.Microsecond).String())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.String())
	fmt.Fprintln(out, report.String())

	if !report.Healthy() {
		return mdwerror.New("installation check failed").
			WithCode(mdwerror.CodeInternal).
			WithDetail("status", string(report.Status))
	}
	return nil
}

func checkConfig(ctx context.Context) health.CheckResult {
	if err := appConfig.Validate(); err != nil {
		return health.Unhealthy(err)
	}
	if appConfigPath == "" {
		return health.Healthy("defaults, no config file found", nil)
	}
	return health.Healthy("loaded from "+appConfigPath, map[string]interface{}{"path": appConfigPath})
}

func checkElements(ctx context.Context) health.CheckResult {
	reference := elements.Default()

	missing := 0
	for _, e := range reference.Entries() {
		if !appTable.Has(e.Symbol) {
			missing++
		}
	}

	// water as a smoke test of the mass computation
	water, err := formula.Build("H2O", formula.Options{Table: appTable})
	if err != nil {
		return health.Degraded("table cannot build H2O: "+err.Error(), nil)
	}
	m, err := water.Weight()
	if err != nil {
		return health.Unhealthy(err)
	}

	details := map[string]interface{}{"elements": appTable.Len(), "missing": missing}
	msg := fmt.Sprintf("%d elements, H2O = %s", appTable.Len(), m)
	if missing > 0 {
		return health.Degraded(fmt.Sprintf("%s, %d IUPAC elements missing", msg, missing), details)
	}
	return health.Healthy(msg, details)
}

func checkCatalog(ctx context.Context) health.CheckResult {
	store, err := openCatalog()
	if err != nil {
		return health.Unhealthy(err)
	}
	defer store.Close()

	entries, err := store.List(ctx)
	if err != nil {
		return health.Unhealthy(err)
	}
	return health.Healthy(fmt.Sprintf("%d formulas in %s", len(entries), appConfig.Catalog.Path),
		map[string]interface{}{"entries": len(entries)})
}
