// Package commands wires the finsum CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finsum-dev/finsum/internal/buildinfo"
	"github.com/finsum-dev/finsum/internal/config"
	"github.com/finsum-dev/finsum/internal/ledger"
	"github.com/finsum-dev/finsum/internal/logger"
	"github.com/finsum-dev/finsum/internal/model"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "finsum",
		Short:   "Normalize a messy transaction ledger and report on it",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newReportCommand(),
		newExportCommand(),
		newSearchCommand(),
		newBudgetCommand(),
		newClassifyCommand(),
	)

	return rootCmd
}

// loadConfig reads finsum.yaml from the working directory, falling back to
// defaults when it does not exist.
func loadConfig() *config.Config {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		return config.Default()
	}
	return cfg
}

// loadDataset loads the normalized, vendor-annotated dataset. The flag value
// overrides the configured ledger path. On failure no dataset is returned, so
// no consumer ever sees a partial load.
func loadDataset(ledgerFlag string) ([]model.Transaction, error) {
	path := ledgerFlag
	if path == "" {
		path = loadConfig().Ledger
	}
	return ledger.Load(path, logger.New())
}
