package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finsum-dev/finsum/internal/budget"
	"github.com/finsum-dev/finsum/internal/config"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default finsum.yaml and a starter budget.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized finsum project in %s\n", absDir)
			return nil
		},
	}
}

func runInit(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default()
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return err
	}

	starter := &budget.File{
		Categories: []budget.CategoryBudget{
			{Name: "Groceries", Monthly: 400},
			{Name: "Dining", Monthly: 150},
			{Name: "Travel", Monthly: 100},
		},
	}
	if err := budget.Save(filepath.Join(dir, cfg.Budget), starter); err != nil {
		return err
	}

	return nil
}
