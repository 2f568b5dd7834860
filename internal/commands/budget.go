package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finsum-dev/finsum/internal/budget"
)

func newBudgetCommand() *cobra.Command {
	var ledgerPath, budgetPath string

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Compare spending by category against the budget file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := budgetPath
			if path == "" {
				path = loadConfig().Budget
			}

			svc, err := budget.Load(path)
			if err != nil {
				return err
			}

			txns, err := loadDataset(ledgerPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-25s %10s %10s %10s\n", "Category", "Budget", "Spent", "Remaining")
			for _, line := range svc.Compare(txns) {
				flag := ""
				switch {
				case !line.Budgeted:
					flag = "  (unbudgeted)"
				case line.Remaining.IsNegative():
					flag = "  OVER"
				}
				fmt.Fprintf(out, "%-25s %10s %10s %10s%s\n",
					line.Category,
					line.Budget.StringFixed(2),
					line.Actual.StringFixed(2),
					line.Remaining.StringFixed(2),
					flag)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger CSV path (overrides finsum.yaml)")
	cmd.Flags().StringVar(&budgetPath, "budget", "", "budget YAML path (overrides finsum.yaml)")

	return cmd
}
