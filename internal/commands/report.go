package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/finsum-dev/finsum/internal/model"
	"github.com/finsum-dev/finsum/internal/report"
)

func newReportCommand() *cobra.Command {
	var ledgerPath, output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the financial summary report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := loadDataset(ledgerPath)
			if err != nil {
				return err
			}
			if output == "" {
				output = loadConfig().Output.Summary
			}
			return writeTo(cmd, output, func(w io.Writer) error {
				return report.WriteSummary(w, txns)
			})
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger CSV path (overrides finsum.yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", `output path ("-" for stdout, default from finsum.yaml)`)

	return cmd
}

func newExportCommand() *cobra.Command {
	var ledgerPath, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions grouped by vendor and category as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := loadDataset(ledgerPath)
			if err != nil {
				return err
			}
			if output == "" {
				output = loadConfig().Output.Export
			}
			return writeTo(cmd, output, func(w io.Writer) error {
				return report.WriteGroupedCSV(w, txns)
			})
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger CSV path (overrides finsum.yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", `output path ("-" for stdout, default from finsum.yaml)`)

	return cmd
}

func newSearchCommand() *cobra.Command {
	var ledgerPath string

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Find transactions by description keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := loadDataset(ledgerPath)
			if err != nil {
				return err
			}

			matches := report.Search(txns, args[0])
			if len(matches) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No transactions found matching %q.\n", args[0])
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Found %d transaction(s) matching %q:\n", len(matches), args[0])
			for _, t := range matches {
				printTransaction(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger CSV path (overrides finsum.yaml)")

	return cmd
}

func printTransaction(w io.Writer, t model.Transaction) {
	fmt.Fprintf(w, "%s | $%8s | %s (%s)\n",
		t.Date.Format("2006-01-02"), t.Amount.StringFixed(2), t.Vendor, t.Category)
}

// writeTo runs write against a freshly created file, or against stdout when
// output is "-" (or unset).
func writeTo(cmd *cobra.Command, output string, write func(io.Writer) error) error {
	if output == "" || output == "-" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
	return nil
}
