package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finsum-dev/finsum/internal/merchant"
)

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <description>",
		Short: "Print the canonical vendor label for a raw description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), merchant.Classify(args[0]))
			return nil
		},
	}
}
