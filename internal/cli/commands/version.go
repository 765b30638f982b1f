package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand builds "silt version".
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "silt %s (build %s, commit %s)\n", version, buildDate, gitCommit)
			return nil
		},
	}
}
