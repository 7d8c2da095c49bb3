package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sales-insights/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "salesinsight %s (commit %s, built %s)\n", version.Version, version.Commit, version.BuildDate)
	},
}
