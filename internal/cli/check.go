package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sales-insights/internal/app"
)

var (
	checkInput   string
	checkProfile string
	checkPolicy  string
	checkLimit   int
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Inspect the sales file and list rejected rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkLimit <= 0 {
			return fmt.Errorf("--limit must be greater than zero")
		}

		opts := app.CheckOptions{
			InputPath: checkInput,
			Profile:   checkProfile,
			Policy:    checkPolicy,
			Limit:     checkLimit,
		}

		return getApp().Check(cmd.Context(), opts)
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkInput, "input", "", "Path to the sales CSV file (defaults to config)")
	checkCmd.Flags().StringVar(&checkProfile, "profile", "", "Input column profile: standard or legacy (defaults to config)")
	checkCmd.Flags().StringVar(&checkPolicy, "policy", "", "Numeric coercion policy: strict or lenient (defaults to config)")
	checkCmd.Flags().IntVar(&checkLimit, "limit", 20, "Number of rejections to display")
}
