package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sales-insights/internal/app"
)

var (
	analyzeInput   string
	analyzeProfile string
	analyzePolicy  string
	analyzeTopN    int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the sales file and print the revenue report",
	RunE: func(cmd *cobra.Command, args []string) error {
		if analyzeTopN < 0 {
			return fmt.Errorf("--top must not be negative")
		}

		opts := app.AnalyzeOptions{
			InputPath: analyzeInput,
			Profile:   analyzeProfile,
			Policy:    analyzePolicy,
			TopN:      analyzeTopN,
		}

		return getApp().Analyze(cmd.Context(), opts)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "Path to the sales CSV file (defaults to config)")
	analyzeCmd.Flags().StringVar(&analyzeProfile, "profile", "", "Input column profile: standard or legacy (defaults to config)")
	analyzeCmd.Flags().StringVar(&analyzePolicy, "policy", "", "Numeric coercion policy: strict or lenient (defaults to config)")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top", 0, "Number of top products to rank (defaults to config)")
}
