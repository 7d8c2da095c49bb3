package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sales-insights/internal/app"
)

var (
	exportInput   string
	exportTopN    int
	exportPNGPath string
	exportCSVPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the product revenue ranking as CSV and/or PNG chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportTopN < 0 {
			return fmt.Errorf("--top must not be negative")
		}

		opts := app.ExportOptions{
			InputPath: exportInput,
			TopN:      exportTopN,
			PNGPath:   exportPNGPath,
			CSVPath:   exportCSVPath,
		}

		return getApp().Export(cmd.Context(), opts)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportInput, "input", "", "Path to the sales CSV file (defaults to config)")
	exportCmd.Flags().IntVar(&exportTopN, "top", 0, "Number of top products to export (defaults to config)")
	exportCmd.Flags().StringVar(&exportPNGPath, "png", "", "Path to write PNG chart")
	exportCmd.Flags().StringVar(&exportCSVPath, "csv", "", "Path to write CSV data")
}
