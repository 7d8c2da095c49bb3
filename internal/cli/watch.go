package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"sales-insights/internal/app"
)

var (
	watchInput    string
	watchProfile  string
	watchPolicy   string
	watchTopN     int
	watchInterval time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "按固定间隔重跑分析并输出报告",
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchInterval < 0 {
			return errors.New("--interval 不能为负数")
		}

		opts := app.WatchOptions{
			InputPath: watchInput,
			Profile:   watchProfile,
			Policy:    watchPolicy,
			TopN:      watchTopN,
			Interval:  watchInterval,
		}

		return getApp().Watch(cmd.Context(), opts)
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchInput, "input", "", "销售数据 CSV 路径，默认取配置")
	watchCmd.Flags().StringVar(&watchProfile, "profile", "", "输入列布局: standard 或 legacy")
	watchCmd.Flags().StringVar(&watchPolicy, "policy", "", "数值解析策略: strict 或 lenient")
	watchCmd.Flags().IntVar(&watchTopN, "top", 0, "排行榜产品数量，默认取配置")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "重跑间隔，默认取配置")
}
