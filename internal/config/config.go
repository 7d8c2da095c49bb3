package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"sales-insights/internal/logging"
)

// Config materialises application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Logging  logging.Config `mapstructure:"logging"`
	Input    InputConfig    `mapstructure:"input"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Watch    WatchConfig    `mapstructure:"watch"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// InputConfig locates the sales data and names its column layout.
type InputConfig struct {
	Path    string `mapstructure:"path"`
	Profile string `mapstructure:"profile"`
}

// AnalysisConfig governs validation and ranking behaviour.
type AnalysisConfig struct {
	CoercionPolicy string `mapstructure:"coercion_policy"`
	TopN           int    `mapstructure:"top_n"`
}

// WatchConfig 控制定时重跑的节奏。
type WatchConfig struct {
	Interval     time.Duration `mapstructure:"interval"`
	AlignToClock bool          `mapstructure:"align_to_clock"`
	StartupDelay time.Duration `mapstructure:"startup_delay"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SALESINSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "salesinsight")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("input.path", "sales.csv")
	v.SetDefault("input.profile", "standard")

	v.SetDefault("analysis.coercion_policy", "strict")
	v.SetDefault("analysis.top_n", 5)

	v.SetDefault("watch.interval", "5m")
	v.SetDefault("watch.align_to_clock", true)
	v.SetDefault("watch.startup_delay", "0s")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input.path must not be empty")
	}
	if c.Analysis.TopN <= 0 {
		return fmt.Errorf("analysis.top_n must be greater than zero")
	}
	if c.Watch.Interval <= 0 {
		return fmt.Errorf("watch.interval 必须大于零")
	}
	if c.Watch.StartupDelay < 0 {
		return fmt.Errorf("watch.startup_delay 不能为负数")
	}
	return nil
}

// ResolveInputPath returns either the CLI override or config default.
func (c *Config) ResolveInputPath(override string) string {
	if override != "" {
		return override
	}
	return c.Input.Path
}

// ResolveProfile returns either the CLI override or config default.
func (c *Config) ResolveProfile(override string) string {
	if override != "" {
		return override
	}
	return c.Input.Profile
}

// ResolvePolicy returns either the CLI override or config default.
func (c *Config) ResolvePolicy(override string) string {
	if override != "" {
		return override
	}
	return c.Analysis.CoercionPolicy
}

// ResolveTopN returns either the CLI override or config default.
func (c *Config) ResolveTopN(override int) int {
	if override > 0 {
		return override
	}
	return c.Analysis.TopN
}
