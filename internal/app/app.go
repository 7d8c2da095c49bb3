package app

import (
	"time"

	"github.com/rs/zerolog"

	"sales-insights/internal/analysis"
	"sales-insights/internal/config"
	"sales-insights/internal/ingest"
	"sales-insights/internal/service"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

// newService resolves flag overrides against config and wires a pipeline
// over the input file. The returned profile also selects the report layout.
func (a *App) newService(inputPath, profileName, policyName string, topN int) (*service.Service, ingest.Profile, error) {
	profile, err := ingest.ParseProfile(a.Config.ResolveProfile(profileName))
	if err != nil {
		return nil, "", err
	}

	policy, err := analysis.ParsePolicy(a.Config.ResolvePolicy(policyName))
	if err != nil {
		return nil, "", err
	}

	reader := ingest.NewReader(ingest.Options{
		Path:    a.Config.ResolveInputPath(inputPath),
		Profile: profile,
	}, a.Logger)

	svc := service.New(reader, service.Options{
		Policy: policy,
		TopN:   a.Config.ResolveTopN(topN),
	}, a.Logger)

	return svc, profile, nil
}

// AnalyzeOptions configure the analyze command.
type AnalyzeOptions struct {
	InputPath string
	Profile   string
	Policy    string
	TopN      int
}

// CheckOptions configure the check command.
type CheckOptions struct {
	InputPath string
	Profile   string
	Policy    string
	Limit     int
}

// ExportOptions hold parameters for exporting the product ranking.
type ExportOptions struct {
	InputPath string
	TopN      int
	CSVPath   string
	PNGPath   string
}

// WatchOptions 配置定时重跑参数。
type WatchOptions struct {
	InputPath string
	Profile   string
	Policy    string
	TopN      int
	Interval  time.Duration
}
