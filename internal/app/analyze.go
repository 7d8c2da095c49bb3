package app

import (
	"context"
	"os"

	"sales-insights/internal/ingest"
	"sales-insights/internal/report"
	"sales-insights/internal/service"
)

// Analyze runs the pipeline once and renders the report to stdout.
func (a *App) Analyze(ctx context.Context, opts AnalyzeOptions) error {
	svc, profile, err := a.newService(opts.InputPath, opts.Profile, opts.Policy, opts.TopN)
	if err != nil {
		return err
	}
	return a.runOnce(ctx, svc, profile)
}

// runOnce executes a single pass and writes the rendered report.
func (a *App) runOnce(ctx context.Context, svc *service.Service, profile ingest.Profile) error {
	summary, err := svc.Analyze(ctx)
	if err != nil {
		return err
	}
	return report.Render(os.Stdout, summary.Result, report.Options{Profile: profile})
}
