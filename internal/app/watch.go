package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"sales-insights/internal/scheduler"
)

// Watch re-runs the analysis on a fixed interval until interrupted。
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	interval := a.Config.Watch.Interval
	if opts.Interval > 0 {
		interval = opts.Interval
	}

	svc, profile, err := a.newService(opts.InputPath, opts.Profile, opts.Policy, opts.TopN)
	if err != nil {
		return err
	}

	sched := scheduler.New(scheduler.Options{
		Interval:     interval,
		AlignToStart: a.Config.Watch.AlignToClock,
		StartupDelay: a.Config.Watch.StartupDelay,
	}, a.Logger)

	a.Logger.Info().Dur("interval", interval).Msg("开始定时分析")

	err = sched.Run(ctx, func(ctx context.Context, at time.Time) error {
		return a.runOnce(ctx, svc, profile)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Error().Err(err).Msg("定时分析异常退出")
		return err
	}

	a.Logger.Info().Msg("定时分析已停止")
	return nil
}
