package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// TickFunc is invoked on every scheduled run.
type TickFunc func(ctx context.Context, at time.Time) error

// Options tune scheduler behaviour.
type Options struct {
	Interval     time.Duration
	AlignToStart bool
	StartupDelay time.Duration
}

// Scheduler re-runs a job on a fixed cadence, optionally aligned to wall
// clock multiples of the interval.
type Scheduler struct {
	opts   Options
	logger zerolog.Logger
}

// New constructs a Scheduler instance.
func New(opts Options, logger zerolog.Logger) *Scheduler {
	if opts.Interval <= 0 {
		panic("scheduler interval must be positive")
	}
	return &Scheduler{opts: opts, logger: logger.With().Str("component", "scheduler").Logger()}
}

// Run blocks, invoking tick once per interval until ctx is cancelled. A
// failed tick is logged and the cadence continues. When the loop falls
// behind, missed runs are dropped rather than replayed.
func (s *Scheduler) Run(ctx context.Context, tick TickFunc) error {
	if err := s.wait(ctx, s.opts.StartupDelay); err != nil {
		return err
	}

	next := s.nextRun(time.Now().UTC())
	for {
		if time.Until(next) < 0 {
			next = s.nextRun(time.Now().UTC())
		}
		s.logger.Debug().Time("next_run", next).Msg("waiting for next run")
		if err := s.wait(ctx, time.Until(next)); err != nil {
			return err
		}

		at := s.runStamp(next)
		s.logger.Info().Time("run", at).Msg("executing scheduled run")
		if err := tick(ctx, at); err != nil {
			s.logger.Error().Err(err).Time("run", at).Msg("scheduled run failed")
		}

		next = next.Add(s.opts.Interval)
	}
}

// wait sleeps for d unless ctx ends first. Non-positive d returns at once.
func (s *Scheduler) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Scheduler) nextRun(now time.Time) time.Time {
	if !s.opts.AlignToStart {
		return now.Add(s.opts.Interval)
	}
	aligned := now.Truncate(s.opts.Interval)
	if !aligned.After(now) {
		aligned = aligned.Add(s.opts.Interval)
	}
	return aligned
}

func (s *Scheduler) runStamp(t time.Time) time.Time {
	if !s.opts.AlignToStart {
		return t
	}
	return t.Truncate(s.opts.Interval)
}
