// Package scheduler runs the periodic reminder sweep.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"dosetrack/config"
	"dosetrack/internal/delivery"
	"dosetrack/internal/usecase"

	"go.uber.org/fx"
)

// Params holds dependencies for the sweep scheduler, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
}

type sweepScheduler struct {
	interval time.Duration
	logger   *slog.Logger
	uc       usecase.ReminderUsecase
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewScheduler creates the ticker delivery that drives reminder sweeps.
func NewScheduler(params Params) (delivery.Delivery, error) {
	scheduler := &sweepScheduler{
		interval: params.Config.Scheduler.Interval,
		logger:   params.Logger,
		uc:       params.ReminderUC,
		done:     make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: scheduler.stop,
	})

	return scheduler, nil
}

// Serve ticks until the context is cancelled. Each tick runs one sweep;
// a failed sweep is logged and the ticker keeps going, because the next
// tick resumes from persisted state.
func (s *sweepScheduler) Serve(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)
	defer close(s.done)

	s.logger.Info("Starting reminder scheduler", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Reminder scheduler stopped")

			return nil
		case tick := <-ticker.C:
			s.runSweep(ctx, tick)
		}
	}
}

func (s *sweepScheduler) runSweep(ctx context.Context, now time.Time) {
	result, err := s.uc.Sweep(ctx, now)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "reminder sweep aborted",
			slog.String("error", err.Error()),
		)

		return
	}

	if result.Sent > 0 || result.Failures > 0 {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "reminder sweep finished",
			slog.Int("users", result.UsersProcessed),
			slog.Int("sent", result.Sent),
			slog.Int("suppressed", result.Suppressed),
			slog.Int("failures", result.Failures),
		)
	}
}

func (s *sweepScheduler) stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
