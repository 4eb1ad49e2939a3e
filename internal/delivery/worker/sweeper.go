// Package worker runs background jobs as deliveries alongside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"secrets/config"
	"secrets/internal/delivery"
	"secrets/internal/domain/lifecycle"
	"secrets/internal/usecase"

	"go.uber.org/fx"
)

// sessionSweeper periodically deletes expired session records.
type sessionSweeper struct {
	sessionUC usecase.SessionUsecase
	interval  time.Duration
	logger    *slog.Logger

	cancel context.CancelFunc
	runCtx context.Context
	done   chan struct{}
}

// SweeperParams holds dependencies for the session sweeper
type SweeperParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	SessionUC usecase.SessionUsecase
}

// NewSessionSweeper creates the sweeper delivery. It runs every session.cleanupInterval
// until the fx lifecycle stops.
func NewSessionSweeper(params SweeperParams) (delivery.Delivery, error) {
	runCtx, cancel := context.WithCancel(context.Background())

	s := &sessionSweeper{
		sessionUC: params.SessionUC,
		interval:  params.Cfg.Session.CleanupInterval,
		logger:    params.Logger,
		cancel:    cancel,
		runCtx:    runCtx,
		done:      make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve blocks until the sweeper is stopped or ctx is done.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	defer close(s.done)

	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.runCtx.Done():
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *sessionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(s.runCtx, lifecycle.DefaultTimeout)
	defer cancel()

	removed, err := s.sessionUC.CleanupExpiredSessions(ctx)
	if err != nil {
		s.logger.Warn("Failed to remove expired sessions", slog.Any("error", err))

		return
	}

	s.logger.Debug("Session sweep finished", slog.Int("removed", removed))
}

// stop cancels the loop and waits for an in-flight sweep to finish.
func (s *sessionSweeper) stop(ctx context.Context) error {
	s.logger.Info("Shutting down session sweeper")
	s.cancel()

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
