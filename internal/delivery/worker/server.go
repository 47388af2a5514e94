// Package worker runs the background maintenance loop of the credential stores.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"blogauth/config"
	"blogauth/internal/delivery"
	deliverycontext "blogauth/internal/delivery/context"
	"blogauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	interval      time.Duration
	reconciler    usecase.MirrorReconciler
	identityStore usecase.IdentityStore
	logger        *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// ServerParams holds dependencies for the worker
type ServerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	Reconciler    usecase.MirrorReconciler
	IdentityStore usecase.IdentityStore
}

// NewServer creates the reconcile worker. A zero mirror.reconcileInterval disables it.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	var interval time.Duration
	if params.Cfg.Mirror != nil {
		interval = params.Cfg.Mirror.ReconcileInterval
	}
	if interval < 0 {
		return nil, errors.Errorf("mirror.reconcileInterval must not be negative, got %s", interval)
	}

	srv := &workerServer{
		interval:      interval,
		reconciler:    params.Reconciler,
		identityStore: params.IdentityStore,
		logger:        params.Logger,
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve runs one pass per tick until ctx is done or the worker is stopped.
func (s *workerServer) Serve(ctx context.Context) error {
	defer close(s.doneCh)

	if s.interval == 0 {
		s.logger.Info("Mirror reconcile worker disabled")

		return nil
	}

	s.logger.Info("Starting mirror reconcile worker", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

// runPass reconciles the mirror and purges expired reset tokens. Failures are
// logged and retried on the next tick.
func (s *workerServer) runPass(ctx context.Context) {
	passCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	passID := uuid.NewString()
	logger := s.logger.With(slog.String("pass_id", passID))
	passCtx = deliverycontext.WithLogger(passCtx, logger)

	report, err := s.reconciler.Reconcile(passCtx)
	switch {
	case err != nil:
		logger.Error("Mirror reconcile pass failed", slog.Any("error", err))
	case report.Repaired > 0 || report.Failed > 0:
		logger.Info("Mirror reconcile pass finished",
			slog.Int("scanned", report.Scanned),
			slog.Int("repaired", report.Repaired),
			slog.Int("failed", report.Failed),
		)
	default:
		logger.Debug("Mirror already in sync", slog.Int("scanned", report.Scanned))
	}

	if _, err := s.identityStore.PurgeExpiredResetTokens(passCtx); err != nil {
		logger.Error("Failed to purge expired reset tokens", slog.Any("error", err))
	}
}

// stop signals the loop and waits for an in-flight pass to finish.
func (s *workerServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down mirror reconcile worker")
	s.stopOnce.Do(func() { close(s.stopCh) })

	select {
	case <-s.doneCh:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
