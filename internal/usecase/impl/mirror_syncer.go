package impl

import (
	"context"
	"log/slog"
	"time"

	"blogauth/config"
	deliverycontext "blogauth/internal/delivery/context"
	"blogauth/internal/domain/entity"
	domainerrors "blogauth/internal/domain/errors"
	"blogauth/internal/domain/repository"
	"blogauth/internal/errors"
	"blogauth/internal/usecase"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/fx"
)

// mirrorSyncer implements the MirrorSyncer interface.
type mirrorSyncer struct {
	mirrorRepo      repository.MirrorRepository
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	metrics         usecase.MetricsRecorder
	logger          *slog.Logger
}

// MirrorSyncerParams holds dependencies for the mirror syncer, injected by Fx.
type MirrorSyncerParams struct {
	fx.In

	MirrorRepo repository.MirrorRepository
	Config     *config.Config
	Metrics    usecase.MetricsRecorder `optional:"true"`
	Logger     *slog.Logger
}

// NewMirrorSyncer is the constructor for mirrorSyncer.
func NewMirrorSyncer(params MirrorSyncerParams) usecase.MirrorSyncer {
	syncer := &mirrorSyncer{
		mirrorRepo:      params.MirrorRepo,
		maxAttempts:     3,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     2 * time.Second,
		metrics:         metricsOrNoop(params.Metrics),
		logger:          params.Logger,
	}

	if params.Config != nil && params.Config.Mirror != nil {
		if params.Config.Mirror.MaxAttempts > 0 {
			syncer.maxAttempts = params.Config.Mirror.MaxAttempts
		}
		if params.Config.Mirror.InitialInterval > 0 {
			syncer.initialInterval = params.Config.Mirror.InitialInterval
		}
		if params.Config.Mirror.MaxInterval > 0 {
			syncer.maxInterval = params.Config.Mirror.MaxInterval
		}
	}

	return syncer
}

func (s *mirrorSyncer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Sync retries the upsert with exponential backoff. Cancellation stops retrying immediately.
func (s *mirrorSyncer) Sync(ctx context.Context, identity *entity.Identity) error {
	return s.sync(ctx, identity, s.maxAttempts)
}

// SyncOnce makes a single upsert attempt.
func (s *mirrorSyncer) SyncOnce(ctx context.Context, identity *entity.Identity) error {
	return s.sync(ctx, identity, 1)
}

// EnsureOnce backfills a missing row without touching an existing one.
func (s *mirrorSyncer) EnsureOnce(ctx context.Context, identity *entity.Identity) error {
	inserted, err := s.mirrorRepo.InsertIfMissing(ctx, identity.Username, identity.PasswordHash)
	if err != nil {
		s.metrics.RecordMirrorSync(resultFailure, 1)
		s.log(ctx).Error("Failed to backfill mirror record", slog.String("username", identity.Username), slog.Any("error", err))
		if !errors.Is(err, domainerrors.ErrSyncFailure) {
			err = errors.Join(domainerrors.ErrSyncFailure, err)
		}

		return errors.Wrap(err, "mirror backfill failed")
	}

	s.metrics.RecordMirrorSync(resultSuccess, 1)
	if inserted {
		s.log(ctx).Info("Mirror record backfilled", slog.String("username", identity.Username))
	}

	return nil
}

func (s *mirrorSyncer) sync(ctx context.Context, identity *entity.Identity, maxAttempts int) error {
	attempts := 0
	operation := func() error {
		attempts++

		_, err := s.mirrorRepo.UpsertByUsername(ctx, identity.Username, identity.PasswordHash)
		if err != nil && ctx.Err() != nil {
			return backoff.Permanent(err)
		}

		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.initialInterval
	policy.MaxInterval = s.maxInterval
	policy.MaxElapsedTime = 0

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(maxAttempts-1)), ctx))
	if err == nil {
		s.metrics.RecordMirrorSync(resultSuccess, attempts)
		if attempts > 1 {
			s.log(ctx).Info("Mirror record synced after retry", slog.String("username", identity.Username), slog.Int("attempts", attempts))
		}

		return nil
	}

	s.metrics.RecordMirrorSync(resultFailure, attempts)
	s.log(ctx).Error("Failed to sync mirror record",
		slog.String("username", identity.Username),
		slog.Int("attempts", attempts),
		slog.Any("error", err),
	)

	if !errors.Is(err, domainerrors.ErrSyncFailure) {
		err = errors.Join(domainerrors.ErrSyncFailure, err)
	}

	return errors.Wrapf(err, "mirror sync failed after %d attempts", attempts)
}
