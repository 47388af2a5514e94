package impl

import (
	"context"
	"log/slog"

	"blogauth/config"
	deliverycontext "blogauth/internal/delivery/context"
	"blogauth/internal/domain/repository"
	"blogauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultReconcileBatchSize = 200

// mirrorReconciler implements the MirrorReconciler interface.
type mirrorReconciler struct {
	identityRepo repository.IdentityRepository
	mirrorRepo   repository.MirrorRepository
	syncer       usecase.MirrorSyncer
	batchSize    int
	metrics      usecase.MetricsRecorder
	logger       *slog.Logger
}

// MirrorReconcilerParams holds dependencies for the reconciler, injected by Fx.
type MirrorReconcilerParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	MirrorRepo   repository.MirrorRepository
	Syncer       usecase.MirrorSyncer
	Config       *config.Config
	Metrics      usecase.MetricsRecorder `optional:"true"`
	Logger       *slog.Logger
}

// NewMirrorReconciler is the constructor for mirrorReconciler.
func NewMirrorReconciler(params MirrorReconcilerParams) usecase.MirrorReconciler {
	batchSize := defaultReconcileBatchSize
	if params.Config != nil && params.Config.Mirror != nil && params.Config.Mirror.ReconcileBatchSize > 0 {
		batchSize = params.Config.Mirror.ReconcileBatchSize
	}

	return &mirrorReconciler{
		identityRepo: params.IdentityRepo,
		mirrorRepo:   params.MirrorRepo,
		syncer:       params.Syncer,
		batchSize:    batchSize,
		metrics:      metricsOrNoop(params.Metrics),
		logger:       params.Logger,
	}
}

// Reconcile pages through identities by ID and rewrites every missing or divergent mirror row.
// A single row failure is counted and skipped; store or context failures abort the pass.
func (r *mirrorReconciler) Reconcile(ctx context.Context) (*usecase.ReconcileReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
	report := &usecase.ReconcileReport{}

	after := uuid.Nil
	for {
		page, err := r.identityRepo.ListPage(ctx, after, r.batchSize)
		if err != nil {
			return report, errors.Wrap(err, "failed to list identities")
		}
		if len(page) == 0 {
			break
		}

		usernames := make([]string, 0, len(page))
		for _, identity := range page {
			usernames = append(usernames, identity.Username)
		}

		current, err := r.mirrorRepo.FindByUsernames(ctx, usernames)
		if err != nil {
			return report, errors.Wrap(err, "failed to load mirror records")
		}

		for _, identity := range page {
			report.Scanned++

			if current[identity.Username].InSyncWith(identity) {
				continue
			}

			// The page may predate a concurrent credential change; repair from the primary copy.
			fresh, err := r.identityRepo.FindByID(ctx, identity.ID)
			if errors.Is(err, repository.ErrIdentityNotFound) {
				continue
			}
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return report, ctxErr
				}
				report.Failed++

				continue
			}
			if current[fresh.Username].InSyncWith(fresh) {
				continue
			}

			if err := r.syncer.SyncOnce(ctx, fresh); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return report, ctxErr
				}
				report.Failed++

				continue
			}
			report.Repaired++
		}

		if len(page) < r.batchSize {
			break
		}
		after = page[len(page)-1].ID
	}

	r.metrics.RecordReconcileRepaired(report.Repaired)
	logger.Info("Mirror reconciliation finished",
		slog.Int("scanned", report.Scanned),
		slog.Int("repaired", report.Repaired),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}
