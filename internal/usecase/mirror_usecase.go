package usecase

import (
	"context"

	"blogauth/internal/domain/entity"
)

// MirrorSyncer copies an identity's current hash into the mirror store.
// Mirror writes happen after identity writes commit and never roll them back.
type MirrorSyncer interface {
	// Sync upserts with bounded retries. Final failure yields ErrSyncFailure.
	Sync(ctx context.Context, identity *entity.Identity) error

	// SyncOnce makes exactly one attempt.
	SyncOnce(ctx context.Context, identity *entity.Identity) error

	// EnsureOnce makes one attempt to create a missing row and never overwrites
	// an existing one. Callers holding a possibly stale identity use it.
	EnsureOnce(ctx context.Context, identity *entity.Identity) error
}

// ReconcileReport summarizes one reconciliation pass.
type ReconcileReport struct {
	Scanned  int
	Repaired int
	Failed   int
}

// MirrorReconciler repairs mirror rows that diverged from the identity store.
type MirrorReconciler interface {
	// Reconcile walks every identity once. It is idempotent.
	Reconcile(ctx context.Context) (*ReconcileReport, error)
}

// MetricsRecorder receives outcome counters from the use cases.
type MetricsRecorder interface {
	RecordLogin(result string)
	RecordCredentialChange(op, result string)
	RecordMirrorSync(result string, attempts int)
	RecordReconcileRepaired(n int)
}
