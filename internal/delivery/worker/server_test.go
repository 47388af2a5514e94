package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"blogauth/config"
	"blogauth/internal/usecase"
	mockUsecase "blogauth/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newWorkerConfig(interval time.Duration) *config.Config {
	return &config.Config{Mirror: &config.MirrorConfig{ReconcileInterval: interval}}
}

func newTestWorker(t *testing.T, cfg *config.Config) (*fxtest.Lifecycle, *workerServer, *mockUsecase.MockMirrorReconciler, *mockUsecase.MockIdentityStore) {
	lc := fxtest.NewLifecycle(t)
	reconciler := mockUsecase.NewMockMirrorReconciler(t)
	identityStore := mockUsecase.NewMockIdentityStore(t)

	d, err := NewServer(ServerParams{
		Lc:            lc,
		Cfg:           cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Reconciler:    reconciler,
		IdentityStore: identityStore,
	})
	require.NoError(t, err)

	return lc, d.(*workerServer), reconciler, identityStore
}

func TestWorker_DisabledReturnsImmediately(t *testing.T) {
	_, srv, _, _ := newTestWorker(t, newWorkerConfig(0))

	require.NoError(t, srv.Serve(context.Background()))
}

func TestWorker_RejectsNegativeInterval(t *testing.T) {
	_, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    newWorkerConfig(-time.Second),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.Error(t, err)
}

func TestWorker_RunsReconcileAndPurgeEveryTick(t *testing.T) {
	lc, srv, reconciler, identityStore := newTestWorker(t, newWorkerConfig(5*time.Millisecond))
	purged := make(chan struct{}, 1)

	reconciler.EXPECT().Reconcile(mock.Anything).Return(&usecase.ReconcileReport{Scanned: 2, Repaired: 1}, nil)
	identityStore.EXPECT().
		PurgeExpiredResetTokens(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			select {
			case purged <- struct{}{}:
			default:
			}

			return 0, nil
		})

	lc.RequireStart()
	served := make(chan error, 1)
	go func() { served <- srv.Serve(context.Background()) }()

	select {
	case <-purged:
	case <-time.After(time.Second):
		t.Fatal("worker never completed a pass")
	}

	lc.RequireStop()
	assert.NoError(t, <-served)
}

func TestWorker_PassFailureDoesNotStopTheLoop(t *testing.T) {
	lc, srv, reconciler, identityStore := newTestWorker(t, newWorkerConfig(5*time.Millisecond))
	passes := make(chan struct{}, 4)

	reconciler.EXPECT().Reconcile(mock.Anything).Return(nil, errors.New("connection reset"))
	identityStore.EXPECT().
		PurgeExpiredResetTokens(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			select {
			case passes <- struct{}{}:
			default:
			}

			return 0, errors.New("connection reset")
		})

	lc.RequireStart()
	go func() { _ = srv.Serve(context.Background()) }()

	for range 2 {
		select {
		case <-passes:
		case <-time.After(time.Second):
			t.Fatal("worker stopped after a failed pass")
		}
	}

	lc.RequireStop()
}

func TestWorker_StopsWhenContextIsCancelled(t *testing.T) {
	_, srv, _, _ := newTestWorker(t, newWorkerConfig(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())

	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx) }()
	cancel()

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker ignored cancellation")
	}
}
