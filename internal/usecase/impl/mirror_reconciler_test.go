package impl

import (
	"context"
	"fmt"
	"testing"

	"blogauth/internal/domain/entity"
	"blogauth/internal/domain/repository"
	"blogauth/internal/infra/persistence/memory"
	mockRepo "blogauth/internal/mocks/repository"
	mockUsecase "blogauth/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedIdentities(t *testing.T, store *memory.Store, n int) []*entity.Identity {
	t.Helper()

	identities := make([]*entity.Identity, 0, n)
	for i := range n {
		identity := newTestIdentity(fmt.Sprintf("user%02d", i))
		require.NoError(t, store.IdentityRepository().Create(context.Background(), identity))
		identities = append(identities, identity)
	}

	return identities
}

func TestMirrorReconciler_RepairsMissingAndDivergentRows(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	identities := seedIdentities(t, store, 5)
	mirror := store.MirrorRepository()

	// user00 in sync, user01 stale, the rest missing.
	_, err := mirror.UpsertByUsername(ctx, identities[0].Username, identities[0].PasswordHash)
	require.NoError(t, err)
	_, err = mirror.UpsertByUsername(ctx, identities[1].Username, "old-hash")
	require.NoError(t, err)

	metrics := mockUsecase.NewMockMetricsRecorder(t)
	metrics.EXPECT().RecordMirrorSync(resultSuccess, 1).Return().Times(4)
	metrics.EXPECT().RecordReconcileRepaired(4).Return().Once()

	cfg := newTestConfig()
	logger := newDiscardLogger()
	syncer := NewMirrorSyncer(MirrorSyncerParams{MirrorRepo: mirror, Config: cfg, Metrics: metrics, Logger: logger})
	reconciler := NewMirrorReconciler(MirrorReconcilerParams{
		IdentityRepo: store.IdentityRepository(),
		MirrorRepo:   mirror,
		Syncer:       syncer,
		Config:       cfg,
		Metrics:      metrics,
		Logger:       logger,
	})

	report, err := reconciler.Reconcile(ctx)

	require.NoError(t, err)
	assert.Equal(t, 5, report.Scanned)
	assert.Equal(t, 4, report.Repaired)
	assert.Zero(t, report.Failed)

	for _, identity := range identities {
		record, err := mirror.FindByUsername(ctx, identity.Username)
		require.NoError(t, err)
		assert.Equal(t, identity.PasswordHash, record.PasswordHash)
	}
}

func TestMirrorReconciler_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedIdentities(t, store, 3)

	cfg := newTestConfig()
	logger := newDiscardLogger()
	syncer := NewMirrorSyncer(MirrorSyncerParams{MirrorRepo: store.MirrorRepository(), Config: cfg, Logger: logger})
	reconciler := NewMirrorReconciler(MirrorReconcilerParams{
		IdentityRepo: store.IdentityRepository(),
		MirrorRepo:   store.MirrorRepository(),
		Syncer:       syncer,
		Config:       cfg,
		Logger:       logger,
	})

	first, err := reconciler.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Repaired)

	second, err := reconciler.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, second.Scanned)
	assert.Zero(t, second.Repaired)
}

func TestMirrorReconciler_CountsRowFailuresAndContinues(t *testing.T) {
	ctx := context.Background()
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	mirrorRepo := mockRepo.NewMockMirrorRepository(t)
	syncer := mockUsecase.NewMockMirrorSyncer(t)
	first, second := newTestIdentity("alice"), newTestIdentity("bob")

	identityRepo.EXPECT().ListPage(ctx, uuid.Nil, 2).Return([]*entity.Identity{first, second}, nil)
	identityRepo.EXPECT().ListPage(ctx, second.ID, 2).Return(nil, nil)
	mirrorRepo.EXPECT().FindByUsernames(ctx, []string{"alice", "bob"}).Return(map[string]*entity.MirrorRecord{}, nil)
	identityRepo.EXPECT().FindByID(ctx, first.ID).Return(first, nil)
	identityRepo.EXPECT().FindByID(ctx, second.ID).Return(second, nil)
	syncer.EXPECT().SyncOnce(ctx, first).Return(errors.New("mirror unavailable"))
	syncer.EXPECT().SyncOnce(ctx, second).Return(nil)

	reconciler := NewMirrorReconciler(MirrorReconcilerParams{
		IdentityRepo: identityRepo,
		MirrorRepo:   mirrorRepo,
		Syncer:       syncer,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	report, err := reconciler.Reconcile(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 1, report.Repaired)
	assert.Equal(t, 1, report.Failed)
}

func TestMirrorReconciler_RepairsFromPrimaryCopy(t *testing.T) {
	ctx := context.Background()
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	mirrorRepo := mockRepo.NewMockMirrorRepository(t)
	syncer := mockUsecase.NewMockMirrorSyncer(t)

	// The listed copies of alice and bob predate a password change; carol was deleted.
	alice, bob, carol := newTestIdentity("alice"), newTestIdentity("bob"), newTestIdentity("carol")
	freshAlice := alice.Clone()
	freshAlice.PasswordHash = "hash-alice-v2"
	freshBob := bob.Clone()
	freshBob.PasswordHash = "hash-bob-v2"

	identityRepo.EXPECT().ListPage(ctx, uuid.Nil, 2).Return([]*entity.Identity{alice, bob}, nil)
	identityRepo.EXPECT().ListPage(ctx, bob.ID, 2).Return([]*entity.Identity{carol}, nil)
	mirrorRepo.EXPECT().FindByUsernames(ctx, []string{"alice", "bob"}).Return(map[string]*entity.MirrorRecord{
		"alice": {ID: 1, Username: "alice", PasswordHash: "hash-alice-v2"},
		"bob":   {ID: 2, Username: "bob", PasswordHash: "hash-bob-v0"},
	}, nil)
	mirrorRepo.EXPECT().FindByUsernames(ctx, []string{"carol"}).Return(map[string]*entity.MirrorRecord{}, nil)
	identityRepo.EXPECT().FindByID(ctx, alice.ID).Return(freshAlice, nil)
	identityRepo.EXPECT().FindByID(ctx, bob.ID).Return(freshBob, nil)
	identityRepo.EXPECT().FindByID(ctx, carol.ID).Return(nil, repository.ErrIdentityNotFound)
	syncer.EXPECT().SyncOnce(ctx, freshBob).Return(nil).Once()

	reconciler := NewMirrorReconciler(MirrorReconcilerParams{
		IdentityRepo: identityRepo,
		MirrorRepo:   mirrorRepo,
		Syncer:       syncer,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	report, err := reconciler.Reconcile(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Scanned)
	assert.Equal(t, 1, report.Repaired)
	assert.Zero(t, report.Failed)
	syncer.AssertNotCalled(t, "SyncOnce", ctx, alice)
	syncer.AssertNotCalled(t, "SyncOnce", ctx, carol)
}

func TestMirrorReconciler_ListFailureAborts(t *testing.T) {
	ctx := context.Background()
	identityRepo := mockRepo.NewMockIdentityRepository(t)

	identityRepo.EXPECT().ListPage(ctx, uuid.Nil, mock.Anything).Return(nil, errors.New("connection reset"))

	reconciler := NewMirrorReconciler(MirrorReconcilerParams{
		IdentityRepo: identityRepo,
		MirrorRepo:   mockRepo.NewMockMirrorRepository(t),
		Syncer:       mockUsecase.NewMockMirrorSyncer(t),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	_, err := reconciler.Reconcile(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list identities")
}
