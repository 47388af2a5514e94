package memory

import (
	"context"
	"testing"
	"time"

	"blogauth/internal/domain/entity"
	"blogauth/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentity(username string) *entity.Identity {
	return &entity.Identity{
		ID:                 uuid.New(),
		Username:           username,
		NormalizedUsername: entity.NormalizeUsername(username),
		PasswordHash:       "hash-" + username,
		SecurityStamp:      entity.NewSecurityStamp(),
		Roles:              entity.Roles{entity.RoleRegisteredUser},
		LockoutEnabled:     true,
	}
}

func TestIdentityRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().IdentityRepository()

	alice := newIdentity("Alice")
	require.NoError(t, repo.Create(ctx, alice))
	assert.False(t, alice.CreatedAt.IsZero())

	found, err := repo.FindByNormalizedUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	// Callers get copies.
	found.PasswordHash = "mutated"
	again, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash-Alice", again.PasswordHash)

	err = repo.Create(ctx, newIdentity("alice"))
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)

	_, err = repo.FindByNormalizedUsername(ctx, "BOB")
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
}

func TestIdentityRepository_UpdateCredentials(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().IdentityRepository()

	alice := newIdentity("alice")
	require.NoError(t, repo.Create(ctx, alice))

	err := repo.UpdateCredentials(ctx, repository.CredentialUpdate{
		IdentityID:    alice.ID,
		PasswordHash:  "new",
		SecurityStamp: "S2",
		ExpectedStamp: "wrong",
	})
	assert.ErrorIs(t, err, repository.ErrStaleSecurityStamp)

	require.NoError(t, repo.UpdateCredentials(ctx, repository.CredentialUpdate{
		IdentityID:    alice.ID,
		PasswordHash:  "new",
		SecurityStamp: "S2",
		ExpectedStamp: alice.SecurityStamp,
	}))

	found, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", found.PasswordHash)
	assert.Equal(t, "S2", found.SecurityStamp)

	err = repo.UpdateCredentials(ctx, repository.CredentialUpdate{IdentityID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
}

func TestIdentityRepository_ListPage(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().IdentityRepository()

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, repo.Create(ctx, newIdentity(name)))
	}

	seen := map[uuid.UUID]bool{}
	after := uuid.Nil
	for {
		page, err := repo.ListPage(ctx, after, 2)
		require.NoError(t, err)
		if len(page) == 0 {
			break
		}
		assert.LessOrEqual(t, len(page), 2)
		for _, identity := range page {
			assert.False(t, seen[identity.ID])
			seen[identity.ID] = true
		}
		after = page[len(page)-1].ID
	}

	assert.Len(t, seen, 5)
}

func TestTransactionManager_RollbackDiscardsChanges(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	boom := errors.New("boom")

	err := store.TransactionManager().Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.IdentityRepo().Create(ctx, newIdentity("alice")))

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = store.IdentityRepository().FindByNormalizedUsername(ctx, "ALICE")
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
}

func TestTransactionManager_CommitPublishesChanges(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	err := store.TransactionManager().Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.IdentityRepo().Create(ctx, newIdentity("alice"))
	})
	require.NoError(t, err)

	_, err = store.IdentityRepository().FindByNormalizedUsername(ctx, "ALICE")
	assert.NoError(t, err)
}

func TestTransactionManager_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewStore().TransactionManager().Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestResetTokenRepository_Consume(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	alice := newIdentity("alice")
	require.NoError(t, store.IdentityRepository().Create(ctx, alice))

	now := time.Now()
	tokens := store.ResetTokenRepository()
	require.NoError(t, tokens.Create(ctx, &entity.ResetToken{
		ID:            uuid.New(),
		IdentityID:    alice.ID,
		Value:         "plaintext",
		TokenHash:     "h1",
		SecurityStamp: alice.SecurityStamp,
		ExpiresAt:     now.Add(time.Hour),
	}))

	req := repository.ConsumeResetToken{
		IdentityID:    alice.ID,
		TokenHash:     "h1",
		SecurityStamp: alice.SecurityStamp,
		Now:           now,
	}

	t.Run("wrong stamp", func(t *testing.T) {
		r := req
		r.SecurityStamp = "rotated"
		assert.ErrorIs(t, tokens.Consume(ctx, r), repository.ErrResetTokenNotUsable)
	})

	t.Run("wrong identity", func(t *testing.T) {
		r := req
		r.IdentityID = uuid.New()
		assert.ErrorIs(t, tokens.Consume(ctx, r), repository.ErrResetTokenNotUsable)
	})

	t.Run("expired", func(t *testing.T) {
		r := req
		r.Now = now.Add(2 * time.Hour)
		assert.ErrorIs(t, tokens.Consume(ctx, r), repository.ErrResetTokenNotUsable)
	})

	t.Run("single use", func(t *testing.T) {
		require.NoError(t, tokens.Consume(ctx, req))
		assert.ErrorIs(t, tokens.Consume(ctx, req), repository.ErrResetTokenNotUsable)
	})
}

func TestResetTokenRepository_InvalidateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	alice := newIdentity("alice")
	require.NoError(t, store.IdentityRepository().Create(ctx, alice))

	now := time.Now()
	tokens := store.ResetTokenRepository()
	for _, hash := range []string{"h1", "h2"} {
		require.NoError(t, tokens.Create(ctx, &entity.ResetToken{
			ID:            uuid.New(),
			IdentityID:    alice.ID,
			TokenHash:     hash,
			SecurityStamp: alice.SecurityStamp,
			ExpiresAt:     now.Add(time.Minute),
		}))
	}

	require.NoError(t, tokens.InvalidateForIdentity(ctx, alice.ID, now))
	err := tokens.Consume(ctx, repository.ConsumeResetToken{
		IdentityID:    alice.ID,
		TokenHash:     "h2",
		SecurityStamp: alice.SecurityStamp,
		Now:           now,
	})
	assert.ErrorIs(t, err, repository.ErrResetTokenNotUsable)

	deleted, err := tokens.DeleteExpired(ctx, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	err = tokens.Create(ctx, &entity.ResetToken{ID: uuid.New(), IdentityID: uuid.New(), TokenHash: "h3"})
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
}

func TestMirrorRepository_UpsertKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	mirror := NewStore().MirrorRepository()

	first, err := mirror.UpsertByUsername(ctx, "alice", "h1")
	require.NoError(t, err)
	second, err := mirror.UpsertByUsername(ctx, "alice", "h2")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	found, err := mirror.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "h2", found.PasswordHash)

	records, err := mirror.FindByUsernames(ctx, []string{"alice", "bob"})
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = mirror.FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, repository.ErrMirrorNotFound)
}

func TestMirrorRepository_InsertIfMissingNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	mirror := NewStore().MirrorRepository()

	inserted, err := mirror.InsertIfMissing(ctx, "alice", "h1")
	require.NoError(t, err)
	assert.True(t, inserted)

	_, err = mirror.UpsertByUsername(ctx, "alice", "h2")
	require.NoError(t, err)

	inserted, err = mirror.InsertIfMissing(ctx, "alice", "h1")
	require.NoError(t, err)
	assert.False(t, inserted)

	found, err := mirror.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "h2", found.PasswordHash)
}
