package impl

import (
	"context"
	"testing"
	"time"

	"blogauth/internal/domain/entity"
	domainerrors "blogauth/internal/domain/errors"
	"blogauth/internal/domain/repository"
	mockRepo "blogauth/internal/mocks/repository"
	mockSvc "blogauth/internal/mocks/service"
	"blogauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityStoreFixtures struct {
	store          usecase.IdentityStore
	txManager      *mockRepo.MockTransactionManager
	identityRepo   *mockRepo.MockIdentityRepository
	resetTokenRepo *mockRepo.MockResetTokenRepository
	hasher         *mockSvc.MockPasswordHasher
}

func createTestIdentityStore(t *testing.T) identityStoreFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	resetTokenRepo := mockRepo.NewMockResetTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	store := NewIdentityStore(IdentityStoreParams{
		TxManager:      txManager,
		IdentityRepo:   identityRepo,
		ResetTokenRepo: resetTokenRepo,
		Hasher:         hasher,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return identityStoreFixtures{
		store:          store,
		txManager:      txManager,
		identityRepo:   identityRepo,
		resetTokenRepo: resetTokenRepo,
		hasher:         hasher,
	}
}

// runInTx makes Execute invoke the callback with a factory over the given repositories
// and return whatever the callback returns.
func runInTx(t *testing.T, txManager *mockRepo.MockTransactionManager, identityRepo repository.IdentityRepository, resetTokenRepo repository.ResetTokenRepository) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			if identityRepo != nil {
				factory.EXPECT().IdentityRepo().Return(identityRepo).Maybe()
			}
			if resetTokenRepo != nil {
				factory.EXPECT().ResetTokenRepo().Return(resetTokenRepo).Maybe()
			}

			return fn(factory)
		})
}

func TestIdentityStore_Create_Success(t *testing.T) {
	fx := createTestIdentityStore(t)
	ctx := context.Background()
	txIdentityRepo := mockRepo.NewMockIdentityRepository(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("pw1").Return(nil)
	fx.hasher.EXPECT().Hash("pw1").Return("hashed_password", nil)
	runInTx(t, fx.txManager, txIdentityRepo, nil)
	txIdentityRepo.EXPECT().FindByNormalizedUsername(ctx, "ALICE").Return(nil, repository.ErrIdentityNotFound)
	txIdentityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Identity")).Return(nil)

	identity, err := fx.store.Create(ctx, usecase.CreateIdentityInput{
		Username: "  alice ",
		Email:    "alice@example.com",
		Password: "pw1",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, "ALICE", identity.NormalizedUsername)
	assert.Equal(t, "hashed_password", identity.PasswordHash)
	assert.Equal(t, entity.Roles{entity.RoleRegisteredUser}, identity.Roles)
	assert.NotEmpty(t, identity.SecurityStamp)
	assert.False(t, identity.EmailConfirmed)
	assert.True(t, identity.LockoutEnabled)
}

func TestIdentityStore_Create_UsernameTaken(t *testing.T) {
	fx := createTestIdentityStore(t)
	ctx := context.Background()
	txIdentityRepo := mockRepo.NewMockIdentityRepository(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("pw1").Return(nil)
	fx.hasher.EXPECT().Hash("pw1").Return("hashed_password", nil)
	runInTx(t, fx.txManager, txIdentityRepo, nil)
	txIdentityRepo.EXPECT().FindByNormalizedUsername(ctx, "ALICE").Return(&entity.Identity{}, nil)

	_, err := fx.store.Create(ctx, usecase.CreateIdentityInput{Username: "Alice", Password: "pw1"})

	require.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestIdentityStore_Create_LostRaceMapsToUsernameTaken(t *testing.T) {
	fx := createTestIdentityStore(t)
	ctx := context.Background()
	txIdentityRepo := mockRepo.NewMockIdentityRepository(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("pw1").Return(nil)
	fx.hasher.EXPECT().Hash("pw1").Return("hashed_password", nil)
	runInTx(t, fx.txManager, txIdentityRepo, nil)
	txIdentityRepo.EXPECT().FindByNormalizedUsername(ctx, "ALICE").Return(nil, repository.ErrIdentityNotFound)
	txIdentityRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateUsername)

	_, err := fx.store.Create(ctx, usecase.CreateIdentityInput{Username: "alice", Password: "pw1"})

	require.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestIdentityStore_Create_RejectsWeakPasswordBeforeHashing(t *testing.T) {
	fx := createTestIdentityStore(t)
	weak := domainerrors.ErrPasswordStrength.WithReasons("Passwords must be at least 6 characters.")

	fx.hasher.EXPECT().ValidatePasswordStrength("pw").Return(weak)

	_, err := fx.store.Create(context.Background(), usecase.CreateIdentityInput{Username: "alice", Password: "pw"})

	require.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, []string{"Passwords must be at least 6 characters."}, appErr.Reasons())
}

func TestIdentityStore_Create_RequiresUsername(t *testing.T) {
	fx := createTestIdentityStore(t)

	_, err := fx.store.Create(context.Background(), usecase.CreateIdentityInput{Username: "   ", Password: "pw1"})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestIdentityStore_FindByUsername_CaseInsensitive(t *testing.T) {
	fx := createTestIdentityStore(t)
	ctx := context.Background()
	identity := newTestIdentity("Alice")

	fx.identityRepo.EXPECT().FindByNormalizedUsername(ctx, "ALICE").Return(identity, nil)

	found, err := fx.store.FindByUsername(ctx, " alice ")

	require.NoError(t, err)
	assert.Same(t, identity, found)
}

func TestIdentityStore_FindByUsername_BlankIsNotFound(t *testing.T) {
	fx := createTestIdentityStore(t)

	_, err := fx.store.FindByUsername(context.Background(), "  ")

	require.ErrorIs(t, err, repository.ErrIdentityNotFound)
}

func TestIdentityStore_VerifyPassword(t *testing.T) {
	fx := createTestIdentityStore(t)
	identity := newTestIdentity("alice")

	fx.hasher.EXPECT().Check("pw1", identity.PasswordHash).Return(true)

	assert.True(t, fx.store.VerifyPassword(identity, "pw1"))
}

func TestIdentityStore_VerifyPassword_MissingIdentityStillHashes(t *testing.T) {
	fx := createTestIdentityStore(t)

	fx.hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
	fx.hasher.EXPECT().Check("pw1", "dummy-hash").Return(true).Times(2)

	assert.False(t, fx.store.VerifyPassword(nil, "pw1"))
	assert.False(t, fx.store.VerifyPassword(&entity.Identity{}, "pw1"))
}

func TestIdentityStore_ValidatePassword(t *testing.T) {
	fx := createTestIdentityStore(t)
	weak := domainerrors.ErrPasswordStrength.WithReasons("Passwords must be at least 6 characters.")

	fx.hasher.EXPECT().ValidatePasswordStrength("pw").Return(weak)
	fx.hasher.EXPECT().ValidatePasswordStrength("pw123456").Return(nil)

	require.ErrorIs(t, fx.store.ValidatePassword("pw"), domainerrors.ErrPasswordStrength)
	require.NoError(t, fx.store.ValidatePassword("pw123456"))
}

func TestIdentityStore_FindByID(t *testing.T) {
	fx := createTestIdentityStore(t)
	identity := newTestIdentity("alice")
	missing := uuid.New()

	fx.identityRepo.EXPECT().FindByID(mock.Anything, identity.ID).Return(identity, nil)
	fx.identityRepo.EXPECT().FindByID(mock.Anything, missing).Return(nil, repository.ErrIdentityNotFound)

	found, err := fx.store.FindByID(context.Background(), identity.ID)
	require.NoError(t, err)
	assert.Equal(t, identity, found)

	_, err = fx.store.FindByID(context.Background(), missing)
	require.ErrorIs(t, err, repository.ErrIdentityNotFound)
}

func TestIdentityStore_ChangePassword_RotatesStampWithGuard(t *testing.T) {
	fx := createTestIdentityStore(t)
	ctx := context.Background()
	identity := newTestIdentity("alice")
	originalStamp := identity.SecurityStamp
	txIdentityRepo := mockRepo.NewMockIdentityRepository(t)
	txResetTokenRepo := mockRepo.NewMockResetTokenRepository(t)

	fx.hasher.EXPECT().Check("pw1", identity.PasswordHash).Return(true)
	fx.hasher.EXPECT().ValidatePasswordStrength("pw2").Return(nil)
	fx.hasher.EXPECT().Hash("pw2").Return("new-hash", nil)
	runInTx(t, fx.txManager, txIdentityRepo, txResetTokenRepo)
	txIdentityRepo.EXPECT().
		UpdateCredentials(ctx, mock.MatchedBy(func(update repository.CredentialUpdate) bool {
			return update.IdentityID == identity.ID &&
				update.PasswordHash == "new-hash" &&
				update.ExpectedStamp == originalStamp &&
				update.SecurityStamp != originalStamp
		})).
		Return(nil)
	txResetTokenRepo.EXPECT().InvalidateForIdentity(ctx, identity.ID, mock.AnythingOfType("time.Time")).Return(nil)

	updated, err := fx.store.ChangePassword(ctx, identity, "pw1", "pw2")

	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)
	assert.NotEqual(t, originalStamp, updated.SecurityStamp)
	assert.Equal(t, originalStamp, identity.SecurityStamp, "input identity must not be mutated")
}

func TestIdentityStore_ChangePassword_InvalidCurrentPassword(t *testing.T) {
	fx := createTestIdentityStore(t)
	identity := newTestIdentity("alice")

	fx.hasher.EXPECT().Check("pwX", identity.PasswordHash).Return(false)

	_, err := fx.store.ChangePassword(context.Background(), identity, "pwX", "pw2")

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredential)
}

func TestIdentityStore_ChangePassword_StaleStamp(t *testing.T) {
	fx := createTestIdentityStore(t)
	ctx := context.Background()
	identity := newTestIdentity("alice")
	txIdentityRepo := mockRepo.NewMockIdentityRepository(t)

	fx.hasher.EXPECT().Check("pw1", identity.PasswordHash).Return(true)
	fx.hasher.EXPECT().ValidatePasswordStrength("pw2").Return(nil)
	fx.hasher.EXPECT().Hash("pw2").Return("new-hash", nil)
	runInTx(t, fx.txManager, txIdentityRepo, nil)
	txIdentityRepo.EXPECT().UpdateCredentials(ctx, mock.Anything).Return(repository.ErrStaleSecurityStamp)

	_, err := fx.store.ChangePassword(ctx, identity, "pw1", "pw2")

	require.ErrorIs(t, err, domainerrors.ErrStaleCredential)
}

func TestIdentityStore_ChangePassword_StoreErrorIsWrapped(t *testing.T) {
	fx := createTestIdentityStore(t)
	ctx := context.Background()
	identity := newTestIdentity("alice")
	txIdentityRepo := mockRepo.NewMockIdentityRepository(t)
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("deadlock detected"), "update credentials")

	fx.hasher.EXPECT().Check("pw1", identity.PasswordHash).Return(true)
	fx.hasher.EXPECT().ValidatePasswordStrength("pw2").Return(nil)
	fx.hasher.EXPECT().Hash("pw2").Return("new-hash", nil)
	runInTx(t, fx.txManager, txIdentityRepo, nil)
	txIdentityRepo.EXPECT().UpdateCredentials(ctx, mock.Anything).Return(storeErr)

	_, err := fx.store.ChangePassword(ctx, identity, "pw1", "pw2")

	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreError(err))
}

func TestIdentityStore_GenerateResetToken(t *testing.T) {
	fx := createTestIdentityStore(t)
	ctx := context.Background()
	identity := newTestIdentity("alice")

	var stored *entity.ResetToken
	fx.resetTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ResetToken")).
		Run(func(_ context.Context, token *entity.ResetToken) { stored = token }).
		Return(nil)

	token, err := fx.store.GenerateResetToken(ctx, identity)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, token.Value)
	assert.Equal(t, hashResetToken(token.Value), stored.TokenHash)
	assert.NotEqual(t, token.Value, stored.TokenHash)
	assert.Equal(t, identity.ID, token.IdentityID)
	assert.Equal(t, identity.SecurityStamp, token.SecurityStamp)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)
}

func TestIdentityStore_ResetPassword_TokenNotUsable(t *testing.T) {
	fx := createTestIdentityStore(t)
	ctx := context.Background()
	identity := newTestIdentity("alice")
	txResetTokenRepo := mockRepo.NewMockResetTokenRepository(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("pw2").Return(nil)
	fx.hasher.EXPECT().Hash("pw2").Return("new-hash", nil)
	runInTx(t, fx.txManager, nil, txResetTokenRepo)
	txResetTokenRepo.EXPECT().
		Consume(ctx, mock.MatchedBy(func(req repository.ConsumeResetToken) bool {
			return req.IdentityID == identity.ID &&
				req.TokenHash == hashResetToken("plain") &&
				req.SecurityStamp == identity.SecurityStamp
		})).
		Return(repository.ErrResetTokenNotUsable)

	_, err := fx.store.ResetPassword(ctx, identity, "plain", "pw2")

	require.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredToken)
}

func TestIdentityStore_PurgeExpiredResetTokens(t *testing.T) {
	fx := createTestIdentityStore(t)
	ctx := context.Background()

	fx.resetTokenRepo.EXPECT().DeleteExpired(ctx, mock.AnythingOfType("time.Time")).Return(int64(3), nil)

	deleted, err := fx.store.PurgeExpiredResetTokens(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
