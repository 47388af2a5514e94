package impl

import (
	"context"
	"testing"
	"time"

	"blogauth/internal/domain/entity"
	domainerrors "blogauth/internal/domain/errors"
	"blogauth/internal/domain/repository"
	"blogauth/internal/domain/service"
	mockSvc "blogauth/internal/mocks/service"
	mockUsecase "blogauth/internal/mocks/usecase"
	"blogauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service       usecase.AuthUsecase
	identityStore *mockUsecase.MockIdentityStore
	syncer        *mockUsecase.MockMirrorSyncer
	tokenService  *mockSvc.MockTokenService
	metrics       *mockUsecase.MockMetricsRecorder
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	identityStore := mockUsecase.NewMockIdentityStore(t)
	syncer := mockUsecase.NewMockMirrorSyncer(t)
	tokenService := mockSvc.NewMockTokenService(t)
	metrics := mockUsecase.NewMockMetricsRecorder(t)

	svc := NewAuthService(AuthServiceParams{
		IdentityStore: identityStore,
		Syncer:        syncer,
		TokenService:  tokenService,
		Config:        newTestConfig(),
		Metrics:       metrics,
		Logger:        newDiscardLogger(),
	})

	return authServiceFixtures{
		service:       svc,
		identityStore: identityStore,
		syncer:        syncer,
		tokenService:  tokenService,
		metrics:       metrics,
	}
}

func newTestIdentity(username string) *entity.Identity {
	return &entity.Identity{
		ID:                 uuid.New(),
		Username:           username,
		NormalizedUsername: entity.NormalizeUsername(username),
		PasswordHash:       "hash-" + username,
		Roles:              entity.Roles{entity.RoleRegisteredUser},
		SecurityStamp:      entity.NewSecurityStamp(),
		LockoutEnabled:     true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	identity := newTestIdentity("alice")
	expiresAt := time.Now().Add(30 * time.Minute)

	fx.identityStore.EXPECT().
		FindByUsername(mock.Anything, "alice").
		Run(func(ctx context.Context, _ string) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "request timeout should bound store calls")
		}).
		Return(identity, nil)
	fx.identityStore.EXPECT().VerifyPassword(identity, "pw1").Return(true)
	fx.tokenService.EXPECT().
		Issue(mock.Anything, identity).
		Return(&service.AccessToken{Value: "signed.jwt.token", ExpiresAt: expiresAt}, nil)
	fx.syncer.EXPECT().EnsureOnce(mock.Anything, identity).Return(nil)
	fx.metrics.EXPECT().RecordLogin(resultSuccess).Return()

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "alice", Password: "pw1"})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, "Login successful", output.Message)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestAuthService_Login_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	fx := createTestAuthService(t)
	identity := newTestIdentity("alice")

	fx.identityStore.EXPECT().FindByUsername(mock.Anything, "mallory").Return(nil, repository.ErrIdentityNotFound)
	fx.identityStore.EXPECT().VerifyPassword((*entity.Identity)(nil), "pw1").Return(false).Once()
	fx.identityStore.EXPECT().FindByUsername(mock.Anything, "alice").Return(identity, nil)
	fx.identityStore.EXPECT().VerifyPassword(identity, "wrong").Return(false)
	fx.metrics.EXPECT().RecordLogin(resultFailure).Return().Times(2)

	unknownOut, unknownErr := fx.service.Login(context.Background(), usecase.LoginInput{Username: "mallory", Password: "pw1"})
	wrongOut, wrongErr := fx.service.Login(context.Background(), usecase.LoginInput{Username: "alice", Password: "wrong"})

	assert.Nil(t, unknownOut)
	assert.Nil(t, wrongOut)
	require.ErrorIs(t, unknownErr, domainerrors.ErrUnauthorized)
	require.ErrorIs(t, wrongErr, domainerrors.ErrUnauthorized)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())

	var unknownApp, wrongApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(wrongErr, &wrongApp))
	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
}

func TestAuthService_Login_MirrorFailureDoesNotAffectResult(t *testing.T) {
	fx := createTestAuthService(t)
	identity := newTestIdentity("alice")

	fx.identityStore.EXPECT().FindByUsername(mock.Anything, "alice").Return(identity, nil)
	fx.identityStore.EXPECT().VerifyPassword(identity, "pw1").Return(true)
	fx.tokenService.EXPECT().
		Issue(mock.Anything, identity).
		Return(&service.AccessToken{Value: "token", ExpiresAt: time.Now().Add(time.Minute)}, nil)
	fx.syncer.EXPECT().EnsureOnce(mock.Anything, identity).Return(domainerrors.ErrSyncFailure)
	fx.metrics.EXPECT().RecordLogin(resultSuccess).Return()

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "alice", Password: "pw1"})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, "token", output.Token)
}

func TestAuthService_Login_IssueFailureReturnsNoToken(t *testing.T) {
	fx := createTestAuthService(t)
	identity := newTestIdentity("alice")

	fx.identityStore.EXPECT().FindByUsername(mock.Anything, "alice").Return(identity, nil)
	fx.identityStore.EXPECT().VerifyPassword(identity, "pw1").Return(true)
	fx.tokenService.EXPECT().Issue(mock.Anything, identity).Return(nil, context.Canceled)

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "alice", Password: "pw1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, output)
}

func TestAuthService_Login_StoreErrorIsNotUnauthorized(t *testing.T) {
	fx := createTestAuthService(t)
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "find identity")

	fx.identityStore.EXPECT().FindByUsername(mock.Anything, "alice").Return(nil, storeErr)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "alice", Password: "pw1"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.True(t, domainerrors.IsStoreError(err))
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	identity := newTestIdentity("alice")

	fx.identityStore.EXPECT().
		Create(mock.Anything, usecase.CreateIdentityInput{
			Username: "alice",
			Email:    "alice@example.com",
			Mobile:   "0912345678",
			Password: "pw1",
		}).
		Return(identity, nil)
	fx.syncer.EXPECT().SyncOnce(mock.Anything, identity).Return(nil)

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw1",
		Mobile:   "0912345678",
	})

	require.NoError(t, err)
	assert.Equal(t, "User created successfully.", output.Message)
	assert.Equal(t, "alice", output.Username)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.identityStore.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUsernameTaken)

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{Username: "alice", Password: "pw1"})

	require.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	assert.Nil(t, output)
}

func TestAuthService_Register_MirrorSeedFailureIsIgnored(t *testing.T) {
	fx := createTestAuthService(t)
	identity := newTestIdentity("alice")

	fx.identityStore.EXPECT().Create(mock.Anything, mock.Anything).Return(identity, nil)
	fx.syncer.EXPECT().SyncOnce(mock.Anything, identity).Return(domainerrors.ErrSyncFailure)

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{Username: "alice", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, "alice", output.Username)
}

func TestAuthService_ChangePassword_UserNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	fx.identityStore.EXPECT().FindByUsername(mock.Anything, "ghost").Return(nil, repository.ErrIdentityNotFound)

	output, err := fx.service.ChangePassword(context.Background(), usecase.ChangePasswordInput{
		Username:        "ghost",
		CurrentPassword: "pw1",
		NewPassword:     "pw2",
	})

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, output)
}

func TestAuthService_ChangePassword_InvalidCurrentPassword(t *testing.T) {
	fx := createTestAuthService(t)
	identity := newTestIdentity("alice")

	fx.identityStore.EXPECT().FindByUsername(mock.Anything, "alice").Return(identity, nil)
	fx.identityStore.EXPECT().
		ChangePassword(mock.Anything, identity, "pwX", "pw2").
		Return(nil, domainerrors.ErrInvalidCredential)
	fx.metrics.EXPECT().RecordCredentialChange(opChangePassword, resultFailure).Return()

	output, err := fx.service.ChangePassword(context.Background(), usecase.ChangePasswordInput{
		Username:        "alice",
		CurrentPassword: "pwX",
		NewPassword:     "pw2",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredential)
	assert.Nil(t, output)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)
	identity := newTestIdentity("alice")
	updated := identity.Clone()
	updated.PasswordHash = "new-hash"
	updated.RotateSecurityStamp()

	fx.identityStore.EXPECT().FindByUsername(mock.Anything, "alice").Return(identity, nil)
	fx.identityStore.EXPECT().ChangePassword(mock.Anything, identity, "pw1", "pw2").Return(updated, nil)
	fx.syncer.EXPECT().Sync(mock.Anything, updated).Return(nil)
	fx.metrics.EXPECT().RecordCredentialChange(opChangePassword, resultSuccess).Return()

	output, err := fx.service.ChangePassword(context.Background(), usecase.ChangePasswordInput{
		Username:        "alice",
		CurrentPassword: "pw1",
		NewPassword:     "pw2",
	})

	require.NoError(t, err)
	assert.Equal(t, "Password changed successfully.", output.Message)
	assert.False(t, output.PartialSuccess)
	assert.Empty(t, output.Warnings)
}

func TestAuthService_ChangePassword_MirrorFailureIsPartialSuccess(t *testing.T) {
	fx := createTestAuthService(t)
	identity := newTestIdentity("alice")
	updated := identity.Clone()
	updated.PasswordHash = "new-hash"

	fx.identityStore.EXPECT().FindByUsername(mock.Anything, "alice").Return(identity, nil)
	fx.identityStore.EXPECT().ChangePassword(mock.Anything, identity, "pw1", "pw2").Return(updated, nil)
	fx.syncer.EXPECT().Sync(mock.Anything, updated).Return(errors.Wrap(domainerrors.ErrSyncFailure, "mirror down"))
	fx.metrics.EXPECT().RecordCredentialChange(opChangePassword, resultPartial).Return()

	output, err := fx.service.ChangePassword(context.Background(), usecase.ChangePasswordInput{
		Username:        "alice",
		CurrentPassword: "pw1",
		NewPassword:     "pw2",
	})

	require.NoError(t, err)
	assert.True(t, output.PartialSuccess)
	assert.Equal(t, "Password changed successfully.", output.Message)
	require.Len(t, output.Warnings, 1)
	assert.Contains(t, output.Warnings[0], "legacy credential store")
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)
	identity := newTestIdentity("alice")
	token := &entity.ResetToken{ID: uuid.New(), IdentityID: identity.ID, Value: "plain-token"}
	updated := identity.Clone()
	updated.PasswordHash = "reset-hash"

	fx.identityStore.EXPECT().FindByUsername(mock.Anything, "alice").Return(identity, nil)
	fx.identityStore.EXPECT().ValidatePassword("pw9").Return(nil)
	fx.identityStore.EXPECT().GenerateResetToken(mock.Anything, identity).Return(token, nil)
	fx.identityStore.EXPECT().ResetPassword(mock.Anything, identity, "plain-token", "pw9").Return(updated, nil)
	fx.syncer.EXPECT().Sync(mock.Anything, updated).Return(nil)
	fx.metrics.EXPECT().RecordCredentialChange(opResetPassword, resultSuccess).Return()

	output, err := fx.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{Username: "alice", NewPassword: "pw9"})

	require.NoError(t, err)
	assert.Equal(t, "Password reset successfully.", output.Message)
	assert.False(t, output.PartialSuccess)
}

func TestAuthService_ResetPassword_UserNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	fx.identityStore.EXPECT().FindByUsername(mock.Anything, "ghost").Return(nil, repository.ErrIdentityNotFound)

	_, err := fx.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{Username: "ghost", NewPassword: "pw9"})

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_ResetPassword_WeakPasswordIssuesNoToken(t *testing.T) {
	fx := createTestAuthService(t)
	identity := newTestIdentity("alice")
	weak := domainerrors.ErrPasswordStrength.WithReasons("Passwords must be at least 6 characters.")

	fx.identityStore.EXPECT().FindByUsername(mock.Anything, "alice").Return(identity, nil)
	fx.identityStore.EXPECT().ValidatePassword("pw").Return(weak)
	fx.metrics.EXPECT().RecordCredentialChange(opResetPassword, resultFailure).Return()

	output, err := fx.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{Username: "alice", NewPassword: "pw"})

	require.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	assert.Nil(t, output)
	fx.identityStore.AssertNotCalled(t, "GenerateResetToken", mock.Anything, mock.Anything)
	fx.identityStore.AssertNotCalled(t, "ResetPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ResetPassword_TokenRejected(t *testing.T) {
	fx := createTestAuthService(t)
	identity := newTestIdentity("alice")
	token := &entity.ResetToken{ID: uuid.New(), IdentityID: identity.ID, Value: "plain-token"}

	fx.identityStore.EXPECT().FindByUsername(mock.Anything, "alice").Return(identity, nil)
	fx.identityStore.EXPECT().ValidatePassword("pw9").Return(nil)
	fx.identityStore.EXPECT().GenerateResetToken(mock.Anything, identity).Return(token, nil)
	fx.identityStore.EXPECT().
		ResetPassword(mock.Anything, identity, "plain-token", "pw9").
		Return(nil, domainerrors.ErrInvalidOrExpiredToken)
	fx.metrics.EXPECT().RecordCredentialChange(opResetPassword, resultFailure).Return()

	output, err := fx.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{Username: "alice", NewPassword: "pw9"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredToken)
	assert.Nil(t, output)
}

func TestAuthService_ResetPassword_MirrorFailureIsPartialSuccess(t *testing.T) {
	fx := createTestAuthService(t)
	identity := newTestIdentity("alice")
	token := &entity.ResetToken{ID: uuid.New(), IdentityID: identity.ID, Value: "plain-token"}
	updated := identity.Clone()

	fx.identityStore.EXPECT().FindByUsername(mock.Anything, "alice").Return(identity, nil)
	fx.identityStore.EXPECT().ValidatePassword("pw9").Return(nil)
	fx.identityStore.EXPECT().GenerateResetToken(mock.Anything, identity).Return(token, nil)
	fx.identityStore.EXPECT().ResetPassword(mock.Anything, identity, "plain-token", "pw9").Return(updated, nil)
	fx.syncer.EXPECT().Sync(mock.Anything, updated).Return(domainerrors.ErrSyncFailure)
	fx.metrics.EXPECT().RecordCredentialChange(opResetPassword, resultPartial).Return()

	output, err := fx.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{Username: "alice", NewPassword: "pw9"})

	require.NoError(t, err)
	assert.True(t, output.PartialSuccess)
	require.Len(t, output.Warnings, 1)
}
