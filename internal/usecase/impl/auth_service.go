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
	"blogauth/internal/domain/service"
	"blogauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	opChangePassword = "change_password"
	opResetPassword  = "reset_password"

	msgLoginSuccessful   = "Login successful"
	msgUserCreated       = "User created successfully."
	msgPasswordChanged   = "Password changed successfully."
	msgPasswordReset     = "Password reset successfully."
	warnMirrorNotUpdated = "The password was updated, but the legacy credential store could not be updated. It will be reconciled automatically."
)

// authService implements the AuthUsecase interface.
type authService struct {
	identityStore  usecase.IdentityStore
	syncer         usecase.MirrorSyncer
	tokenService   service.TokenService
	requestTimeout time.Duration
	metrics        usecase.MetricsRecorder
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	IdentityStore usecase.IdentityStore
	Syncer        usecase.MirrorSyncer
	TokenService  service.TokenService
	Config        *config.Config
	Metrics       usecase.MetricsRecorder `optional:"true"`
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var requestTimeout time.Duration
	if params.Config != nil {
		requestTimeout = params.Config.HTTP.RequestTimeout
	}

	return &authService{
		identityStore:  params.IdentityStore,
		syncer:         params.Syncer,
		tokenService:   params.TokenService,
		requestTimeout: requestTimeout,
		metrics:        metricsOrNoop(params.Metrics),
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// withTimeout bounds one operation. A zero timeout keeps the caller's deadline.
func (srv *authService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if srv.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, srv.requestTimeout)
}

// Login verifies the credentials against the identity store only and issues an access token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	ctx, cancel := srv.withTimeout(ctx)
	defer cancel()

	identity, err := srv.identityStore.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			// Spend the same hashing time as a wrong password.
			srv.identityStore.VerifyPassword(nil, input.Password)
			srv.metrics.RecordLogin(resultFailure)
			srv.log(ctx).Info("Login rejected", slog.String("reason", "unknown_user"))

			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to look up identity")
	}

	if !srv.identityStore.VerifyPassword(identity, input.Password) {
		srv.metrics.RecordLogin(resultFailure)
		srv.log(ctx).Info("Login rejected", slog.String("reason", "bad_password"), slog.String("identityID", identity.ID.String()))

		return nil, domainerrors.ErrUnauthorized
	}

	token, err := srv.tokenService.Issue(ctx, identity)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.String("identityID", identity.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	// Login never depends on the mirror, and only backfills a missing row: the identity
	// read above may already be stale.
	if err := srv.syncer.EnsureOnce(ctx, identity); err != nil {
		srv.log(ctx).Warn("Best-effort mirror sync on login failed", slog.String("identityID", identity.ID.String()))
	}

	srv.metrics.RecordLogin(resultSuccess)
	srv.log(ctx).Info("Login successful", slog.String("identityID", identity.ID.String()))

	return &usecase.LoginOutput{
		Success:   true,
		Message:   msgLoginSuccessful,
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	ctx, cancel := srv.withTimeout(ctx)
	defer cancel()

	identity, err := srv.identityStore.Create(ctx, usecase.CreateIdentityInput{
		Username: input.Username,
		Email:    input.Email,
		Mobile:   input.Mobile,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}

	if err := srv.syncer.SyncOnce(ctx, identity); err != nil {
		srv.log(ctx).Warn("Best-effort mirror seed on registration failed", slog.String("identityID", identity.ID.String()))
	}

	return &usecase.RegisterOutput{
		Message:  msgUserCreated,
		Username: identity.Username,
	}, nil
}

func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) (*usecase.CredentialChangeOutput, error) {
	ctx, cancel := srv.withTimeout(ctx)
	defer cancel()

	identity, err := srv.findForCredentialChange(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	updated, err := srv.identityStore.ChangePassword(ctx, identity, input.CurrentPassword, input.NewPassword)
	if err != nil {
		srv.metrics.RecordCredentialChange(opChangePassword, resultFailure)

		return nil, err
	}

	return srv.completeCredentialChange(ctx, opChangePassword, updated, msgPasswordChanged), nil
}

func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) (*usecase.CredentialChangeOutput, error) {
	ctx, cancel := srv.withTimeout(ctx)
	defer cancel()

	identity, err := srv.findForCredentialChange(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	if err := srv.identityStore.ValidatePassword(input.NewPassword); err != nil {
		srv.metrics.RecordCredentialChange(opResetPassword, resultFailure)

		return nil, err
	}

	token, err := srv.identityStore.GenerateResetToken(ctx, identity)
	if err != nil {
		srv.metrics.RecordCredentialChange(opResetPassword, resultFailure)

		return nil, err
	}

	updated, err := srv.identityStore.ResetPassword(ctx, identity, token.Value, input.NewPassword)
	if err != nil {
		srv.metrics.RecordCredentialChange(opResetPassword, resultFailure)

		return nil, err
	}

	return srv.completeCredentialChange(ctx, opResetPassword, updated, msgPasswordReset), nil
}

func (srv *authService) findForCredentialChange(ctx context.Context, username string) (*entity.Identity, error) {
	identity, err := srv.identityStore.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to look up identity")
	}

	return identity, nil
}

// completeCredentialChange pushes the committed hash to the mirror. A mirror failure
// downgrades the result to a partial success; the identity change stays committed.
func (srv *authService) completeCredentialChange(ctx context.Context, op string, updated *entity.Identity, message string) *usecase.CredentialChangeOutput {
	output := &usecase.CredentialChangeOutput{Message: message}

	if err := srv.syncer.Sync(ctx, updated); err != nil {
		srv.metrics.RecordCredentialChange(op, resultPartial)
		srv.log(ctx).Warn("Credential change committed without mirror update",
			slog.String("op", op),
			slog.String("identityID", updated.ID.String()),
			slog.Any("error", err),
		)

		output.PartialSuccess = true
		output.Warnings = []string{warnMirrorNotUpdated}

		return output
	}

	srv.metrics.RecordCredentialChange(op, resultSuccess)

	return output
}
