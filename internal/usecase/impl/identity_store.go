// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"log/slog"
	"strings"
	"sync"
	"time"

	"blogauth/config"
	deliverycontext "blogauth/internal/delivery/context"
	"blogauth/internal/domain/entity"
	domainerrors "blogauth/internal/domain/errors"
	"blogauth/internal/domain/repository"
	"blogauth/internal/domain/service"
	"blogauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	resetTokenBytes      = 32
	defaultResetTokenTTL = time.Hour

	// dummyPassword is hashed once to give unknown-user logins the cost of a real check.
	dummyPassword = "blogauth-unknown-user"
)

// identityStore implements the IdentityStore interface.
type identityStore struct {
	txManager      repository.TransactionManager
	identityRepo   repository.IdentityRepository
	resetTokenRepo repository.ResetTokenRepository
	hasher         service.PasswordHasher
	defaultRoles   entity.Roles
	resetTokenTTL  time.Duration
	now            func() time.Time
	logger         *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// IdentityStoreParams holds dependencies for the identity store, injected by Fx.
type IdentityStoreParams struct {
	fx.In

	TxManager      repository.TransactionManager
	IdentityRepo   repository.IdentityRepository
	ResetTokenRepo repository.ResetTokenRepository
	Hasher         service.PasswordHasher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewIdentityStore is the constructor for identityStore.
func NewIdentityStore(params IdentityStoreParams) usecase.IdentityStore {
	defaultRoles := entity.Roles{entity.RoleRegisteredUser}
	resetTokenTTL := defaultResetTokenTTL
	if params.Config != nil && params.Config.Auth != nil {
		if roles := entity.RolesFromStrings(params.Config.Auth.DefaultRoles); len(roles) > 0 {
			defaultRoles = roles
		}
		if params.Config.Auth.ResetTokenTTL > 0 {
			resetTokenTTL = params.Config.Auth.ResetTokenTTL
		}
	}

	return &identityStore{
		txManager:      params.TxManager,
		identityRepo:   params.IdentityRepo,
		resetTokenRepo: params.ResetTokenRepo,
		hasher:         params.Hasher,
		defaultRoles:   defaultRoles,
		resetTokenTTL:  resetTokenTTL,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the store's logger.
func (s *identityStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *identityStore) FindByUsername(ctx context.Context, username string) (*entity.Identity, error) {
	normalized := entity.NormalizeUsername(username)
	if normalized == "" {
		return nil, repository.ErrIdentityNotFound
	}

	identity, err := s.identityRepo.FindByNormalizedUsername(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find identity")
	}

	return identity, nil
}

func (s *identityStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	identity, err := s.identityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find identity")
	}

	return identity, nil
}

func (s *identityStore) VerifyPassword(identity *entity.Identity, password string) bool {
	if identity == nil || identity.PasswordHash == "" {
		s.hasher.Check(password, s.unknownUserHash())

		return false
	}

	return s.hasher.Check(password, identity.PasswordHash)
}

// unknownUserHash is computed with the configured hasher so its cost matches stored hashes.
// A failed hash leaves it empty and Check then returns early.
func (s *identityStore) unknownUserHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(dummyPassword)
		if err != nil {
			s.logger.Warn("Failed to prepare unknown-user hash", slog.Any("error", err))

			return
		}
		s.dummyHash = hash
	})

	return s.dummyHash
}

func (s *identityStore) ValidatePassword(password string) error {
	return s.hasher.ValidatePasswordStrength(password)
}

func (s *identityStore) Create(ctx context.Context, input usecase.CreateIdentityInput) (*entity.Identity, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithReasons("Username is required.")
	}

	if err := s.hasher.ValidatePasswordStrength(input.Password); err != nil {
		s.log(ctx).Warn("Password validation failed during registration", slog.String("username", username))

		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = s.defaultRoles
	}

	identity := &entity.Identity{
		ID:                 uuid.New(),
		Username:           username,
		NormalizedUsername: entity.NormalizeUsername(username),
		Email:              strings.TrimSpace(input.Email),
		Mobile:             strings.TrimSpace(input.Mobile),
		PasswordHash:       hash,
		Roles:              append(entity.Roles(nil), roles...),
		SecurityStamp:      entity.NewSecurityStamp(),
		EmailConfirmed:     false,
		LockoutEnabled:     true,
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		_, err := identityRepo.FindByNormalizedUsername(ctx, identity.NormalizedUsername)
		if err == nil {
			return domainerrors.ErrUsernameTaken
		}
		if !errors.Is(err, repository.ErrIdentityNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		if err := identityRepo.Create(ctx, identity); err != nil {
			// Lost a race against a concurrent registration.
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return domainerrors.ErrUsernameTaken
			}

			return errors.Wrap(err, "failed to create identity")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Identity created", slog.String("identityID", identity.ID.String()), slog.String("username", identity.Username))

	return identity, nil
}

func (s *identityStore) ChangePassword(ctx context.Context, identity *entity.Identity, currentPassword, newPassword string) (*entity.Identity, error) {
	if !s.VerifyPassword(identity, currentPassword) {
		return nil, domainerrors.ErrInvalidCredential
	}

	hash, err := s.prepareHash(newPassword)
	if err != nil {
		return nil, err
	}

	updated := identity.Clone()
	expected := updated.RotateSecurityStamp()
	updated.PasswordHash = hash

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return s.storeCredentials(ctx, repoFactory, updated, expected)
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Password changed", slog.String("identityID", updated.ID.String()))

	return updated, nil
}

func (s *identityStore) GenerateResetToken(ctx context.Context, identity *entity.Identity) (*entity.ResetToken, error) {
	value, err := newResetTokenValue()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reset token")
	}

	now := s.now().UTC()
	token := &entity.ResetToken{
		ID:            uuid.New(),
		IdentityID:    identity.ID,
		Value:         value,
		TokenHash:     hashResetToken(value),
		SecurityStamp: identity.SecurityStamp,
		ExpiresAt:     now.Add(s.resetTokenTTL),
	}

	if err := s.resetTokenRepo.Create(ctx, token); err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to store reset token")
	}

	return token, nil
}

func (s *identityStore) ResetPassword(ctx context.Context, identity *entity.Identity, token, newPassword string) (*entity.Identity, error) {
	hash, err := s.prepareHash(newPassword)
	if err != nil {
		return nil, err
	}

	updated := identity.Clone()
	expected := updated.RotateSecurityStamp()
	updated.PasswordHash = hash

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.ResetTokenRepo().Consume(ctx, repository.ConsumeResetToken{
			IdentityID:    identity.ID,
			TokenHash:     hashResetToken(token),
			SecurityStamp: expected,
			Now:           s.now().UTC(),
		})
		if err != nil {
			if errors.Is(err, repository.ErrResetTokenNotUsable) {
				return domainerrors.ErrInvalidOrExpiredToken
			}

			return errors.Wrap(err, "failed to consume reset token")
		}

		return s.storeCredentials(ctx, repoFactory, updated, expected)
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Password reset", slog.String("identityID", updated.ID.String()))

	return updated, nil
}

func (s *identityStore) PurgeExpiredResetTokens(ctx context.Context) (int64, error) {
	deleted, err := s.resetTokenRepo.DeleteExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired reset tokens")
	}

	if deleted > 0 {
		s.log(ctx).Info("Expired reset tokens removed", slog.Int64("count", deleted))
	}

	return deleted, nil
}

func (s *identityStore) prepareHash(password string) (string, error) {
	if err := s.hasher.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return hash, nil
}

// storeCredentials writes the new hash guarded by the previous stamp and retires outstanding reset tokens.
func (s *identityStore) storeCredentials(ctx context.Context, repoFactory repository.RepositoryFactory, updated *entity.Identity, expectedStamp string) error {
	err := repoFactory.IdentityRepo().UpdateCredentials(ctx, repository.CredentialUpdate{
		IdentityID:    updated.ID,
		PasswordHash:  updated.PasswordHash,
		SecurityStamp: updated.SecurityStamp,
		ExpectedStamp: expectedStamp,
	})
	switch {
	case errors.Is(err, repository.ErrStaleSecurityStamp):
		s.log(ctx).Warn("Credential update lost a concurrent race", slog.String("identityID", updated.ID.String()))

		return domainerrors.ErrStaleCredential
	case errors.Is(err, repository.ErrIdentityNotFound):
		return domainerrors.ErrUserNotFound
	case err != nil:
		return errors.Wrap(err, "failed to update credentials")
	}

	if err := repoFactory.ResetTokenRepo().InvalidateForIdentity(ctx, updated.ID, s.now().UTC()); err != nil {
		return errors.Wrap(err, "failed to invalidate reset tokens")
	}

	return nil
}

func newResetTokenValue() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func hashResetToken(value string) string {
	sum := sha256.Sum256([]byte(value))

	return hex.EncodeToString(sum[:])
}
