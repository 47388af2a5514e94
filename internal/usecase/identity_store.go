package usecase

import (
	"context"

	"blogauth/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateIdentityInput defines the data required to create an identity.
// Roles falls back to the configured default roles when empty.
type CreateIdentityInput struct {
	Username string
	Email    string
	Mobile   string
	Password string
	Roles    entity.Roles
}

// IdentityStore is the authoritative credential store. Hashing happens here and
// nowhere else.
type IdentityStore interface {
	// FindByUsername performs a case-insensitive lookup.
	// It returns repository.ErrIdentityNotFound when no identity matches.
	FindByUsername(ctx context.Context, username string) (*entity.Identity, error)

	// FindByID reads the identity from the primary.
	// It returns repository.ErrIdentityNotFound when no identity matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// VerifyPassword checks plaintext against the identity's hash. A nil identity
	// still costs one hash comparison and yields false.
	VerifyPassword(identity *entity.Identity, password string) bool

	// ValidatePassword applies the password policy without storing anything.
	ValidatePassword(password string) error

	// Create hashes the password, assigns a fresh security stamp and persists the identity.
	Create(ctx context.Context, input CreateIdentityInput) (*entity.Identity, error)

	// ChangePassword verifies currentPassword, then stores the new hash and rotates the stamp.
	// The returned identity carries the committed hash and stamp.
	ChangePassword(ctx context.Context, identity *entity.Identity, currentPassword, newPassword string) (*entity.Identity, error)

	// GenerateResetToken issues a single-use token bound to the identity's current stamp.
	// The plaintext is only available on the returned value.
	GenerateResetToken(ctx context.Context, identity *entity.Identity) (*entity.ResetToken, error)

	// ResetPassword consumes token and stores the new hash, rotating the stamp.
	ResetPassword(ctx context.Context, identity *entity.Identity, token, newPassword string) (*entity.Identity, error)

	// PurgeExpiredResetTokens deletes reset tokens that can no longer be consumed.
	PurgeExpiredResetTokens(ctx context.Context) (int64, error)
}
