// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"blogauth/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for identity persistence.
var (
	// ErrIdentityNotFound is returned when no identity matches the lookup.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrDuplicateUsername is returned when the normalized username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrStaleSecurityStamp is returned when a credential update lost an optimistic concurrency race.
	ErrStaleSecurityStamp = errors.New("security stamp changed since the identity was read")
)

// CredentialUpdate carries a new password hash together with the stamp the
// caller read. The update is applied only if the stored stamp still matches.
type CredentialUpdate struct {
	IdentityID    uuid.UUID
	PasswordHash  string
	SecurityStamp string // New stamp to store.
	ExpectedStamp string // Stamp the caller observed before mutating.
}

// IdentityRepository defines the operations on the canonical identity store.
type IdentityRepository interface {
	// FindByNormalizedUsername retrieves an identity by its case-insensitive key.
	FindByNormalizedUsername(ctx context.Context, normalized string) (*entity.Identity, error)

	// FindByID retrieves a single identity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// Create persists a new identity with its roles. Missing roles are created on the fly.
	Create(ctx context.Context, identity *entity.Identity) error

	// UpdateCredentials stores a new hash and stamp, guarded by ExpectedStamp.
	// Returns ErrStaleSecurityStamp when the guard fails and ErrIdentityNotFound when the row is gone.
	UpdateCredentials(ctx context.Context, update CredentialUpdate) error

	// ListPage returns up to limit identities ordered by ID, starting after the given ID.
	// Pass uuid.Nil to start from the beginning.
	ListPage(ctx context.Context, after uuid.UUID, limit int) ([]*entity.Identity, error)
}
