package repository

import (
	"context"
	"errors"
	"time"

	"blogauth/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrResetTokenNotUsable is returned when a reset token does not exist, was already
// consumed, has expired, or was issued under an older security stamp.
var ErrResetTokenNotUsable = errors.New("reset token not usable")

// ConsumeResetToken names the token to consume and the conditions it must satisfy.
type ConsumeResetToken struct {
	IdentityID    uuid.UUID
	TokenHash     string
	SecurityStamp string    // Current stamp of the identity.
	Now           time.Time // Consumption time; also the expiry cut-off.
}

// ResetTokenRepository persists single-use password reset tokens.
type ResetTokenRepository interface {
	// Create stores a new reset token. Only the hash is persisted.
	Create(ctx context.Context, token *entity.ResetToken) error

	// Consume atomically marks the matching usable token as used.
	// Returns ErrResetTokenNotUsable if no token satisfies every condition.
	Consume(ctx context.Context, req ConsumeResetToken) error

	// InvalidateForIdentity marks every outstanding token of the identity as used.
	InvalidateForIdentity(ctx context.Context, identityID uuid.UUID, now time.Time) error

	// DeleteExpired removes tokens that expired before the cut-off.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
