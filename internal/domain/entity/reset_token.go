package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResetToken authorizes exactly one password reset for one identity.
// Only TokenHash is persisted; Value is handed to the caller once and then forgotten.
type ResetToken struct {
	ID            uuid.UUID
	IdentityID    uuid.UUID
	Value         string     // Plaintext token, never stored.
	TokenHash     string     // SHA-256 of Value, hex encoded.
	SecurityStamp string     // Stamp of the identity when the token was issued.
	ExpiresAt     time.Time
	UsedAt        *time.Time // Set when the token is consumed.
	CreatedAt     time.Time
}

// UsableAt reports whether the token can still be consumed at the given time
// by an identity that currently carries stamp.
func (t *ResetToken) UsableAt(now time.Time, stamp string) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt) && t.SecurityStamp == stamp
}
