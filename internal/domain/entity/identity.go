// Package entity contains the core business objects of the credential service,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is the canonical credential record. It is the only record consulted
// when deciding whether a caller is who they claim to be.
type Identity struct {
	ID                 uuid.UUID // Stable identifier assigned at creation, never changes.
	Username           string    // Username as the user typed it at registration.
	NormalizedUsername string    // Case-insensitive lookup key, see NormalizeUsername.
	Email              string    // Contact email captured at registration.
	Mobile             string    // Optional phone number captured at registration.
	PasswordHash       string    // Output of the PasswordHasher. Only ever compared through Check.
	Roles              Roles     // Role names granted to this identity.
	SecurityStamp      string    // Rotated on every credential change.
	EmailConfirmed     bool      // Defaults to false until a confirmation flow marks it.
	LockoutEnabled     bool      // Defaults to true for every new identity.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NormalizeUsername produces the lookup key used for uniqueness and lookups.
func NormalizeUsername(username string) string {
	return strings.ToUpper(strings.TrimSpace(username))
}

// NewSecurityStamp returns a fresh opaque stamp.
func NewSecurityStamp() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// RotateSecurityStamp replaces the stamp and returns the previous one,
// which callers use as the optimistic concurrency guard when persisting.
func (i *Identity) RotateSecurityStamp() string {
	previous := i.SecurityStamp
	i.SecurityStamp = NewSecurityStamp()

	return previous
}

// Clone returns a deep copy so callers can mutate without aliasing store state.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}

	cloned := *i
	cloned.Roles = append(Roles(nil), i.Roles...)

	return &cloned
}
