package repository

import (
	"context"
	"errors"

	"blogauth/internal/domain/entity"
)

// ErrMirrorNotFound is returned when no mirror row exists for a username.
var ErrMirrorNotFound = errors.New("mirror record not found")

// MirrorRepository is the legacy flat credential table. It is written after
// identity changes commit and must never be used to make authentication decisions.
type MirrorRepository interface {
	// UpsertByUsername overwrites the hash of the row for username, or inserts one.
	// There is never more than one row per username.
	UpsertByUsername(ctx context.Context, username, passwordHash string) (*entity.MirrorRecord, error)

	// InsertIfMissing creates the row for username only when none exists.
	// An existing row is left as is and reported with false.
	InsertIfMissing(ctx context.Context, username, passwordHash string) (bool, error)

	// FindByUsername returns the mirror row for username.
	FindByUsername(ctx context.Context, username string) (*entity.MirrorRecord, error)

	// FindByUsernames returns the rows found for the given usernames, keyed by username.
	FindByUsernames(ctx context.Context, usernames []string) (map[string]*entity.MirrorRecord, error)
}
