package entity

import "time"

// MirrorRecord is the flat credential row read by legacy consumers.
// It is derived from an Identity and never used to authenticate anyone.
type MirrorRecord struct {
	ID           int64  // Store-local identity column, unrelated to Identity.ID.
	Username     string // Copied from Identity.Username at sync time.
	PasswordHash string // Copied from Identity.PasswordHash at sync time.
	SyncedAt     time.Time
}

// InSyncWith reports whether the mirror row already reflects the identity's current hash.
func (m *MirrorRecord) InSyncWith(identity *Identity) bool {
	return m != nil && identity != nil &&
		m.Username == identity.Username &&
		m.PasswordHash == identity.PasswordHash
}
