package model

import "time"

// MirrorModel mirrors the legacy flat 'legacy_users' table read by older consumers.
type MirrorModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(256);not null;uniqueIndex:idx_legacy_users_username"`
	PasswordHash string    `gorm:"type:text;not null"`
	SyncedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MirrorModel) TableName() string {
	return "legacy_users"
}
