package model

import (
	"time"

	"github.com/google/uuid"
)

// ResetTokenModel mirrors the 'password_reset_tokens' table. Only the SHA-256 of the token is stored.
type ResetTokenModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	IdentityID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TokenHash     string     `gorm:"type:char(64);not null;uniqueIndex"`
	SecurityStamp string     `gorm:"type:varchar(64);not null"`
	ExpiresAt     time.Time  `gorm:"not null"`
	UsedAt        *time.Time
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
