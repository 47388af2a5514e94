// Package model holds the GORM persistence models of the identity and mirror stores.
package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table. IDs are assigned by the application.
type IdentityModel struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Username           string      `gorm:"type:varchar(256);not null"`
	NormalizedUsername string      `gorm:"type:varchar(256);not null;uniqueIndex:idx_identities_normalized_username"`
	Email              string      `gorm:"type:varchar(256)"`
	Mobile             string      `gorm:"type:varchar(64)"`
	PasswordHash       string      `gorm:"type:text;not null"`
	SecurityStamp      string      `gorm:"type:varchar(64);not null"`
	EmailConfirmed     bool        `gorm:"not null"`
	LockoutEnabled     bool        `gorm:"not null"`
	Roles              []RoleModel `gorm:"many2many:identity_roles;joinForeignKey:IdentityID;joinReferences:RoleID"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(256);not null;uniqueIndex:idx_roles_name"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// IdentityRoleModel mirrors the 'identity_roles' join table.
type IdentityRoleModel struct {
	IdentityID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID     uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (IdentityRoleModel) TableName() string {
	return "identity_roles"
}
