package entity

import (
	"slices"
	"strings"
)

// Role is a named permission group granted to identities.
type Role string

const (
	// RoleRegisteredUser is granted to every identity created through registration.
	RoleRegisteredUser Role = "RegisteredUser"
	// RoleAdministrator is granted to seeded operator accounts.
	RoleAdministrator Role = "Administrator"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// Roles is a set of role names kept as a slice.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts names to Roles, dropping blanks and duplicates.
// Role names are free-form; there is no fixed whitelist.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(strings.TrimSpace(s))
		if role == "" || result.Contains(role) {
			continue
		}
		result = append(result, role)
	}

	return result
}
