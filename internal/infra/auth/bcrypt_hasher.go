// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"blogauth/config"
	domainerrors "blogauth/internal/domain/errors"
	"blogauth/internal/domain/service"
	"blogauth/internal/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from the auth and passwordStrength sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	var policy config.PasswordStrengthConfig
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return NewBcryptHasherWithPolicy(cost, policy)
}

// NewBcryptHasherWithPolicy creates a hasher with an explicit cost and strength policy.
// Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewBcryptHasherWithPolicy(cost int, policy config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	// err is nil if the password and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength reports every policy violation at once.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	var reasons []string

	if h.policy.MinLength > 0 && utf8.RuneCountInString(password) < h.policy.MinLength {
		reasons = append(reasons, fmt.Sprintf("Passwords must be at least %d characters.", h.policy.MinLength))
	}
	if h.policy.MaxLength > 0 && len(password) > h.policy.MaxLength {
		reasons = append(reasons, fmt.Sprintf("Passwords must be at most %d bytes.", h.policy.MaxLength))
	}
	if h.policy.RequireSpecial && !h.hasSpecialChars(password) {
		reasons = append(reasons, "Passwords must have at least one non alphanumeric character.")
	}
	if h.policy.RequireNumbers && !h.hasNumbers(password) {
		reasons = append(reasons, "Passwords must have at least one digit ('0'-'9').")
	}
	if h.policy.RequireLowercase && !h.hasLowercase(password) {
		reasons = append(reasons, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if h.policy.RequireUppercase && !h.hasUppercase(password) {
		reasons = append(reasons, "Passwords must have at least one uppercase ('A'-'Z').")
	}

	if len(reasons) > 0 {
		return domainerrors.ErrPasswordStrength.WithReasons(reasons...)
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return containsRune(s, unicode.IsUpper)
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return containsRune(s, unicode.IsLower)
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return containsRune(s, unicode.IsDigit)
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return containsRune(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func containsRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}

	return false
}
