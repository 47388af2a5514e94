// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Mobile   string
}

// ChangePasswordInput carries the current and the desired password.
type ChangePasswordInput struct {
	Username        string
	CurrentPassword string
	NewPassword     string
}

// ResetPasswordInput carries the desired password for an administrative reset.
type ResetPasswordInput struct {
	Username    string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput is returned only for successful logins; failures are errors.
type LoginOutput struct {
	Success   bool
	Message   string
	Token     string
	ExpiresAt time.Time
}

// RegisterOutput confirms the account creation. No token is issued.
type RegisterOutput struct {
	Message  string
	Username string
}

// CredentialChangeOutput reports a committed password change.
// PartialSuccess is set when the mirror store could not be updated afterwards.
type CredentialChangeOutput struct {
	Message        string
	PartialSuccess bool
	Warnings       []string
}

// AuthUsecase defines the credential operations exposed to the delivery layer.
type AuthUsecase interface {
	// Login verifies the credentials and issues an access token.
	// Unknown users and wrong passwords fail with the same ErrUnauthorized.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Register creates a new identity. It fails with ErrUsernameTaken when the name is in use.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// ChangePassword replaces the password after verifying the current one.
	ChangePassword(ctx context.Context, input ChangePasswordInput) (*CredentialChangeOutput, error)

	// ResetPassword replaces the password through a server-side reset token.
	ResetPassword(ctx context.Context, input ResetPasswordInput) (*CredentialChangeOutput, error)
}
