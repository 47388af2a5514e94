package service

import (
	"context"
	"time"

	"blogauth/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
// Subject holds the username.
type Claims struct {
	UserID        uuid.UUID `json:"uid"`
	Roles         []string  `json:"roles,omitempty"`
	SecurityStamp string    `json:"sst,omitempty"`
	jwt.RegisteredClaims
}

// AccessToken is a fully signed bearer token.
type AccessToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenService builds, signs and validates access tokens.
type TokenService interface {
	// Issue signs a token for the identity. It either returns a complete token or an error.
	Issue(ctx context.Context, identity *entity.Identity) (*AccessToken, error)

	// Validate checks signature, issuer, audience and expiration.
	// Any failure yields an ErrInvalidToken.
	Validate(tokenString string) (*Claims, error)
}
