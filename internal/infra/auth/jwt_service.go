package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"blogauth/config"
	"blogauth/internal/domain/entity"
	domainerrors "blogauth/internal/domain/errors"
	"blogauth/internal/domain/service"
	"blogauth/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	parser   *jwt.Parser
	now      func() time.Time
}

// NewJWTService is the constructor for jwtService.
// A missing signing key is reported at construction so the process fails at start.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.JWT == nil || strings.TrimSpace(cfg.JWT.SecurityKey) == "" {
		return nil, domainerrors.ErrSigningKeyMissing
	}

	ttl := cfg.JWT.Expiration
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(now),
	}
	if cfg.JWT.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWT.Issuer))
	}
	if cfg.JWT.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.JWT.Audience))
	}

	return &jwtService{
		secret:   []byte(cfg.JWT.SecurityKey),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		ttl:      ttl,
		parser:   jwt.NewParser(opts...),
		now:      now,
	}, nil
}

// Issue signs an access token carrying the identity's name, id, roles and security stamp.
func (s *jwtService) Issue(ctx context.Context, identity *entity.Identity) (*service.AccessToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, errors.New("identity is required")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := service.Claims{
		UserID:        identity.ID,
		Roles:         identity.Roles.ToStrings(),
		SecurityStamp: identity.SecurityStamp,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}

	// A caller that gave up while signing gets nothing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &service.AccessToken{Value: signed, ExpiresAt: expiresAt}, nil
}

// Validate parses the token and checks algorithm, signature, issuer, audience and expiry.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails(err.Error())
	}
	if !token.Valid || claims.UserID == uuid.Nil || claims.Subject == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	return claims, nil
}
