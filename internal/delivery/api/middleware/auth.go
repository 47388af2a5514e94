package middleware

import (
	"log/slog"
	"strings"

	"blogauth/config"
	"blogauth/internal/delivery/api/response"
	deliverycontext "blogauth/internal/delivery/context"
	"blogauth/internal/domain/entity"
	"blogauth/internal/domain/repository"
	"blogauth/internal/domain/service"
	"blogauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc      service.TokenService
	identityStore usecase.IdentityStore
	checkStamp    bool
	logger        *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService  service.TokenService
	IdentityStore usecase.IdentityStore
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	checkStamp := params.Config != nil && params.Config.JWT != nil && params.Config.JWT.ValidateSecurityStamp

	return &AuthMiddleware{
		tokenSvc:      params.TokenService,
		identityStore: params.IdentityStore,
		checkStamp:    checkStamp,
		logger:        params.Logger,
	}
}

// Authenticate validates the bearer token and stores its claims on the context.
// With stamp checking enabled, tokens issued before the last credential change are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		if m.checkStamp {
			current, ok, err := m.currentStamp(c, claims)
			if err != nil {
				return err
			}
			if !ok || current != claims.SecurityStamp {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
					Info("Rejected token issued before a credential change", slog.String("identityID", claims.UserID.String()))

				return response.Unauthorized(c, "TOKEN_REVOKED", "Invalid or expired token")
			}
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// currentStamp returns the identity's stored stamp. ok is false when the identity
// named by the token no longer exists.
func (m *AuthMiddleware) currentStamp(c echo.Context, claims *service.Claims) (string, bool, error) {
	identity, err := m.identityStore.FindByID(c.Request().Context(), claims.UserID)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "failed to load identity for stamp check")
	}
	return identity.SecurityStamp, true, nil
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := deliverycontext.GetClaims(c)
			if claims == nil {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !entity.RolesFromStrings(claims.Roles).Contains(requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
