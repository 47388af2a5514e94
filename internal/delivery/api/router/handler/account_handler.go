// Package handler contains the HTTP handlers of the account API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"blogauth/internal/delivery/api/response"
	deliverycontext "blogauth/internal/delivery/context"
	domainerrors "blogauth/internal/domain/errors"
	"blogauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,max=256"`
	Email    string `json:"email" validate:"required,email,max=256"`
	Password string `json:"password" validate:"required"`
	Mobile   string `json:"mobile" validate:"omitempty,max=32"`
}

type changePasswordRequest struct {
	Username        string `json:"username" validate:"required"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

type resetPasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// meResponse describes the caller as seen by the access token.
type meResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AccountHandler holds dependencies for account handlers.
type AccountHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// bindAndValidate decodes the JSON body into req and runs the struct validator.
// The returned error is rendered by the HTTP error handler.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	return c.Validate(req)
}

// Login handles the credential check and returns an access token.
// Failures always carry the same body regardless of the cause.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			return response.Auth(c, http.StatusUnauthorized, false, domainerrors.ErrUnauthorized.Message(), "")
		}

		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusOK, output.Success, output.Message, output.Token)
}

// Register handles account creation. No token is issued.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Mobile:   req.Mobile,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, output.Message)
}

// ChangePassword handles a password change that requires the current password.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		Username:        req.Username,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.credentialChanged(c, output)
}

// ResetPassword handles an administrative reset. Unknown users answer 400 for
// compatibility with existing clients.
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Username:    req.Username,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			err = domainerrors.ErrUserNotFound.WithStatus(http.StatusBadRequest)
		}

		return errors.WithStack(err)
	}

	return h.credentialChanged(c, output)
}

func (h *AccountHandler) credentialChanged(c echo.Context, output *usecase.CredentialChangeOutput) error {
	if output.PartialSuccess {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Credential change reported as partial success", slog.Int("warnings", len(output.Warnings)))

		return response.MessageWithWarnings(c, http.StatusOK, output.Message, output.Warnings)
	}

	return response.Message(c, http.StatusOK, output.Message)
}

// Me returns the authenticated caller. Requires the Authenticate middleware.
func (h *AccountHandler) Me(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return c.JSON(http.StatusOK, meResponse{
		ID:        claims.UserID.String(),
		Username:  claims.Subject,
		Roles:     claims.Roles,
		ExpiresAt: expiresAt,
	})
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
