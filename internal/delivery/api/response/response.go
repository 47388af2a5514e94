// Package response renders the JSON bodies of the account API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AuthResponse is the body of every login response. Token is only set on success.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// MessageResponse is the body of the account management endpoints and of every error.
type MessageResponse struct {
	Message  string   `json:"message"`
	Code     string   `json:"code,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Auth writes a login result.
func Auth(c echo.Context, statusCode int, success bool, message, token string) error {
	if !success {
		token = ""
	}

	return c.JSON(statusCode, AuthResponse{
		Success: success,
		Message: message,
		Token:   token,
	})
}

// Message writes a plain confirmation.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// MessageWithWarnings writes a confirmation that carries soft warnings.
func MessageWithWarnings(c echo.Context, statusCode int, message string, warnings []string) error {
	return c.JSON(statusCode, MessageResponse{Message: message, Warnings: warnings})
}

// Error writes an error body. Reasons are dropped for 5xx, 401 and 403.
func Error(c echo.Context, statusCode int, errorCode, message string, reasons []string) error {
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		reasons = nil
	}

	return c.JSON(statusCode, MessageResponse{
		Message: message,
		Code:    errorCode,
		Errors:  reasons,
	})
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", nil)
}
