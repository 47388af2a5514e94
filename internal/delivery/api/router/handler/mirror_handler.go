package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "blogauth/internal/delivery/context"
	"blogauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type reconcileResponse struct {
	Scanned  int `json:"scanned"`
	Repaired int `json:"repaired"`
	Failed   int `json:"failed"`
}

// MirrorHandler exposes administrative operations on the legacy mirror.
type MirrorHandler struct {
	reconciler usecase.MirrorReconciler
	logger     *slog.Logger
}

// NewMirrorHandler is the constructor for MirrorHandler, injected by Fx.
func NewMirrorHandler(reconciler usecase.MirrorReconciler, logger *slog.Logger) *MirrorHandler {
	return &MirrorHandler{
		reconciler: reconciler,
		logger:     logger,
	}
}

// Reconcile runs one reconciliation pass on demand and reports its counts.
func (h *MirrorHandler) Reconcile(c echo.Context) error {
	report, err := h.reconciler.Reconcile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if claims := deliverycontext.GetClaims(c); claims != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Info("Mirror reconcile requested", slog.String("identityID", claims.UserID.String()), slog.Int("repaired", report.Repaired))
	}

	return c.JSON(http.StatusOK, reconcileResponse{
		Scanned:  report.Scanned,
		Repaired: report.Repaired,
		Failed:   report.Failed,
	})
}
