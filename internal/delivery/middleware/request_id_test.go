package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "blogauth/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, header string) (string, string) {
	t.Helper()

	e := echo.New()
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromContext string
	err := m.Process(func(c echo.Context) error {
		fromContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))
		assert.Equal(t, fromContext, deliverycontext.GetRequestID(c))

		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)

	return rec.Header().Get(deliverycontext.HeaderXRequestID), fromContext
}

func TestRequestID_ReusesCallerHeader(t *testing.T) {
	echoed, fromContext := serveWithRequestID(t, "trace-abc")

	assert.Equal(t, "trace-abc", echoed)
	assert.Equal(t, "trace-abc", fromContext)
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	echoed, fromContext := serveWithRequestID(t, "")

	_, err := uuid.Parse(echoed)
	require.NoError(t, err)
	assert.Equal(t, echoed, fromContext)
}

func TestRequestID_ReplacesOversizedHeader(t *testing.T) {
	echoed, _ := serveWithRequestID(t, strings.Repeat("x", maxRequestIDLength+1))

	_, err := uuid.Parse(echoed)
	assert.NoError(t, err)
}
