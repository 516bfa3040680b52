package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"holocron/config"
	deliverycontext "holocron/internal/delivery/context"
	domainerrors "holocron/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	var seen string
	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return nil
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, seen, deliverycontext.GetRequestID(c))
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(slog.Default()).Process(func(echo.Context) error { return nil })

	require.NoError(t, handler(c))
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesOversizedID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", 500))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(slog.Default()).Process(func(echo.Context) error { return nil })

	require.NoError(t, handler(c))
	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/planets?limit=1", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})
	assert.Error(t, handler(c))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "/planets", record["uri"])
	assert.Equal(t, "limit=1", record["query"])
	assert.EqualValues(t, http.StatusNotFound, record["status"])
}

func TestLoggerMiddleware_DisabledOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(echo.Context) error { return nil })
	require.NoError(t, handler(c))
	assert.Zero(t, buf.Len())
}

func TestLoggerMiddleware_AppErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/favorite/planet/7", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(logger, cfg).Handle(func(echo.Context) error {
		return domainerrors.ErrUserNotFound
	})
	assert.Error(t, handler(c))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.EqualValues(t, http.StatusNotFound, record["status"])
}
