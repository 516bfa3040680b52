package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"holocron/config"
	deliverycontext "holocron/internal/delivery/context"
	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log record per request when env.debug is set.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.debug {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	// Errors are rendered after the chain returns, so res.Status is not final yet.
	status := res.Status
	var httpErr *echo.HTTPError
	var appErr domainerrors.AppError
	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Code
	case errors.As(err, &appErr):
		status = appErr.HTTPCode()
	case err != nil:
		status = http.StatusInternalServerError
	}

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.Int64("bytes_out", res.Size),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= 400 || err != nil {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
