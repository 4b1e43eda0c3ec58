package middleware

import (
	"context"

	"github.com/Showmick119/researchify-backend/internal/logger"
	"github.com/Showmick119/researchify-backend/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const (
	// UserIDKey is the echo context key the caller middleware stores
	// the asserted identity under.
	UserIDKey = "user_id"

	// LoggerKey is the key the request-scoped logger is stored under.
	LoggerKey = "logger"
)

// ContextEnhancer builds a request-scoped logger with correlation
// fields (request_id, method, path, ip, trace ids, user_id) and stores
// it in both the echo context and the request's Go context.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer constructs a ContextEnhancer.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns the echo middleware. It must run after the
// RequestID and caller middlewares so their fields are available.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			// trace.id / span.id when a New Relic transaction exists.
			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			if userID := GetUserID(c); userID != "" {
				contextLogger = contextLogger.With().Str("user_id", userID).Logger()
			}

			c.Set(LoggerKey, &contextLogger)

			// Also store in the Go context so non-echo code can fetch
			// the request logger.
			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetUserID reads the asserted caller identity from the echo context,
// or "" when the header was absent.
func GetUserID(c echo.Context) string {
	if userID, ok := c.Get(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetLogger retrieves the request-scoped logger from the echo context.
// If EnhanceContext did not run, it returns a no-op logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	nop := zerolog.Nop()
	return &nop
}
