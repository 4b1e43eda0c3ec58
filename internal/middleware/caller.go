package middleware

import (
	"github.com/Showmick119/researchify-backend/internal/server"
	"github.com/labstack/echo/v4"
)

// CallerHeader is the request header clients use to assert their
// identity. The value is a user document id; it is not a credential
// and is not verified against a session.
const CallerHeader = "user_id"

// CallerMiddleware extracts the asserted caller identity from the
// request so downstream authorization checks can resolve the caller's
// role.
type CallerMiddleware struct {
	server *server.Server
}

// NewCallerMiddleware constructs a CallerMiddleware.
func NewCallerMiddleware(s *server.Server) *CallerMiddleware {
	return &CallerMiddleware{
		server: s,
	}
}

// ExtractCaller stores the user_id header value, when present, in the
// echo context under UserIDKey. It never rejects the request itself:
// endpoints that require a caller decide what a missing identity
// means.
func (cm *CallerMiddleware) ExtractCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if callerID := c.Request().Header.Get(CallerHeader); callerID != "" {
			c.Set(UserIDKey, callerID)
		}

		return next(c)
	}
}
