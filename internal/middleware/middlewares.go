package middleware

import (
	"github.com/Showmick119/researchify-backend/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares is a container that groups all middleware components
// used by the HTTP server, so shared dependencies are wired in once.
type Middlewares struct {
	// Global holds middleware used across the whole API: CORS,
	// request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// Caller extracts the caller's asserted identity from the
	// user_id request header.
	Caller *CallerMiddleware

	// ContextEnhancer enriches each request with a request-scoped
	// logger carrying correlation fields.
	ContextEnhancer *ContextEnhancer

	// Tracing provides the New Relic middleware and attaches custom
	// transaction attributes.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components. The New Relic
// application instance is nil when the agent is disabled, and the
// tracing middleware degrades to a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Caller:          NewCallerMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
