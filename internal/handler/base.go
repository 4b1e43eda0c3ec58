package handler

import (
	"time"

	"github.com/Showmick119/researchify-backend/internal/middleware"
	"github.com/Showmick119/researchify-backend/internal/server"
	"github.com/Showmick119/researchify-backend/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to reach config, logger,
// db, and the rest through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returned by value: the struct
// only carries a pointer, copying it is cheap.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint function that receives a validated
// request payload and returns a response or an error. Req is usually a
// pointer type so echo's Bind can populate it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// handleRequest is the shared execution pipeline for all endpoints:
// binding + validation, structured logging with request context, New
// Relic attributes and error reporting, timing, and JSON response
// writing.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	status int,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	// Transaction is set by the nrecho middleware.
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	// Request-scoped logger from the context enhancer middleware,
	// already carrying request_id and trace correlation fields.
	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("method", method).
		Str("route", route).
		Logger()

	logger.Info().Msg("handling request")

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Error().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		// The global error handler formats the response.
		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)
	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return c.JSON(status, result)
}

// RequestPtr constrains Req to a pointer to a request struct that
// implements Validatable, letting Handle allocate the request itself.
type RequestPtr[T any] interface {
	*T
	validation.Validatable
}

// Handle wraps a typed handler with validation, error handling,
// logging, and tracing, and returns an echo.HandlerFunc that can be
// registered directly on a route:
//
//	g.POST("/signup", handler.Handle(h.Handler, h.Signup, http.StatusOK))
//
// A fresh request value is allocated per invocation: Bind does not
// zero omitted fields, so a shared instance would carry values from
// one request into the next.
func Handle[Req any, PReq RequestPtr[Req], Res any](
	h Handler,
	handler HandlerFunc[PReq, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, func(c echo.Context, req PReq) (interface{}, error) {
			return handler(c, req)
		}, status)
	}
}
