// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/Showmick119/researchify-backend/internal/handler"
	"github.com/Showmick119/researchify-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the global middleware chain and every route on
// the echo instance.
//
// Middleware ordering matters: request id and caller identity run
// first so the tracing and context-enhancer layers can pick up their
// values; the request logger runs last so it observes final statuses.
func RegisterRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(m.Caller.ExtractCaller)
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.Recover())
	e.Use(m.Global.RequestLogger())

	registerSystemRoutes(e, h)

	e.POST("/signup", handler.Handle(h.Auth.Handler, h.Auth.Signup, http.StatusOK))

	e.POST("/listings", handler.Handle(h.Listings.Handler, h.Listings.CreateListing, http.StatusOK))
	e.GET("/listings", handler.Handle(h.Listings.Handler, h.Listings.ListListings, http.StatusOK))
	e.GET("/listings/:listing_id", handler.Handle(h.Listings.Handler, h.Listings.GetListing, http.StatusOK))
	e.PATCH("/listings/:listing_id", handler.Handle(h.Listings.Handler, h.Listings.UpdateListing, http.StatusOK))
	e.DELETE("/listings/:listing_id", handler.Handle(h.Listings.Handler, h.Listings.DeleteListing, http.StatusOK))

	e.POST("/applications", handler.Handle(h.Applications.Handler, h.Applications.SubmitApplication, http.StatusOK))
	e.GET("/applications/:listing_id", handler.Handle(h.Applications.Handler, h.Applications.ListApplicationsForListing, http.StatusOK))
	e.GET("/applications/student/:student_id", handler.Handle(h.Applications.Handler, h.Applications.ListApplicationsForStudent, http.StatusOK))
	e.DELETE("/applications/:application_id", handler.Handle(h.Applications.Handler, h.Applications.DeleteApplication, http.StatusOK))
}
