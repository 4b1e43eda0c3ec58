package handler

import (
	"github.com/Showmick119/researchify-backend/internal/server"
	"github.com/Showmick119/researchify-backend/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
	Auth         *AuthHandler
	Listings     *ListingHandler
	Applications *ApplicationHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
		Auth:         NewAuthHandler(s, services.Auth),
		Listings:     NewListingHandler(s, services.Listings),
		Applications: NewApplicationHandler(s, services.Applications),
	}
}
