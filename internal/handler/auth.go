package handler

import (
	"github.com/Showmick119/researchify-backend/internal/server"
	"github.com/Showmick119/researchify-backend/internal/service"
	"github.com/Showmick119/researchify-backend/internal/validation"
	"github.com/labstack/echo/v4"
)

// AuthHandler serves the signup endpoint.
type AuthHandler struct {
	Handler
	authService *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(s *server.Server, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler:     NewHandler(s),
		authService: authService,
	}
}

// SignupRequest is the payload for user registration. Email format,
// password policy, and uniqueness are enforced by the identity
// provider, not here. Role is stored as sent; only the exact value
// "professor" unlocks listing deletion later.
type SignupRequest struct {
	Email             string   `json:"email" validate:"required"`
	Password          string   `json:"password" validate:"required"`
	Name              string   `json:"name" validate:"required"`
	Role              string   `json:"role" validate:"required"`
	ResearchInterests []string `json:"research_interests"`
}

// Validate implements validation.Validatable.
func (r *SignupRequest) Validate() error {
	return validation.Struct(r)
}

// SignupResponse carries the identity provider's account id back to
// the client.
type SignupResponse struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
}

// Signup registers the account with the identity provider and stores
// the profile document under the returned id.
func (h *AuthHandler) Signup(c echo.Context, req *SignupRequest) (*SignupResponse, error) {
	uid, err := h.authService.Signup(c.Request().Context(), service.SignupParams{
		Email:             req.Email,
		Password:          req.Password,
		Name:              req.Name,
		Role:              req.Role,
		ResearchInterests: req.ResearchInterests,
	})
	if err != nil {
		return nil, err
	}

	return &SignupResponse{
		Message: "User registered successfully",
		UID:     uid,
	}, nil
}
