package handler

import (
	"github.com/Showmick119/researchify-backend/internal/middleware"
	"github.com/Showmick119/researchify-backend/internal/repository"
	"github.com/Showmick119/researchify-backend/internal/server"
	"github.com/Showmick119/researchify-backend/internal/service"
	"github.com/Showmick119/researchify-backend/internal/validation"
	"github.com/labstack/echo/v4"
)

// ListingHandler serves the research listing endpoints.
type ListingHandler struct {
	Handler
	listingService *service.ListingService
}

// NewListingHandler constructs a ListingHandler.
func NewListingHandler(s *server.Server, listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{
		Handler:        NewHandler(s),
		listingService: listingService,
	}
}

// CreateListingRequest is the payload for posting a new listing.
// professor_id is stored as sent; it is not checked against the users
// collection.
type CreateListingRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	ProfessorID string   `json:"professor_id" validate:"required"`
	Eligibility []string `json:"eligibility"`
	Tags        []string `json:"tags"`
}

// Validate implements validation.Validatable.
func (r *CreateListingRequest) Validate() error {
	return validation.Struct(r)
}

// CreateListingResponse carries the generated listing id.
type CreateListingResponse struct {
	Message   string `json:"message"`
	ListingID string `json:"listing_id"`
}

// CreateListing stores a new listing.
func (h *ListingHandler) CreateListing(c echo.Context, req *CreateListingRequest) (*CreateListingResponse, error) {
	id, err := h.listingService.Create(c.Request().Context(), repository.Listing{
		Title:       req.Title,
		Description: req.Description,
		ProfessorID: req.ProfessorID,
		Eligibility: req.Eligibility,
		Tags:        req.Tags,
	})
	if err != nil {
		return nil, err
	}

	return &CreateListingResponse{
		Message:   "Research listing created",
		ListingID: id,
	}, nil
}

// EmptyRequest is used by endpoints that take no payload.
type EmptyRequest struct{}

// Validate implements validation.Validatable.
func (r *EmptyRequest) Validate() error {
	return nil
}

// ListListings returns every listing in store order.
func (h *ListingHandler) ListListings(c echo.Context, _ *EmptyRequest) ([]repository.Listing, error) {
	return h.listingService.List(c.Request().Context())
}

// GetListingRequest identifies a listing by path parameter.
type GetListingRequest struct {
	ListingID string `param:"listing_id" validate:"required"`
}

// Validate implements validation.Validatable.
func (r *GetListingRequest) Validate() error {
	return validation.Struct(r)
}

// GetListing returns a single listing.
func (h *ListingHandler) GetListing(c echo.Context, req *GetListingRequest) (repository.Listing, error) {
	return h.listingService.Get(c.Request().Context(), req.ListingID)
}

// UpdateListingRequest is the partial-update payload. Pointer fields
// distinguish "omitted or null" from "set": only non-null fields are
// written.
type UpdateListingRequest struct {
	ListingID   string    `param:"listing_id" validate:"required"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	ProfessorID *string   `json:"professor_id"`
	Eligibility *[]string `json:"eligibility"`
	Tags        *[]string `json:"tags"`
}

// Validate implements validation.Validatable.
func (r *UpdateListingRequest) Validate() error {
	return validation.Struct(r)
}

// MessageResponse is the plain acknowledgment body shared by the
// mutation endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// UpdateListing merge-updates a listing with the fields present in the
// request body.
func (h *ListingHandler) UpdateListing(c echo.Context, req *UpdateListingRequest) (*MessageResponse, error) {
	err := h.listingService.Update(c.Request().Context(), req.ListingID, service.ListingUpdate{
		Title:       req.Title,
		Description: req.Description,
		ProfessorID: req.ProfessorID,
		Eligibility: req.Eligibility,
		Tags:        req.Tags,
	})
	if err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Listing updated successfully"}, nil
}

// DeleteListingRequest identifies the listing to delete. The caller's
// identity comes from the user_id header, not the body.
type DeleteListingRequest struct {
	ListingID string `param:"listing_id" validate:"required"`
}

// Validate implements validation.Validatable.
func (r *DeleteListingRequest) Validate() error {
	return validation.Struct(r)
}

// DeleteListing removes a listing after resolving the caller's role.
func (h *ListingHandler) DeleteListing(c echo.Context, req *DeleteListingRequest) (*MessageResponse, error) {
	callerID := middleware.GetUserID(c)

	if err := h.listingService.Delete(c.Request().Context(), req.ListingID, callerID); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Listing deleted successfully"}, nil
}
