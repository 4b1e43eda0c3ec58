package handler

import (
	"github.com/Showmick119/researchify-backend/internal/repository"
	"github.com/Showmick119/researchify-backend/internal/server"
	"github.com/Showmick119/researchify-backend/internal/service"
	"github.com/Showmick119/researchify-backend/internal/validation"
	"github.com/labstack/echo/v4"
)

// ApplicationHandler serves the research application endpoints.
type ApplicationHandler struct {
	Handler
	applicationService *service.ApplicationService
}

// NewApplicationHandler constructs an ApplicationHandler.
func NewApplicationHandler(s *server.Server, applicationService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		Handler:            NewHandler(s),
		applicationService: applicationService,
	}
}

// SubmitApplicationRequest is the payload for applying to a listing.
// Neither student_id nor listing_id is checked for existence, and the
// same student may apply to the same listing more than once.
type SubmitApplicationRequest struct {
	StudentID          string `json:"student_id" validate:"required"`
	ListingID          string `json:"listing_id" validate:"required"`
	StudentName        string `json:"student_name" validate:"required"`
	StudentEmail       string `json:"student_email" validate:"required"`
	StatementOfPurpose string `json:"statement_of_purpose" validate:"required"`
}

// Validate implements validation.Validatable.
func (r *SubmitApplicationRequest) Validate() error {
	return validation.Struct(r)
}

// SubmitApplicationResponse carries the generated application id.
type SubmitApplicationResponse struct {
	Message       string `json:"message"`
	ApplicationID string `json:"application_id"`
}

// SubmitApplication stores a new application.
func (h *ApplicationHandler) SubmitApplication(c echo.Context, req *SubmitApplicationRequest) (*SubmitApplicationResponse, error) {
	id, err := h.applicationService.Submit(c.Request().Context(), repository.Application{
		StudentID:          req.StudentID,
		ListingID:          req.ListingID,
		StudentName:        req.StudentName,
		StudentEmail:       req.StudentEmail,
		StatementOfPurpose: req.StatementOfPurpose,
	})
	if err != nil {
		return nil, err
	}

	return &SubmitApplicationResponse{
		Message:       "Application submitted successfully",
		ApplicationID: id,
	}, nil
}

// ListByListingRequest identifies the listing whose applications to
// return.
type ListByListingRequest struct {
	ListingID string `param:"listing_id" validate:"required"`
}

// Validate implements validation.Validatable.
func (r *ListByListingRequest) Validate() error {
	return validation.Struct(r)
}

// ListApplicationsForListing returns every application submitted to
// the listing. A listing with no applications yields an empty list,
// not an error.
func (h *ApplicationHandler) ListApplicationsForListing(c echo.Context, req *ListByListingRequest) ([]repository.Application, error) {
	return h.applicationService.ListForListing(c.Request().Context(), req.ListingID)
}

// ListByStudentRequest identifies the student whose applications to
// return.
type ListByStudentRequest struct {
	StudentID string `param:"student_id" validate:"required"`
}

// Validate implements validation.Validatable.
func (r *ListByStudentRequest) Validate() error {
	return validation.Struct(r)
}

// ListApplicationsForStudent returns every application submitted by
// the student.
func (h *ApplicationHandler) ListApplicationsForStudent(c echo.Context, req *ListByStudentRequest) ([]repository.Application, error) {
	return h.applicationService.ListForStudent(c.Request().Context(), req.StudentID)
}

// DeleteApplicationRequest identifies the application to delete.
type DeleteApplicationRequest struct {
	ApplicationID string `param:"application_id" validate:"required"`
}

// Validate implements validation.Validatable.
func (r *DeleteApplicationRequest) Validate() error {
	return validation.Struct(r)
}

// DeleteApplication removes an application. There is no authorization
// check here, unlike listing deletion.
func (h *ApplicationHandler) DeleteApplication(c echo.Context, req *DeleteApplicationRequest) (*MessageResponse, error) {
	if err := h.applicationService.Delete(c.Request().Context(), req.ApplicationID); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Application deleted successfully"}, nil
}
