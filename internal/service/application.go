package service

import (
	"context"
	"errors"

	"github.com/Showmick119/researchify-backend/internal/docstore"
	"github.com/Showmick119/researchify-backend/internal/errs"
	"github.com/Showmick119/researchify-backend/internal/lib/job"
	"github.com/Showmick119/researchify-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ApplicationService handles research application operations.
type ApplicationService struct {
	log          *zerolog.Logger
	applications ApplicationStore
	job          *job.JobService
}

// NewApplicationService constructs an ApplicationService.
func NewApplicationService(logger *zerolog.Logger, applications ApplicationStore, jobService *job.JobService) *ApplicationService {
	return &ApplicationService{
		log:          logger,
		applications: applications,
		job:          jobService,
	}
}

// Submit stores a new application and returns its id. The referenced
// listing and student are not checked for existence; duplicates from
// the same student are allowed.
func (s *ApplicationService) Submit(ctx context.Context, a repository.Application) (string, error) {
	id, err := s.applications.Create(ctx, a)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to store application")
		return "", errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	}

	s.enqueueConfirmationEmail(a)

	return id, nil
}

// ListForListing returns every application submitted to the listing.
func (s *ApplicationService) ListForListing(ctx context.Context, listingID string) ([]repository.Application, error) {
	applications, err := s.applications.ListByListing(ctx, listingID)
	if err != nil {
		s.log.Error().Err(err).Str("listing_id", listingID).Msg("failed to list applications for listing")
		return nil, errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	}

	return applications, nil
}

// ListForStudent returns every application submitted by the student.
func (s *ApplicationService) ListForStudent(ctx context.Context, studentID string) ([]repository.Application, error) {
	applications, err := s.applications.ListByStudent(ctx, studentID)
	if err != nil {
		s.log.Error().Err(err).Str("student_id", studentID).Msg("failed to list applications for student")
		return nil, errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	}

	return applications, nil
}

// Delete removes an application by id.
func (s *ApplicationService) Delete(ctx context.Context, applicationID string) error {
	if err := s.applications.Delete(ctx, applicationID); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return errs.NewNotFoundError("Application not found", true, nil)
		}
		s.log.Error().Err(err).Str("application_id", applicationID).Msg("failed to delete application")
		return errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	}

	return nil
}

// enqueueConfirmationEmail queues the submission confirmation. Delivery
// is best effort: a queue failure is logged and the submission still
// succeeds.
func (s *ApplicationService) enqueueConfirmationEmail(a repository.Application) {
	if s.job == nil {
		return
	}

	task, err := job.NewApplicationReceivedTask(a.StudentEmail, a.StudentName, a.ListingID)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create application confirmation task")
		return
	}

	if _, err := s.job.Client.Enqueue(task); err != nil {
		s.log.Error().Err(err).Msg("failed to enqueue application confirmation task")
	}
}
