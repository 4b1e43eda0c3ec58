package service

import (
	"context"
	"errors"

	"github.com/Showmick119/researchify-backend/internal/docstore"
	"github.com/Showmick119/researchify-backend/internal/errs"
	"github.com/Showmick119/researchify-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ListingService handles research listing operations.
type ListingService struct {
	log      *zerolog.Logger
	listings ListingStore
	users    UserStore
}

// NewListingService constructs a ListingService. The user store is
// needed to resolve the caller's role on delete.
func NewListingService(logger *zerolog.Logger, listings ListingStore, users UserStore) *ListingService {
	return &ListingService{
		log:      logger,
		listings: listings,
		users:    users,
	}
}

// ListingUpdate carries the optional fields of a partial update.
// A nil pointer means the field was omitted or sent as null and must
// not be written.
type ListingUpdate struct {
	Title       *string
	Description *string
	ProfessorID *string
	Eligibility *[]string
	Tags        *[]string
}

// Fields flattens the update into the map of fields that were actually
// provided. The result is empty when nothing was provided.
func (u ListingUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.ProfessorID != nil {
		fields["professor_id"] = *u.ProfessorID
	}
	if u.Eligibility != nil {
		fields["eligibility"] = *u.Eligibility
	}
	if u.Tags != nil {
		fields["tags"] = *u.Tags
	}
	return fields
}

// Create stores a new listing and returns its id. No check is made
// that the professor id references an existing user.
func (s *ListingService) Create(ctx context.Context, l repository.Listing) (string, error) {
	id, err := s.listings.Create(ctx, l)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create listing")
		return "", errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	}

	return id, nil
}

// List returns every listing.
func (s *ListingService) List(ctx context.Context) ([]repository.Listing, error) {
	listings, err := s.listings.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list listings")
		return nil, errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	}

	return listings, nil
}

// Get returns a single listing by id.
func (s *ListingService) Get(ctx context.Context, listingID string) (repository.Listing, error) {
	l, err := s.listings.Get(ctx, listingID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return repository.Listing{}, errs.NewNotFoundError("Listing not found", true, nil)
		}
		s.log.Error().Err(err).Str("listing_id", listingID).Msg("failed to get listing")
		return repository.Listing{}, errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	}

	return l, nil
}

// Update merge-updates a listing with the provided fields. Omitted and
// null fields are left untouched; an update carrying no usable fields
// is rejected.
func (s *ListingService) Update(ctx context.Context, listingID string, update ListingUpdate) error {
	if _, err := s.listings.Get(ctx, listingID); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return errs.NewNotFoundError("Listing not found", true, nil)
		}
		s.log.Error().Err(err).Str("listing_id", listingID).Msg("failed to get listing for update")
		return errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	}

	fields := update.Fields()
	if len(fields) == 0 {
		return errs.NewBadRequestError("No valid fields provided for update", true, nil, nil, nil)
	}

	if err := s.listings.Update(ctx, listingID, fields); err != nil {
		s.log.Error().Err(err).Str("listing_id", listingID).Msg("failed to update listing")
		return errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	}

	return nil
}

// Delete removes a listing on behalf of callerID. The caller must be
// identified, must exist, and must hold the professor role; the checks
// run in that order so each failure reports its own status.
func (s *ListingService) Delete(ctx context.Context, listingID, callerID string) error {
	if callerID == "" {
		return errs.NewUnauthorizedError("User ID missing in request headers", true)
	}

	caller, err := s.users.Get(ctx, callerID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return errs.NewNotFoundError("User not found", true, nil)
		}
		s.log.Error().Err(err).Str("user_id", callerID).Msg("failed to get caller for listing delete")
		return errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	}

	if caller.Role != repository.RoleProfessor {
		return errs.NewForbiddenError("Only professors can delete listings", true)
	}

	if err := s.listings.Delete(ctx, listingID); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return errs.NewNotFoundError("Listing not found", true, nil)
		}
		s.log.Error().Err(err).Str("listing_id", listingID).Msg("failed to delete listing")
		return errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	}

	return nil
}
