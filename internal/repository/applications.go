package repository

import (
	"context"

	"github.com/Showmick119/researchify-backend/internal/docstore"
)

// ApplicationsRepository reads and writes the applications collection.
type ApplicationsRepository struct {
	store *docstore.Store
}

// NewApplicationsRepository constructs an ApplicationsRepository.
func NewApplicationsRepository(store *docstore.Store) *ApplicationsRepository {
	return &ApplicationsRepository{store: store}
}

// Create stores a new application and returns its generated id. No
// existence or duplicate checks are performed on the references.
func (r *ApplicationsRepository) Create(ctx context.Context, a Application) (string, error) {
	fields := map[string]any{
		"student_id":           a.StudentID,
		"listing_id":           a.ListingID,
		"student_name":         a.StudentName,
		"student_email":        a.StudentEmail,
		"statement_of_purpose": a.StatementOfPurpose,
	}

	return r.store.Add(ctx, docstore.CollectionApplications, fields)
}

// ListByListing returns every application whose listing_id matches
// exactly, in store order.
func (r *ApplicationsRepository) ListByListing(ctx context.Context, listingID string) ([]Application, error) {
	docs, err := r.store.Query(ctx, docstore.CollectionApplications, "listing_id", listingID)
	if err != nil {
		return nil, err
	}

	return decodeApplications(docs)
}

// ListByStudent returns every application whose student_id matches
// exactly, in store order.
func (r *ApplicationsRepository) ListByStudent(ctx context.Context, studentID string) ([]Application, error) {
	docs, err := r.store.Query(ctx, docstore.CollectionApplications, "student_id", studentID)
	if err != nil {
		return nil, err
	}

	return decodeApplications(docs)
}

// Delete removes the application, or returns docstore.ErrNotFound.
func (r *ApplicationsRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, docstore.CollectionApplications, id)
}

func decodeApplications(docs []docstore.Document) ([]Application, error) {
	applications := make([]Application, 0, len(docs))
	for _, doc := range docs {
		var a Application
		if err := docstore.Decode(doc.Fields, &a); err != nil {
			return nil, err
		}
		a.ID = doc.ID
		applications = append(applications, a)
	}
	return applications, nil
}
