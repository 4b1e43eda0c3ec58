package repository

import (
	"context"

	"github.com/Showmick119/researchify-backend/internal/docstore"
)

// ListingsRepository reads and writes the research_listings collection.
type ListingsRepository struct {
	store *docstore.Store
}

// NewListingsRepository constructs a ListingsRepository.
func NewListingsRepository(store *docstore.Store) *ListingsRepository {
	return &ListingsRepository{store: store}
}

// Create stores a new listing and returns its generated id.
func (r *ListingsRepository) Create(ctx context.Context, l Listing) (string, error) {
	fields := map[string]any{
		"title":        l.Title,
		"description":  l.Description,
		"professor_id": l.ProfessorID,
		"eligibility":  emptyIfNil(l.Eligibility),
		"tags":         emptyIfNil(l.Tags),
	}

	return r.store.Add(ctx, docstore.CollectionListings, fields)
}

// GetAll returns every listing, each annotated with its id, in store
// order.
func (r *ListingsRepository) GetAll(ctx context.Context) ([]Listing, error) {
	docs, err := r.store.List(ctx, docstore.CollectionListings)
	if err != nil {
		return nil, err
	}

	return decodeListings(docs)
}

// Get returns the listing with the given id, or docstore.ErrNotFound.
func (r *ListingsRepository) Get(ctx context.Context, id string) (Listing, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionListings, id)
	if err != nil {
		return Listing{}, err
	}

	var l Listing
	if err := docstore.Decode(doc.Fields, &l); err != nil {
		return Listing{}, err
	}
	l.ID = doc.ID

	return l, nil
}

// Update merge-updates the listing with exactly the supplied fields.
// Fields not present in the map are untouched. Returns
// docstore.ErrNotFound when the listing does not exist.
func (r *ListingsRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.store.Update(ctx, docstore.CollectionListings, id, fields)
}

// Delete removes the listing, or returns docstore.ErrNotFound.
func (r *ListingsRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, docstore.CollectionListings, id)
}

func decodeListings(docs []docstore.Document) ([]Listing, error) {
	listings := make([]Listing, 0, len(docs))
	for _, doc := range docs {
		var l Listing
		if err := docstore.Decode(doc.Fields, &l); err != nil {
			return nil, err
		}
		l.ID = doc.ID
		listings = append(listings, l)
	}
	return listings, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
