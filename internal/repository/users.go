package repository

import (
	"context"

	"github.com/Showmick119/researchify-backend/internal/docstore"
)

// UsersRepository reads and writes the users collection.
type UsersRepository struct {
	store *docstore.Store
}

// NewUsersRepository constructs a UsersRepository.
func NewUsersRepository(store *docstore.Store) *UsersRepository {
	return &UsersRepository{store: store}
}

// Create writes the profile document under the identity provider's
// account id. The password never reaches this layer.
func (r *UsersRepository) Create(ctx context.Context, id string, u User) error {
	interests := u.ResearchInterests
	if interests == nil {
		interests = []string{}
	}

	fields := map[string]any{
		"name":               u.Name,
		"email":              u.Email,
		"role":               u.Role,
		"research_interests": interests,
	}

	return r.store.Set(ctx, docstore.CollectionUsers, id, fields)
}

// Get returns the user with the given id, or docstore.ErrNotFound.
func (r *UsersRepository) Get(ctx context.Context, id string) (User, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionUsers, id)
	if err != nil {
		return User{}, err
	}

	var u User
	if err := docstore.Decode(doc.Fields, &u); err != nil {
		return User{}, err
	}
	u.ID = doc.ID

	return u, nil
}
