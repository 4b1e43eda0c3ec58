// Package repository handles all interactions with the document store.
//
// It owns the conversion between the application's typed records and
// the store's untyped field maps: typed structs everywhere above this
// layer, schema-less documents below it.
package repository

import (
	"github.com/Showmick119/researchify-backend/internal/docstore"
	"github.com/Showmick119/researchify-backend/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users        *UsersRepository
	Listings     *ListingsRepository
	Applications *ApplicationsRepository
}

// NewRepositories constructs the repository container over a single
// document store bound to the server's database pool.
func NewRepositories(s *server.Server) *Repositories {
	store := docstore.New(s.DB, s.Logger)

	return &Repositories{
		Users:        NewUsersRepository(store),
		Listings:     NewListingsRepository(store),
		Applications: NewApplicationsRepository(store),
	}
}
