// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from the handlers, applies the few authorization and
// partial-update rules this API has, and calls repository methods to
// interact with the document store. Store dependencies are consumed as
// interfaces so every rule is testable against fakes.
package service

import (
	"context"

	"github.com/Showmick119/researchify-backend/internal/identity"
	"github.com/Showmick119/researchify-backend/internal/lib/job"
	"github.com/Showmick119/researchify-backend/internal/repository"
	"github.com/Showmick119/researchify-backend/internal/server"
)

// Services is a container that groups all business services.
type Services struct {
	Auth         *AuthService
	Listings     *ListingService
	Applications *ApplicationService
	Job          *job.JobService
}

// NewServices constructs the service container. The identity provider
// is created here (Clerk, configured from the server's auth secret)
// and injected into the auth service.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	provider := identity.NewClerkProvider(s.Config, s.Logger)

	return &Services{
		Auth:         NewAuthService(s.Logger, provider, repos.Users, s.Job),
		Listings:     NewListingService(s.Logger, repos.Listings, repos.Users),
		Applications: NewApplicationService(s.Logger, repos.Applications, s.Job),
		Job:          s.Job,
	}, nil
}

// UserStore is the users-collection surface the services need.
type UserStore interface {
	Create(ctx context.Context, id string, u repository.User) error
	Get(ctx context.Context, id string) (repository.User, error)
}

// ListingStore is the research_listings-collection surface.
type ListingStore interface {
	Create(ctx context.Context, l repository.Listing) (string, error)
	GetAll(ctx context.Context) ([]repository.Listing, error)
	Get(ctx context.Context, id string) (repository.Listing, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// ApplicationStore is the applications-collection surface.
type ApplicationStore interface {
	Create(ctx context.Context, a repository.Application) (string, error)
	ListByListing(ctx context.Context, listingID string) ([]repository.Application, error)
	ListByStudent(ctx context.Context, studentID string) ([]repository.Application, error)
	Delete(ctx context.Context, id string) error
}
