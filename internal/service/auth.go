package service

import (
	"context"

	"github.com/Showmick119/researchify-backend/internal/errs"
	"github.com/Showmick119/researchify-backend/internal/identity"
	"github.com/Showmick119/researchify-backend/internal/lib/job"
	"github.com/Showmick119/researchify-backend/internal/repository"
	"github.com/rs/zerolog"
)

// AuthService handles user registration.
type AuthService struct {
	log      *zerolog.Logger
	provider identity.Provider
	users    UserStore
	job      *job.JobService
}

// NewAuthService constructs an AuthService.
func NewAuthService(logger *zerolog.Logger, provider identity.Provider, users UserStore, jobService *job.JobService) *AuthService {
	return &AuthService{
		log:      logger,
		provider: provider,
		users:    users,
		job:      jobService,
	}
}

// SignupParams carries the data needed to register a user.
type SignupParams struct {
	Email             string
	Password          string
	Name              string
	Role              string
	ResearchInterests []string
}

// Signup registers the account with the identity provider, then writes
// the profile document keyed by the provider-assigned id. The password
// goes to the provider only; it is never stored here.
//
// If the profile write fails after the account was created, the
// account is left in place: retrying the signup surfaces the
// provider's duplicate-email error rather than a partial state.
func (s *AuthService) Signup(ctx context.Context, params SignupParams) (string, error) {
	uid, err := s.provider.CreateAccount(ctx, params.Email, params.Password)
	if err != nil {
		return "", errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	}

	err = s.users.Create(ctx, uid, repository.User{
		Name:              params.Name,
		Email:             params.Email,
		Role:              params.Role,
		ResearchInterests: params.ResearchInterests,
	})
	if err != nil {
		s.log.Error().Err(err).Str("uid", uid).Msg("failed to store user profile")
		return "", errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	}

	s.enqueueWelcomeEmail(params.Email, params.Name)

	return uid, nil
}

// enqueueWelcomeEmail queues the welcome email. Delivery is best
// effort: a queue failure is logged and the signup still succeeds.
func (s *AuthService) enqueueWelcomeEmail(email, name string) {
	if s.job == nil {
		return
	}

	task, err := job.NewWelcomeEmailTask(email, name)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create welcome email task")
		return
	}

	if _, err := s.job.Client.Enqueue(task); err != nil {
		s.log.Error().Err(err).Msg("failed to enqueue welcome email task")
	}
}
