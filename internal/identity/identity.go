// Package identity wraps the external identity provider (Clerk).
//
// The provider owns credentials: email format, password policy, and
// uniqueness are enforced there, not in this service. The only thing
// this layer consumes is the stable account identifier returned on
// creation, which keys the user's profile document.
package identity

import (
	"context"

	"github.com/Showmick119/researchify-backend/internal/config"
	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/user"
	"github.com/rs/zerolog"
)

// Provider creates accounts with the identity provider. It is an
// interface so services can be tested against a fake.
type Provider interface {
	// CreateAccount registers an email/password account and returns
	// the provider-assigned account identifier.
	CreateAccount(ctx context.Context, email, password string) (string, error)
}

// ClerkProvider implements Provider using the Clerk backend API.
type ClerkProvider struct {
	log *zerolog.Logger
}

// NewClerkProvider configures the Clerk SDK with the secret key and
// returns the provider.
func NewClerkProvider(cfg *config.Config, logger *zerolog.Logger) *ClerkProvider {
	clerk.SetKey(cfg.Auth.SecretKey)
	return &ClerkProvider{log: logger}
}

// CreateAccount registers the account with Clerk. Provider-side
// failures (duplicate email, password policy) come back as errors and
// are surfaced to the caller unclassified.
func (p *ClerkProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	account, err := user.Create(ctx, &user.CreateParams{
		EmailAddresses: &[]string{email},
		Password:       clerk.String(password),
	})
	if err != nil {
		p.log.Error().Err(err).Str("email", email).Msg("identity provider account creation failed")
		return "", err
	}

	p.log.Info().Str("uid", account.ID).Msg("identity provider account created")

	return account.ID, nil
}
