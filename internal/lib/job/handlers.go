package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Showmick119/researchify-backend/internal/config"
	"github.com/Showmick119/researchify-backend/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// emailClient is shared by all job handlers. InitHandlers must run
// before the worker server starts.
var emailClient *email.Client

// InitHandlers initializes dependencies required by job handlers.
func (j *JobService) InitHandlers(config *config.Config, logger *zerolog.Logger) {
	emailClient = email.NewClient(config, logger)
}

// handleWelcomeEmailTask processes TaskWelcome: decode the payload and
// send the welcome email. A returned error makes asynq schedule a
// retry.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Processing welcome email task")

	if err := emailClient.SendWelcomeEmail(p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Successfully sent welcome email")

	return nil
}

// handleApplicationReceivedTask processes TaskApplicationReceived.
func (j *JobService) handleApplicationReceivedTask(ctx context.Context, t *asynq.Task) error {
	var p ApplicationReceivedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal application received payload: %w", err)
	}

	j.logger.Info().
		Str("type", "application_received").
		Str("to", p.To).
		Str("listing_id", p.ListingID).
		Msg("Processing application confirmation task")

	if err := emailClient.SendApplicationReceivedEmail(p.To, p.StudentName, p.ListingID); err != nil {
		j.logger.Error().
			Str("type", "application_received").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send application confirmation email")
		return err
	}

	j.logger.Info().
		Str("type", "application_received").
		Str("to", p.To).
		Msg("Successfully sent application confirmation email")

	return nil
}
