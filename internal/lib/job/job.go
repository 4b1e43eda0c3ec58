// Package job provides background job processing using asynq.
//
// Asynq is a Redis-backed job queue: the application enqueues tasks
// through asynq.Client and a worker server processes them. All tasks
// here are transactional emails; enqueue failures are logged and never
// fail the originating request.
package job

import (
	"github.com/Showmick119/researchify-backend/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the asynq client (enqueue) and server (worker
// execution).
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	// server runs workers that pull tasks from Redis and execute handlers.
	server *asynq.Server

	logger *zerolog.Logger
}

// NewJobService creates a JobService backed by the Redis instance from
// config. Queue weights give transactional account email priority over
// notification email.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers task handlers and starts the background worker
// server. asynq's Start is non-blocking; workers run until Stop.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	mux.HandleFunc(TaskApplicationReceived, j.handleApplicationReceivedTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop gracefully stops the job server and closes client resources.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
