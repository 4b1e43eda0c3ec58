package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWelcome is sent after a successful signup.
	TaskWelcome = "email:welcome"

	// TaskApplicationReceived confirms a submitted research application.
	TaskApplicationReceived = "email:application_received"
)

// WelcomeEmailPayload is the serialized payload of a TaskWelcome task.
type WelcomeEmailPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// ApplicationReceivedPayload is the serialized payload of a
// TaskApplicationReceived task.
type ApplicationReceivedPayload struct {
	To          string `json:"to"`
	StudentName string `json:"student_name"`
	ListingID   string `json:"listing_id"`
}

// NewWelcomeEmailTask constructs the welcome email task: three
// retries, default queue, 30s handler timeout.
func NewWelcomeEmailTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:   to,
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewApplicationReceivedTask constructs the application confirmation
// task. Confirmations are lower priority than account email.
func NewApplicationReceivedTask(to, studentName, listingID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ApplicationReceivedPayload{
		To:          to,
		StudentName: studentName,
		ListingID:   listingID,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskApplicationReceived,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
