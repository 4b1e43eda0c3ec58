package job

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask("ada@example.edu", "Ada")
	require.NoError(t, err)
	assert.Equal(t, TaskWelcome, task.Type())

	var payload WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "ada@example.edu", payload.To)
	assert.Equal(t, "Ada", payload.Name)
}

func TestNewApplicationReceivedTask(t *testing.T) {
	task, err := NewApplicationReceivedTask("ada@example.edu", "Ada", "listing-1")
	require.NoError(t, err)
	assert.Equal(t, TaskApplicationReceived, task.Type())

	var payload ApplicationReceivedPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "ada@example.edu", payload.To)
	assert.Equal(t, "Ada", payload.StudentName)
	assert.Equal(t, "listing-1", payload.ListingID)
}
