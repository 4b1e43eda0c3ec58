package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	type listing struct {
		Title       string   `json:"title"`
		ProfessorID string   `json:"professor_id"`
		Tags        []string `json:"tags"`
	}

	fields := map[string]any{
		"title":        "AI Research",
		"professor_id": "p1",
		"tags":         []any{"ml", "nlp"},
		"unknown":      "ignored",
	}

	var l listing
	require.NoError(t, Decode(fields, &l))
	assert.Equal(t, "AI Research", l.Title)
	assert.Equal(t, "p1", l.ProfessorID)
	assert.Equal(t, []string{"ml", "nlp"}, l.Tags)
}

func TestDecodeEmptyFields(t *testing.T) {
	type doc struct {
		Name string `json:"name"`
	}

	var d doc
	require.NoError(t, Decode(map[string]any{}, &d))
	assert.Empty(t, d.Name)
}

func TestCollectionsAllowlist(t *testing.T) {
	for _, collection := range []string{CollectionUsers, CollectionListings, CollectionApplications} {
		assert.True(t, collections[collection], collection)
	}
	assert.False(t, collections["secrets"])
}
