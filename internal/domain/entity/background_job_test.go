package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatus_CanTransitionTo(t *testing.T) {
	statuses := []JobStatus{JobStatusPending, JobStatusRunning, JobStatusSuccess, JobStatusError}
	allowed := map[[2]JobStatus]bool{
		{JobStatusPending, JobStatusRunning}: true,
		{JobStatusRunning, JobStatusSuccess}: true,
		{JobStatusRunning, JobStatusError}:   true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				assert.Equal(t, allowed[[2]JobStatus{from, to}], from.CanTransitionTo(to))
			})
		}
	}
}

func TestJobStatus_IsTerminal(t *testing.T) {
	assert.False(t, JobStatusPending.IsTerminal())
	assert.False(t, JobStatusRunning.IsTerminal())
	assert.True(t, JobStatusSuccess.IsTerminal())
	assert.True(t, JobStatusError.IsTerminal())
	assert.False(t, JobStatus("paused").IsValid())
}

func TestEventType_IsValid(t *testing.T) {
	assert.True(t, EventTypeInfo.IsValid())
	assert.True(t, EventTypeError.IsValid())
	assert.False(t, EventType("warning").IsValid())
}

func TestJobRegistry_Validate(t *testing.T) {
	registry := NewJobRegistry()

	require.True(t, registry.Supports(JobTypeESSeeder))
	assert.False(t, registry.Supports("image_resizer"))
	assert.Equal(t, []JobType{JobTypeESSeeder}, registry.Types())

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, registry.Validate(JobTypeESSeeder, map[string]any{"match_query": "indie"}))
	})

	t.Run("missing required field", func(t *testing.T) {
		err := registry.Validate(JobTypeESSeeder, map[string]any{})
		assert.ErrorIs(t, err, ErrMetadataInvalid)
	})

	t.Run("unknown key", func(t *testing.T) {
		err := registry.Validate(JobTypeESSeeder, map[string]any{"match_query": "indie", "limit": 10})
		assert.ErrorIs(t, err, ErrMetadataDecode)
	})

	t.Run("wrong type", func(t *testing.T) {
		err := registry.Validate(JobTypeESSeeder, map[string]any{"match_query": 42})
		assert.ErrorIs(t, err, ErrMetadataDecode)
	})

	t.Run("unregistered type", func(t *testing.T) {
		assert.Error(t, registry.Validate("image_resizer", map[string]any{}))
	})
}

func TestMergeMetadata(t *testing.T) {
	current := map[string]any{"k": "v0", "m": "w"}
	patch := map[string]any{"k": "v"}

	merged := MergeMetadata(current, patch)

	assert.Equal(t, map[string]any{"k": "v", "m": "w"}, merged)
	assert.Equal(t, "v0", current["k"], "current must not be mutated")
}
