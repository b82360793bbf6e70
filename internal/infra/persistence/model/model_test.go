package model

import (
	"testing"
	"time"

	"indieneer/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBackgroundJobModel_RoundTripsThroughBSON(t *testing.T) {
	msg := "done"
	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	job := &entity.BackgroundJob{
		ID:        primitive.NewObjectID(),
		Type:      "es_seeder",
		Metadata:  map[string]any{"match_query": "indie"},
		Status:    entity.JobStatusSuccess,
		CreatedBy: "svc@clients",
		Events:    []entity.JobEvent{{Type: entity.EventTypeInfo, Message: "started", CreatedAt: started}},
		Message:   &msg,
		StartedAt: &started,
		CreatedAt: started,
		UpdatedAt: started,
	}

	raw, err := bson.Marshal(FromBackgroundJobDomain(job))
	assert.NoError(t, err)

	var decoded BackgroundJobModel
	assert.NoError(t, bson.Unmarshal(raw, &decoded))

	got := ToBackgroundJobDomain(&decoded)
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, job.Status, got.Status)
	assert.Equal(t, "indie", got.Metadata["match_query"])
	assert.Equal(t, job.Events, got.Events)
	assert.Equal(t, msg, *got.Message)
	assert.True(t, started.Equal(*got.StartedAt))
}

func TestBackgroundJobModel_OptionalFieldsOmitted(t *testing.T) {
	raw, err := bson.Marshal(FromBackgroundJobDomain(&entity.BackgroundJob{ID: primitive.NewObjectID()}))
	assert.NoError(t, err)

	var doc bson.M
	assert.NoError(t, bson.Unmarshal(raw, &doc))
	assert.NotContains(t, doc, "message")
	assert.NotContains(t, doc, "started_at")
}

func TestToDomain_Nil(t *testing.T) {
	assert.Nil(t, ToBackgroundJobDomain(nil))
	assert.Nil(t, ToFeaturedItemDomain(nil))
}
