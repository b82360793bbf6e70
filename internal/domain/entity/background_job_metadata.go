package entity

import (
	"bytes"
	"encoding/json"
	"maps"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// JobType names a kind of background job.
type JobType string

const (
	// JobTypeESSeeder reindexes products into the search cluster.
	JobTypeESSeeder JobType = "es_seeder"
)

// ErrMetadataDecode is returned when metadata has unknown keys or wrongly typed values.
var ErrMetadataDecode = errors.New("metadata does not match the job type schema")

// ErrMetadataInvalid is returned when decoded metadata fails validation.
var ErrMetadataInvalid = errors.New("metadata failed validation")

// ESSeederMetadata is the metadata of an es_seeder job.
type ESSeederMetadata struct {
	MatchQuery string `json:"match_query" validate:"required"`
}

// MetadataSchema validates the metadata of one job type.
type MetadataSchema interface {
	Validate(metadata map[string]any) error
}

type structSchema[T any] struct {
	validate *validator.Validate
}

// Validate round-trips the metadata through T, rejecting unknown keys.
func (s structSchema[T]) Validate(metadata map[string]any) error {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return errors.Wrap(ErrMetadataDecode, err.Error())
	}

	var typed T
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&typed); err != nil {
		return errors.Wrap(ErrMetadataDecode, err.Error())
	}

	if err := s.validate.Struct(typed); err != nil {
		return errors.Wrap(ErrMetadataInvalid, err.Error())
	}

	return nil
}

// JobRegistry maps each job type to the schema of its metadata.
// New job types are added by registering a schema.
type JobRegistry struct {
	schemas map[JobType]MetadataSchema
}

// NewJobRegistry returns the registry with every job type known to the platform.
func NewJobRegistry() *JobRegistry {
	v := validator.New(validator.WithRequiredStructEnabled())

	return &JobRegistry{
		schemas: map[JobType]MetadataSchema{
			JobTypeESSeeder: structSchema[ESSeederMetadata]{validate: v},
		},
	}
}

// Register adds or replaces the schema of a job type.
func (r *JobRegistry) Register(jobType JobType, schema MetadataSchema) {
	r.schemas[jobType] = schema
}

// Supports reports whether jobType is registered.
func (r *JobRegistry) Supports(jobType JobType) bool {
	_, ok := r.schemas[jobType]

	return ok
}

// Types lists the registered job types in lexical order.
func (r *JobRegistry) Types() []JobType {
	types := make([]JobType, 0, len(r.schemas))
	for t := range r.schemas {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	return types
}

// Validate checks metadata against the schema of jobType.
func (r *JobRegistry) Validate(jobType JobType, metadata map[string]any) error {
	schema, ok := r.schemas[jobType]
	if !ok {
		return errors.Errorf("unsupported job type %q", jobType)
	}

	return schema.Validate(metadata)
}

// MergeMetadata overlays patch onto current field by field without mutating either map.
func MergeMetadata(current, patch map[string]any) map[string]any {
	merged := make(map[string]any, len(current)+len(patch))
	maps.Copy(merged, current)
	maps.Copy(merged, patch)

	return merged
}
