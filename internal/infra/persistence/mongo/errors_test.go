package mongo

import (
	"testing"
	"time"

	"indieneer/internal/domain/repository"
	"indieneer/internal/errors"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no documents", err: mongo.ErrNoDocuments, want: repository.ErrNotFound},
		{
			name: "duplicate key",
			err:  mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000"}}},
			want: repository.ErrDuplicateKey,
		},
		{
			name: "write conflict code",
			err:  mongo.CommandError{Code: writeConflictCode, Message: "WriteConflict"},
			want: repository.ErrWriteConflict,
		},
		{
			name: "transient transaction label",
			err:  mongo.CommandError{Code: 251, Labels: []string{"TransientTransactionError"}},
			want: repository.ErrWriteConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(translate(tt.err, "op"), tt.want))
		})
	}
}

func TestTranslate_PassesThroughOtherErrors(t *testing.T) {
	cause := errors.New("connection reset")

	err := translate(cause, "find profile")

	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, repository.ErrNotFound))
	assert.Contains(t, err.Error(), "find profile")
	assert.NoError(t, translate(nil, "op"))
}

func TestClock_Monotonic(t *testing.T) {
	c := &clock{}
	c.last = time.Now().UTC().Add(time.Hour)

	assert.Equal(t, c.last, c.Now(), "a clock step backwards must not leak")

	c = &clock{}
	now := c.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Equal(t, now, now.Truncate(time.Millisecond))
}
