package mongostore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"devconnector/internal/repository"
)

func TestNewIDIsValid(t *testing.T) {
	id := newID()
	assert.Len(t, id, 24)
	assert.True(t, validID(id))
	assert.NotEqual(t, id, newID())
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"5f8d0d55b54764421b7156c3", true},
		{"", false},
		{"123", false},
		{"zzzzzzzzzzzzzzzzzzzzzzzz", false},
		{"e9b1c6a2-8c8b-4b5e-9d0a-1d2f3e4a5b6c", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, validID(tt.id))
		})
	}
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(mongo.ErrNoDocuments), repository.ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("find: %w", mongo.ErrNoDocuments)), repository.ErrNotFound)

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	assert.ErrorIs(t, translate(dup), repository.ErrDuplicate)

	other := errors.New("boom")
	assert.Equal(t, other, translate(other))
}
