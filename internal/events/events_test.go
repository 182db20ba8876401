package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewEvent(t *testing.T) {
	ev, err := NewEvent(PostCreated, "u1", map[string]string{"post_id": "p1"})
	require.NoError(t, err)
	assert.Equal(t, PostCreated, ev.Type)
	assert.Equal(t, "u1", ev.UserID)
	assert.False(t, ev.OccurredAt.IsZero())
	assert.JSONEq(t, `{"post_id":"p1"}`, string(ev.Data))

	ev, err = NewEvent(UserDeleted, "u1", nil)
	require.NoError(t, err)
	assert.Nil(t, ev.Data)

	_, err = NewEvent(UserDeleted, "u1", make(chan int))
	var unsupported *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &unsupported)
}

func TestKafkaPublisher_Topic(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"}, "devconnector", zap.NewNop())
	defer p.Close()
	assert.Equal(t, "devconnector.user.registered", p.Topic(UserRegistered))

	bare := NewKafkaPublisher([]string{"localhost:9092"}, "", zap.NewNop())
	defer bare.Close()
	assert.Equal(t, "post.created", bare.Topic(PostCreated))
}

func TestNopPublisher(t *testing.T) {
	p := NewNop()
	assert.NoError(t, p.Publish(context.Background(), ProfileUpdated, "u1", nil))
	assert.NoError(t, p.Close())
}
