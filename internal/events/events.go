// Package events publishes domain events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Event names, appended to the configured topic prefix.
const (
	UserRegistered = "user.registered"
	UserDeleted    = "user.deleted"
	ProfileUpdated = "profile.updated"
	PostCreated    = "post.created"
)

// Event is the envelope written to every topic.
type Event struct {
	Type       string          `json:"type"`
	UserID     string          `json:"user_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// Publisher emits domain events. Implementations must not block on the broker
// and must not fail the caller when the broker is unavailable.
type Publisher interface {
	Publish(ctx context.Context, eventType, userID string, data interface{}) error
	Close() error
}

// NewEvent builds an envelope, encoding data when present.
func NewEvent(eventType, userID string, data interface{}) (Event, error) {
	ev := Event{Type: eventType, UserID: userID, OccurredAt: time.Now().UTC()}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return Event{}, err
		}
		ev.Data = raw
	}
	return ev, nil
}

type nopPublisher struct{}

// NewNop returns a publisher that drops every event.
func NewNop() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, string, string, interface{}) error { return nil }
func (nopPublisher) Close() error                                               { return nil }
