package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaPublisher wraps a kafka.Writer routing each event to "<prefix>.<type>".
type KafkaPublisher struct {
	w      *kafka.Writer
	prefix string
	log    *zap.Logger
}

// NewKafkaPublisher creates an asynchronous Kafka writer. Delivery errors are
// logged from the completion callback.
func NewKafkaPublisher(brokers []string, prefix string, log *zap.Logger) *KafkaPublisher {
	log = log.Named("events")
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			Async:                  true,
			AllowAutoTopicCreation: true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					log.Warn("event delivery failed", zap.Int("messages", len(messages)), zap.Error(err))
				}
			},
		},
		prefix: prefix,
		log:    log,
	}
}

// Topic returns the topic an event type is written to.
func (p *KafkaPublisher) Topic(eventType string) string {
	if p.prefix == "" {
		return eventType
	}
	return p.prefix + "." + eventType
}

// Publish enqueues an event keyed by user id.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType, userID string, data interface{}) error {
	ev, err := NewEvent(eventType, userID, data)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", eventType, err)
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", eventType, err)
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Topic: p.Topic(eventType),
		Key:   []byte(userID),
		Value: value,
	})
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error { return p.w.Close() }
