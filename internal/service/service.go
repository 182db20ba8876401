package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"devconnector/internal/events"
)

const bcryptCost = 10

// emitter publishes domain events without ever failing the caller.
type emitter struct {
	pub events.Publisher
	log *zap.Logger
}

func (e emitter) emit(ctx context.Context, eventType, userID string, data interface{}) {
	if e.pub == nil {
		return
	}
	if err := e.pub.Publish(ctx, eventType, userID, data); err != nil {
		e.log.Warn("publish event", zap.String("event", eventType), zap.String("user_id", userID), zap.Error(err))
	}
}

func now() time.Time {
	return time.Now().UTC()
}

// splitSkills turns "Go, SQL,,  Docker" into [Go SQL Docker].
func splitSkills(raw string) []string {
	skills := []string{}
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
