package port

import (
	"context"

	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/domain"
)

// Broadcaster pushes messages to connected websocket clients.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// EventPublisher writes messages onto the change feed shared by all replicas.
type EventPublisher interface {
	Publish(ctx context.Context, msg *domain.Message) error
}

// TopicHandler handles messages consumed from one feed topic.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, msg *domain.Message) error
}
