package port

import (
	"context"
	"time"
)

// ChangeEvent describes a state transition that live views may want to render.
type ChangeEvent struct {
	Entity     string
	Action     string
	ResourceID string
	Data       any
	Timestamp  time.Time
}

// Topic is the entity.action pair used for routing.
func (e ChangeEvent) Topic() string {
	return e.Entity + "." + e.Action
}

// ChangePublisher fans change events out to connected views.
type ChangePublisher interface {
	Publish(ctx context.Context, event ChangeEvent)
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ChangeEvent) {}

// Clock abstracts wall time so status evaluation can be tested.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
