package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/domain"
)

var storefrontTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type topicRecorder struct {
	topic   string
	handled int
}

func (r *topicRecorder) Topic() string { return r.topic }

func (r *topicRecorder) Handle(context.Context, *domain.Message) error {
	r.handled++
	return nil
}

func TestHandlerRegistryDispatch(t *testing.T) {
	registry := NewHandlerRegistry()
	products := &topicRecorder{topic: "products.updated"}
	registry.Register(products)

	ctx := context.Background()
	if err := registry.Dispatch(ctx, domain.NewMessage("products", "updated", nil, storefrontTime)); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if err := registry.Dispatch(ctx, domain.NewMessage("unknown", "updated", nil, storefrontTime)); err != nil {
		t.Fatalf("unknown topics are ignored: %v", err)
	}
	if products.handled != 1 || len(registry.Topics()) != 1 {
		t.Fatalf("unexpected dispatch state %d %v", products.handled, registry.Topics())
	}
}
