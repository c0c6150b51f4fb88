package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	menuport "github.com/fuadmd/FalafelArwa/internal/modules/menu/application/port"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/domain"
)

type recordingBroadcaster struct {
	mu       sync.Mutex
	messages []*domain.Message
}

func (b *recordingBroadcaster) Broadcast(_ context.Context, msg *domain.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, msg)
}

type stubFeed struct {
	err       error
	published []*domain.Message
}

func (f *stubFeed) Publish(_ context.Context, msg *domain.Message) error {
	f.published = append(f.published, msg)
	return f.err
}

func TestChangeFeedBroadcastsLocallyWithoutFeed(t *testing.T) {
	b := &recordingBroadcaster{}
	feed := NewChangeFeed("node-a", NewBroadcastUseCase(b), nil)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	feed.Publish(context.Background(), menuport.ChangeEvent{Entity: "products", Action: "updated", ResourceID: "p1", Data: []string{"x"}, Timestamp: at})

	if len(b.messages) != 1 {
		t.Fatalf("expected one broadcast, got %d", len(b.messages))
	}
	msg := b.messages[0]
	if msg.Topic != "products.updated" || msg.ResourceID != "p1" || msg.Metadata[MetadataInstance] != "node-a" {
		t.Fatalf("unexpected message %+v", msg)
	}
}

func TestChangeFeedPrefersBrokerAndFallsBack(t *testing.T) {
	cases := []struct {
		name          string
		feedErr       error
		wantBroadcast int
	}{
		{name: "broker ok", wantBroadcast: 0},
		{name: "broker down", feedErr: errors.New("no leader"), wantBroadcast: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &recordingBroadcaster{}
			sf := &stubFeed{err: tc.feedErr}
			NewChangeFeed("", NewBroadcastUseCase(b), sf).Publish(context.Background(), menuport.ChangeEvent{Entity: "cart", Action: "updated"})
			if len(sf.published) != 1 {
				t.Fatalf("expected broker publish attempt")
			}
			if sf.published[0].Metadata != nil {
				t.Fatalf("no instance id means no metadata, got %v", sf.published[0].Metadata)
			}
			if len(b.messages) != tc.wantBroadcast {
				t.Fatalf("expected %d local broadcasts, got %d", tc.wantBroadcast, len(b.messages))
			}
		})
	}
}
