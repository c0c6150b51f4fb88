package usecase

import (
	"context"
	"log/slog"
	"strings"

	menuport "github.com/fuadmd/FalafelArwa/internal/modules/menu/application/port"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/application/port"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/domain"
)

// MetadataInstance tags a message with the instance whose container produced it.
const MetadataInstance = "instanceId"

type BroadcastUseCase struct {
	broadcaster port.Broadcaster
}

func NewBroadcastUseCase(b port.Broadcaster) *BroadcastUseCase {
	return &BroadcastUseCase{broadcaster: b}
}

func (uc *BroadcastUseCase) Execute(ctx context.Context, msg *domain.Message) {
	uc.broadcaster.Broadcast(ctx, msg)
}

// ChangeFeed turns container change events into websocket messages.
// With a feed publisher configured the message goes through the broker and comes back via the
// consumer; otherwise it is broadcast to local clients straight away.
type ChangeFeed struct {
	instanceID string
	broadcast  *BroadcastUseCase
	feed       port.EventPublisher
}

func NewChangeFeed(instanceID string, broadcast *BroadcastUseCase, feed port.EventPublisher) *ChangeFeed {
	return &ChangeFeed{instanceID: strings.TrimSpace(instanceID), broadcast: broadcast, feed: feed}
}

func (f *ChangeFeed) Publish(ctx context.Context, event menuport.ChangeEvent) {
	msg := domain.NewMessage(event.Entity, event.Action, event.Data, event.Timestamp)
	msg.ResourceID = event.ResourceID
	if f.instanceID != "" {
		msg.Metadata = map[string]string{MetadataInstance: f.instanceID}
	}

	if f.feed != nil {
		err := f.feed.Publish(ctx, msg)
		if err == nil {
			return
		}
		slog.Warn("change feed publish failed, broadcasting locally", slog.String("topic", msg.Topic), slog.Any("error", err))
	}
	f.broadcast.Execute(ctx, msg)
}

var _ menuport.ChangePublisher = (*ChangeFeed)(nil)
