package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/application/port"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/application/usecase"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/domain"
)

// Reloader refreshes a shared collection that another instance has changed.
type Reloader interface {
	Reload(ctx context.Context, entity string) error
}

// ChangeStreamHandler forwards change-feed messages for one topic to websocket clients.
// Messages from other instances first reload the shared collection; instance-local entities
// from other instances are dropped.
type ChangeStreamHandler struct {
	topic       string
	instanceID  string
	reloader    Reloader
	broadcastUC *usecase.BroadcastUseCase
}

func NewChangeStreamHandler(topic, instanceID string, reloader Reloader, broadcastUC *usecase.BroadcastUseCase) *ChangeStreamHandler {
	return &ChangeStreamHandler{
		topic:       strings.TrimSpace(topic),
		instanceID:  strings.TrimSpace(instanceID),
		reloader:    reloader,
		broadcastUC: broadcastUC,
	}
}

func (h *ChangeStreamHandler) Topic() string { return h.topic }

func (h *ChangeStreamHandler) Handle(ctx context.Context, msg *domain.Message) error {
	if msg.Topic == "" && msg.Entity != "" && msg.Action != "" {
		msg.Topic = domain.CustomTopic(msg.Entity, msg.Action)
	}

	if h.isForeign(msg) {
		if isInstanceLocal(msg.Entity) {
			slog.Debug("change-stream skipped foreign local entity", slog.String("topic", msg.Topic))
			return nil
		}
		if h.reloader != nil {
			if err := h.reloader.Reload(ctx, msg.Entity); err != nil {
				return err
			}
			slog.Info("change-stream reloaded collection", slog.String("entity", msg.Entity), slog.String("origin", msg.Metadata[usecase.MetadataInstance]))
		}
	}

	h.broadcastUC.Execute(ctx, msg)
	return nil
}

func (h *ChangeStreamHandler) isForeign(msg *domain.Message) bool {
	if h.instanceID == "" || msg.Metadata == nil {
		return false
	}
	origin := strings.TrimSpace(msg.Metadata[usecase.MetadataInstance])
	return origin != "" && origin != h.instanceID
}

func isInstanceLocal(entity string) bool {
	switch entity {
	case domain.EntityCart, domain.EntitySession, domain.EntityNotification:
		return true
	}
	return false
}

var _ port.TopicHandler = (*ChangeStreamHandler)(nil)
