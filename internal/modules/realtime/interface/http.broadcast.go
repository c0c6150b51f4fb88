package transport

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	menu "github.com/fuadmd/FalafelArwa/internal/modules/menu/application/usecase"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/application/usecase"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/domain"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/infrastructure"
)

// AnnouncementRequest is an ad-hoc message pushed from the dashboard to live views.
type AnnouncementRequest struct {
	Message string         `json:"message"`
	View    string         `json:"view,omitempty"`
	ViewID  string         `json:"viewId,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

type AnnouncementResponse struct {
	Success bool   `json:"success"`
	Topic   string `json:"topic"`
}

// NewAnnouncementHTTPHandler broadcasts storefront.announcement, optionally targeted at one view kind or view id.
func NewAnnouncementHTTPHandler(broadcastUC *usecase.BroadcastUseCase, state *menu.Container) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req AnnouncementRequest
		if err := c.Bind(&req); err != nil {
			slog.Warn("announcement: invalid request body", slog.Any("error", err))
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		text := strings.TrimSpace(req.Message)
		if text == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "message is required")
		}

		data := map[string]any{"message": text}
		for k, v := range req.Data {
			if k != "message" {
				data[k] = v
			}
		}

		msg := domain.NewMessage(domain.StorefrontEntity, domain.ActionAnnouncement, data, state.Now())
		metadata := map[string]string{}
		if view := strings.TrimSpace(req.View); view != "" {
			metadata[infrastructure.MetadataView] = view
		}
		if viewID := strings.TrimSpace(req.ViewID); viewID != "" {
			metadata[infrastructure.MetadataViewID] = viewID
		}
		if len(metadata) > 0 {
			msg.Metadata = metadata
		}

		broadcastUC.Execute(c.Request().Context(), msg)
		slog.Info("announcement sent", slog.String("topic", msg.Topic), slog.Any("metadata", metadata))
		return c.JSON(http.StatusOK, AnnouncementResponse{Success: true, Topic: msg.Topic})
	}
}
