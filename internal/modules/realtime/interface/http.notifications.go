package transport

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	menu "github.com/fuadmd/FalafelArwa/internal/modules/menu/application/usecase"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/domain"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/infrastructure"
)

// NewNotificationsWebsocketHandler exposes /ws/notifications, streaming cart changes and the
// transient added/removed/cleared notices. A notice still showing is replayed on connect.
func NewNotificationsWebsocketHandler(hub *infrastructure.Hub, state *menu.Container) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Response().Header().Get(echo.HeaderXRequestID)
		peerIP := c.RealIP()
		viewID := viewIDFrom(c)

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("notifications ws upgrade failed", slog.String("ip", peerIP), slog.String("reqID", requestID), slog.Any("error", err))
			return err
		}

		client := infrastructure.NewClient(hub, conn, viewID, ViewNotifications, "", 8, nil)
		topics := domain.NotificationTopics()
		hub.AttachClient(client, topics)

		go client.WritePump()
		go client.ReadPump()

		client.SendDomainMessage(connectedMessage(viewID, ViewNotifications, topics))
		if current, ok := state.Notification(); ok {
			client.SendDomainMessage(domain.NewMessage(domain.EntityNotification, domain.ActionShown, current, current.ShownAt))
		}

		slog.Info("notifications ws connected", slog.String("viewId", viewID), slog.String("ip", peerIP), slog.String("reqID", requestID))
		return nil
	}
}

// NewAdminWebsocketHandler exposes /ws/admin, a feed of every change for the signed-in dashboard.
func NewAdminWebsocketHandler(hub *infrastructure.Hub, state *menu.Container) echo.HandlerFunc {
	return func(c echo.Context) error {
		peerIP := c.RealIP()
		user, ok := state.CurrentUser()
		if !ok {
			slog.Warn("admin ws rejected without session", slog.String("ip", peerIP))
			return echo.NewHTTPError(http.StatusUnauthorized, "login required")
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("admin ws upgrade failed", slog.String("ip", peerIP), slog.Any("error", err))
			return err
		}

		viewID := viewIDFrom(c)
		client := infrastructure.NewClient(hub, conn, viewID, ViewAdmin, user.Username, 32, nil)
		hub.AttachClientToAll(client)

		go client.WritePump()
		go client.ReadPump()

		client.SendDomainMessage(connectedMessage(viewID, ViewAdmin, []string{"*"}))
		slog.Info("admin ws connected", slog.String("user", user.Username), slog.String("viewId", viewID), slog.String("ip", peerIP))
		return nil
	}
}
