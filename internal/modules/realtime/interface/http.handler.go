package transport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	menu "github.com/fuadmd/FalafelArwa/internal/modules/menu/application/usecase"
	menudomain "github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/domain"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/infrastructure"
)

const (
	ViewStorefront    = "storefront"
	ViewNotifications = "notifications"
	ViewAdmin         = "admin"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ViewerGauge tracks connected live views.
type ViewerGauge interface {
	Inc()
	Dec()
}

type nopGauge struct{}

func (nopGauge) Inc() {}
func (nopGauge) Dec() {}

// StorefrontOptions configures the public live menu socket.
type StorefrontOptions struct {
	State          *menu.Container
	SliderInterval time.Duration
	PhraseInterval time.Duration
	Viewers        ViewerGauge
	// CartActions counts cart commands by action; nil disables counting.
	CartActions *prometheus.CounterVec
}

// NewStorefrontWebsocketHandler exposes /ws/storefront. Each connection is one view that receives
// a menu snapshot, live change messages, and its own slider and phrase rotation.
func NewStorefrontWebsocketHandler(hub *infrastructure.Hub, opts StorefrontOptions) echo.HandlerFunc {
	if opts.SliderInterval <= 0 {
		opts.SliderInterval = menu.DefaultSliderInterval
	}
	if opts.PhraseInterval <= 0 {
		opts.PhraseInterval = menu.DefaultPhraseInterval
	}
	if opts.Viewers == nil {
		opts.Viewers = nopGauge{}
	}
	storefront := menu.NewStorefront(opts.State)
	cart := menu.NewCartManager(opts.State)

	return func(c echo.Context) error {
		requestID := c.Response().Header().Get(echo.HeaderXRequestID)
		peerIP := c.RealIP()
		viewID := viewIDFrom(c)

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("storefront ws upgrade failed", slog.String("ip", peerIP), slog.String("reqID", requestID), slog.Any("error", err))
			return err
		}

		commands := storefrontCommands(opts.State, storefront, cart, opts.CartActions)
		client := infrastructure.NewClient(hub, conn, viewID, ViewStorefront, "", 32, commands)
		topics := domain.StorefrontTopics()
		hub.AttachClient(client, topics)

		opts.Viewers.Inc()
		stop := startViewRotation(client, opts.State, opts.SliderInterval, opts.PhraseInterval)
		client.AddCloseHook(func(*infrastructure.Client) {
			stop()
			opts.Viewers.Dec()
		})

		go client.WritePump()
		go client.ReadPump()

		client.SendDomainMessage(connectedMessage(viewID, ViewStorefront, topics))
		client.SendDomainMessage(snapshotMessage(storefront, cart, opts.State.Now()))

		slog.Info("storefront ws connected", slog.String("viewId", viewID), slog.String("ip", peerIP), slog.String("reqID", requestID))
		return nil
	}
}

// startViewRotation runs the slider, bottom slider and teaser phrase schedules for one view.
// The slide counts are fixed when the view connects.
func startViewRotation(client *infrastructure.Client, state *menu.Container, sliderInterval, phraseInterval time.Duration) func() {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := state.Config()
	phrases := menudomain.TeaserPhrases()

	slide := func(action string, images []string) func(int) {
		return func(index int) {
			msg := domain.NewMessage(domain.StorefrontEntity, action, map[string]any{
				"index": index,
				"count": len(images),
				"image": images[index],
			}, state.Now())
			client.SendDomainMessage(msg)
		}
	}

	stops := []func(){
		menu.StartRotation(ctx, sliderInterval, len(cfg.SliderImages), slide(domain.ActionSlide, cfg.SliderImages)),
		menu.StartRotation(ctx, sliderInterval, len(cfg.BottomSliderImages), slide(domain.ActionBottomSlide, cfg.BottomSliderImages)),
		menu.StartRotation(ctx, phraseInterval, len(phrases), func(index int) {
			client.SendDomainMessage(domain.NewMessage(domain.StorefrontEntity, domain.ActionPhrase, map[string]any{
				"index":  index,
				"phrase": phrases[index],
			}, state.Now()))
		}),
	}
	return func() {
		cancel()
		for _, stop := range stops {
			stop()
		}
	}
}

func connectedMessage(viewID, view string, topics []string) *domain.Message {
	return &domain.Message{
		Topic:  domain.TopicSystemConnected,
		Entity: domain.SystemEntity,
		Action: domain.ActionConnected,
		Metadata: map[string]string{
			infrastructure.MetadataViewID: viewID,
			infrastructure.MetadataView:   view,
		},
		Data: map[string]any{
			"view":          view,
			"viewId":        viewID,
			"allowedTopics": topics,
		},
		Timestamp: time.Now().UTC(),
	}
}

func snapshotMessage(storefront *menu.Storefront, cart *menu.CartManager, at time.Time) *domain.Message {
	return domain.NewMessage(domain.StorefrontEntity, domain.ActionSnapshot, map[string]any{
		"menu": storefront.Menu(),
		"cart": cart.Summary(),
	}, at)
}

func errorMessage(action string, err error) *domain.Message {
	return domain.NewMessage(domain.SystemEntity, domain.ActionError, map[string]any{
		"command": action,
		"error":   err.Error(),
	}, time.Now())
}

const maxViewLabel = 64

// viewIDFrom always mints a fresh id; a client supplied ?view= only prefixes it.
func viewIDFrom(c echo.Context) string {
	label := strings.TrimSpace(c.QueryParam("view"))
	if label == "" {
		return uuid.NewString()
	}
	if len(label) > maxViewLabel {
		label = label[:maxViewLabel]
	}
	return label + "-" + uuid.NewString()
}
