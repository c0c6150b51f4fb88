package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	menu "github.com/fuadmd/FalafelArwa/internal/modules/menu/application/usecase"
	menudomain "github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/infrastructure"
)

type cartCommandPayload struct {
	ProductID string `json:"productId"`
	Delta     int    `json:"delta"`
}

type languageCommandPayload struct {
	Language string `json:"language"`
}

// storefrontCommands handles the cart and language actions a storefront view may send.
// Results reach every view through the change feed; only failures are answered directly.
func storefrontCommands(state *menu.Container, storefront *menu.Storefront, cart *menu.CartManager, cartActions *prometheus.CounterVec) infrastructure.CommandHandler {
	return func(ctx context.Context, client *infrastructure.Client, cmd infrastructure.Command) {
		action := strings.ToLower(strings.TrimSpace(cmd.Action))
		var err error

		switch action {
		case "cart.add":
			var payload cartCommandPayload
			if err = decodePayload(cmd.Payload, &payload); err == nil {
				_, err = cart.AddByID(ctx, payload.ProductID)
			}
		case "cart.adjust":
			var payload cartCommandPayload
			if err = decodePayload(cmd.Payload, &payload); err == nil {
				cart.AdjustQuantity(ctx, payload.ProductID, payload.Delta)
			}
		case "cart.remove":
			var payload cartCommandPayload
			if err = decodePayload(cmd.Payload, &payload); err == nil {
				cart.Remove(ctx, payload.ProductID)
			}
		case "cart.clear":
			cart.Clear(ctx)
		case "language":
			var payload languageCommandPayload
			if err = decodePayload(cmd.Payload, &payload); err == nil {
				_, err = state.SetLanguage(ctx, menudomain.Language(payload.Language))
			}
		case "snapshot":
			client.SendDomainMessage(snapshotMessage(storefront, cart, state.Now()))
		default:
			err = fmt.Errorf("unsupported command %q", action)
		}

		if err == nil && cartActions != nil && strings.HasPrefix(action, "cart.") {
			cartActions.WithLabelValues(strings.TrimPrefix(action, "cart.")).Inc()
		}
		if err != nil {
			slog.Warn("storefront ws command failed", slog.String("viewId", client.ViewID()), slog.String("action", action), slog.Any("error", err))
			client.SendDomainMessage(errorMessage(action, err))
		}
	}
}

func decodePayload(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return fmt.Errorf("missing payload")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
