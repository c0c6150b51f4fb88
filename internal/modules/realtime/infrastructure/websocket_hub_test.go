package infrastructure

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/domain"
)

func drain(c *Client) []domain.Message {
	out := make([]domain.Message, 0)
	for {
		select {
		case raw, ok := <-c.send:
			if !ok {
				return out
			}
			var msg domain.Message
			if err := json.Unmarshal(raw, &msg); err == nil {
				out = append(out, msg)
			}
		default:
			return out
		}
	}
}

func TestHubRoutesByTopicAndMetadata(t *testing.T) {
	hub := NewHub()
	storefront := NewClient(hub, nil, "v1", "storefront", "", 8, nil)
	other := NewClient(hub, nil, "v2", "storefront", "", 8, nil)
	admin := NewClient(hub, nil, "a1", "admin", "admin", 8, nil)
	hub.AttachClient(storefront, []string{"cart.updated", " "})
	hub.AttachClient(other, []string{"cart.updated"})
	hub.AttachClientToAll(admin)

	hub.Broadcast(context.Background(), domain.NewMessage("cart", "updated", nil, storefrontTime))
	targeted := domain.NewMessage("cart", "updated", nil, storefrontTime)
	targeted.Metadata = map[string]string{MetadataViewID: "v2"}
	hub.Broadcast(context.Background(), targeted)
	hub.Broadcast(context.Background(), domain.NewMessage("users", "updated", nil, storefrontTime))

	if got := len(drain(storefront)); got != 1 {
		t.Fatalf("storefront v1 expected 1 message, got %d", got)
	}
	if got := len(drain(other)); got != 2 {
		t.Fatalf("storefront v2 expected 2 messages, got %d", got)
	}
	if got := len(drain(admin)); got != 2 {
		t.Fatalf("global admin client expected 2 messages, got %d", got)
	}
	if hub.Count("storefront") != 2 || hub.Count("") != 3 {
		t.Fatalf("unexpected counts %d/%d", hub.Count("storefront"), hub.Count(""))
	}
}

func TestHubDetachRunsCloseHooksOnce(t *testing.T) {
	hub := NewHub()
	c := NewClient(hub, nil, "v1", "storefront", "", 1, nil)
	calls := 0
	c.AddCloseHook(func(*Client) { calls++ })
	c.AddCloseHook(func(*Client) { panic("boom") })
	hub.AttachClient(c, []string{"config.updated"})

	hub.detachClient(c)
	hub.detachClient(c)
	c.SendDomainMessage(domain.NewMessage("config", "updated", nil, storefrontTime))

	if calls != 1 {
		t.Fatalf("expected hook to run once, got %d", calls)
	}
	if hub.Count("") != 0 {
		t.Fatalf("client still registered")
	}
}

func TestHubReplacesClientWithSameKey(t *testing.T) {
	hub := NewHub()
	first := NewClient(hub, nil, "v1", "storefront", "", 1, nil)
	second := NewClient(hub, nil, "v1", "storefront", "", 1, nil)
	closed := false
	first.AddCloseHook(func(*Client) { closed = true })

	hub.AttachClient(first, []string{"cart.updated"})
	hub.AttachClient(second, []string{"cart.updated"})

	if !closed || hub.Count("storefront") != 1 {
		t.Fatalf("expected the older client to be detached")
	}
	hub.Shutdown()
	if hub.Count("") != 0 {
		t.Fatalf("shutdown left clients behind")
	}
}

func TestCommandProcessor(t *testing.T) {
	hub := NewHub()
	var fallbackAction string
	c := NewClient(hub, nil, "v1", "storefront", "", 8, func(_ context.Context, _ *Client, cmd Command) {
		fallbackAction = cmd.Action
	})
	hub.AttachClient(c, nil)

	c.processCommand(Command{Action: " Subscribe ", Topic: "products.updated"})
	if _, ok := c.subscribed["products.updated"]; !ok {
		t.Fatalf("subscribe command not applied")
	}
	c.processCommand(Command{Action: "unsubscribe", Topic: "products.updated"})
	if len(c.subscribed) != 0 {
		t.Fatalf("unsubscribe command not applied")
	}
	c.processCommand(Command{Action: "ping"})
	msgs := drain(c)
	if len(msgs) != 1 || msgs[0].Topic != domain.TopicSystemPong {
		t.Fatalf("expected pong, got %+v", msgs)
	}
	c.processCommand(Command{Action: "cart.add"})
	if fallbackAction != "cart.add" {
		t.Fatalf("fallback not invoked")
	}
}
