package usecase

import (
	"context"
	"testing"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
)

func TestCartAddTwiceYieldsQuantityTwo(t *testing.T) {
	c, _ := newTestContainer(t, newMemStore())
	cart := NewCartManager(c)
	ctx := context.Background()

	for _, product := range domain.DefaultProducts() {
		cart.Clear(ctx)
		cart.Add(ctx, product)
		summary := cart.Add(ctx, product)
		if len(summary.Items) != 1 || summary.Items[0].Quantity != 2 {
			t.Fatalf("product %s: expected one line with quantity 2, got %+v", product.ID, summary.Items)
		}
	}
}

func TestCartAdjustQuantity(t *testing.T) {
	ctx := context.Background()
	product := domain.DefaultProducts()[0]

	cases := []struct {
		name     string
		quantity int
		delta    func(q int) int
		wantLine bool
		wantQty  int
	}{
		{name: "minus full quantity removes", quantity: 3, delta: func(q int) int { return -q }, wantLine: false},
		{name: "minus more than quantity removes", quantity: 2, delta: func(q int) int { return -q - 5 }, wantLine: false},
		{name: "minus q-1 leaves one", quantity: 4, delta: func(q int) int { return -(q - 1) }, wantLine: true, wantQty: 1},
		{name: "positive delta adds", quantity: 1, delta: func(int) int { return 2 }, wantLine: true, wantQty: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, publisher := newTestContainer(t, newMemStore())
			cart := NewCartManager(c)
			for i := 0; i < tc.quantity; i++ {
				cart.Add(ctx, product)
			}
			summary := cart.AdjustQuantity(ctx, product.ID, tc.delta(tc.quantity))
			if !tc.wantLine {
				if len(summary.Items) != 0 {
					t.Fatalf("expected line removed, got %+v", summary.Items)
				}
				note, ok := c.Notification()
				if !ok || note.Kind != domain.NotificationRemoved {
					t.Fatalf("expected removed notification, got %+v", note)
				}
				return
			}
			if len(summary.Items) != 1 || summary.Items[0].Quantity != tc.wantQty {
				t.Fatalf("expected quantity %d, got %+v", tc.wantQty, summary.Items)
			}
			if got := publisher.count("notification.shown"); got != tc.quantity {
				t.Fatalf("partial adjustment must be silent, got %d notifications for %d adds", got, tc.quantity)
			}
		})
	}
}

func TestCartAdjustUnknownIsNoop(t *testing.T) {
	c, _ := newTestContainer(t, newMemStore())
	cart := NewCartManager(c)
	summary := cart.AdjustQuantity(context.Background(), "missing", -1)
	if len(summary.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", summary.Items)
	}
	if _, ok := c.Notification(); ok {
		t.Fatalf("expected no notification")
	}
}

func TestCartClearNotifiesOnce(t *testing.T) {
	c, publisher := newTestContainer(t, newMemStore())
	cart := NewCartManager(c)
	ctx := context.Background()
	products := domain.DefaultProducts()
	cart.Add(ctx, products[0])
	cart.Add(ctx, products[1])

	before := publisher.count("notification.shown")
	summary := cart.Clear(ctx)
	if len(summary.Items) != 0 || summary.Count != 0 {
		t.Fatalf("expected empty cart, got %+v", summary)
	}
	if got := publisher.count("notification.shown") - before; got != 1 {
		t.Fatalf("expected exactly one notification, got %d", got)
	}
	note, ok := c.Notification()
	if !ok || note.Kind != domain.NotificationCleared || note.Message != "تم إفراغ السلة" {
		t.Fatalf("unexpected notification %+v", note)
	}
}

func TestCartRemoveAlwaysNotifies(t *testing.T) {
	c, publisher := newTestContainer(t, newMemStore())
	cart := NewCartManager(c)
	cart.Remove(context.Background(), "missing")
	if publisher.count("notification.shown") != 1 {
		t.Fatalf("expected remove to notify even for an absent line")
	}
}

func TestCartSnapshotIgnoresLaterPriceChanges(t *testing.T) {
	c, _ := newTestContainer(t, newMemStore())
	cart := NewCartManager(c)
	ctx := context.Background()

	if _, err := cart.AddByID(ctx, "p1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	product := domain.DefaultProducts()[0]
	product.Price = 99
	if _, err := NewCatalogEditor(c).UpsertProduct(ctx, product); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	summary := cart.Summary()
	if summary.Items[0].Price != 15 {
		t.Fatalf("cart line must keep add-time price, got %v", summary.Items[0].Price)
	}
	if _, err := cart.AddByID(ctx, "nope"); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
