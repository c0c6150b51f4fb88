package usecase

import (
	"context"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
	"github.com/shopspring/decimal"
)

// CartSummary is the cart as rendered by the cart view.
type CartSummary struct {
	Items    []domain.CartItem `json:"items"`
	Count    int               `json:"count"`
	Total    decimal.Decimal   `json:"total"`
	Currency string            `json:"currency"`
}

// CartManager mutates the in-memory cart. The cart is never persisted.
type CartManager struct {
	state *Container
}

func NewCartManager(state *Container) *CartManager {
	return &CartManager{state: state}
}

// Add increments the line for product, creating it with quantity 1 when absent.
func (m *CartManager) Add(ctx context.Context, product domain.Product) CartSummary {
	c := m.state
	c.mu.Lock()
	defer c.mu.Unlock()

	found := false
	for i := range c.cart {
		if c.cart[i].ID == product.ID {
			c.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		c.cart = append(c.cart, domain.CartItem{Product: product, Quantity: 1})
	}
	c.notifyLocked(domain.NotificationAdded)
	return m.publishLocked(ctx, product.ID)
}

// AddByID looks the product up in the catalog and adds a snapshot of it.
func (m *CartManager) AddByID(ctx context.Context, productID string) (CartSummary, error) {
	product, ok := m.findProduct(productID)
	if !ok {
		return CartSummary{}, ErrProductNotFound
	}
	return m.Add(ctx, product), nil
}

// AdjustQuantity applies delta. A resulting quantity of zero or less drops the line and
// shows the removed notification; other changes are silent. Unknown ids are ignored.
func (m *CartManager) AdjustQuantity(ctx context.Context, productID string, delta int) CartSummary {
	c := m.state
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.cart {
		if c.cart[i].ID != productID {
			continue
		}
		next := max(0, c.cart[i].Quantity+delta)
		if next == 0 {
			c.cart = append(c.cart[:i:i], c.cart[i+1:]...)
			c.notifyLocked(domain.NotificationRemoved)
		} else {
			c.cart[i].Quantity = next
		}
		break
	}
	return m.publishLocked(ctx, productID)
}

// Remove drops the line unconditionally and always shows the removed notification.
func (m *CartManager) Remove(ctx context.Context, productID string) CartSummary {
	c := m.state
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]domain.CartItem, 0, len(c.cart))
	for _, item := range c.cart {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	c.cart = kept
	c.notifyLocked(domain.NotificationRemoved)
	return m.publishLocked(ctx, productID)
}

func (m *CartManager) Clear(ctx context.Context) CartSummary {
	c := m.state
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cart = make([]domain.CartItem, 0)
	c.notifyLocked(domain.NotificationCleared)
	return m.publishLocked(ctx, "")
}

func (m *CartManager) Summary() CartSummary {
	c := m.state
	c.mu.Lock()
	defer c.mu.Unlock()
	return m.summaryLocked()
}

func (m *CartManager) summaryLocked() CartSummary {
	c := m.state
	items := append([]domain.CartItem{}, c.cart...)
	return CartSummary{
		Items:    items,
		Count:    domain.CartCount(items),
		Total:    domain.CartTotal(items),
		Currency: c.language.Currency(),
	}
}

func (m *CartManager) publishLocked(ctx context.Context, productID string) CartSummary {
	summary := m.summaryLocked()
	m.state.publishLocked(ctx, EntityCart, productID, summary)
	return summary
}

func (m *CartManager) findProduct(id string) (domain.Product, bool) {
	for _, p := range m.state.Products() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
