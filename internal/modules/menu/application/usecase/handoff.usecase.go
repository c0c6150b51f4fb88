package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
)

var (
	ErrAddressRequired = errors.New("delivery address is required")
	ErrEmptyCart       = errors.New("cart is empty")
)

// DefaultHandoffBaseURL is the chat deep-link service.
const DefaultHandoffBaseURL = "https://wa.me"

// Handoff is a formatted order ready to be opened in the messaging app.
type Handoff struct {
	Message  string          `json:"message"`
	URL      string          `json:"url"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
}

// AddressPrompt is the localized text shown when the address is missing.
func AddressPrompt(lang domain.Language) string {
	if lang == domain.LanguageArabic {
		return "يرجى إدخال العنوان"
	}
	return "Please enter address"
}

// OrderHandoff formats the cart into a chat message. It never mutates the cart.
type OrderHandoff struct {
	state   *Container
	baseURL string
}

func NewOrderHandoff(state *Container, baseURL string) *OrderHandoff {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultHandoffBaseURL
	}
	return &OrderHandoff{state: state, baseURL: baseURL}
}

func (h *OrderHandoff) Checkout(_ context.Context, address string) (Handoff, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Handoff{}, ErrAddressRequired
	}

	c := h.state
	c.mu.Lock()
	items := append([]domain.CartItem{}, c.cart...)
	lang := c.language
	cfg := c.config.Clone()
	c.mu.Unlock()

	if len(items) == 0 {
		return Handoff{}, ErrEmptyCart
	}

	message, total := FormatOrderMessage(cfg.Name(lang), items, address, lang)
	link := fmt.Sprintf("%s/%s?text=%s", h.baseURL, digitsOnly(cfg.WhatsApp), encodeText(message))
	slog.Info("order handoff prepared", slog.Int("lines", len(items)), slog.String("total", total.String()))
	return Handoff{Message: message, URL: link, Total: total, Currency: lang.Currency()}, nil
}

// FormatOrderMessage renders the order text and returns the grand total alongside it.
func FormatOrderMessage(restaurant string, items []domain.CartItem, address string, lang domain.Language) (string, decimal.Decimal) {
	currency := lang.Currency()
	var b strings.Builder
	fmt.Fprintf(&b, "*طلب جديد من %s*\n\n", restaurant)
	for _, item := range items {
		fmt.Fprintf(&b, "• %s x%d = %s %s\n", item.Name(lang), item.Quantity, item.LineTotal().String(), currency)
	}
	total := domain.CartTotal(items)
	fmt.Fprintf(&b, "\n*الإجمالي: %s %s*\n", total.String(), currency)
	fmt.Fprintf(&b, "\n*العنوان:*\n%s", address)
	return b.String(), total
}

func digitsOnly(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}

// encodeText percent-encodes spaces as %20 so chat clients do not show literal plus signs.
func encodeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
