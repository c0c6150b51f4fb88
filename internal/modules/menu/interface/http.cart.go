package transport

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/application/usecase"
)

type cartItemRequest struct {
	ProductID string `json:"productId"`
}

type cartAdjustRequest struct {
	Delta int `json:"delta"`
}

type checkoutRequest struct {
	Address string `json:"address"`
}

func (h *Handler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cart.Summary())
}

func (h *Handler) postCartItem(c echo.Context) error {
	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	summary, err := h.cart.AddByID(c.Request().Context(), req.ProductID)
	if err != nil {
		return h.fail(c, err)
	}
	h.metrics.CartActions.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) patchCartItem(c echo.Context) error {
	var req cartAdjustRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	summary := h.cart.AdjustQuantity(c.Request().Context(), c.Param("id"), req.Delta)
	h.metrics.CartActions.WithLabelValues("adjust").Inc()
	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) deleteCartItem(c echo.Context) error {
	summary := h.cart.Remove(c.Request().Context(), c.Param("id"))
	h.metrics.CartActions.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) deleteCart(c echo.Context) error {
	summary := h.cart.Clear(c.Request().Context())
	h.metrics.CartActions.WithLabelValues("clear").Inc()
	return c.JSON(http.StatusOK, summary)
}

// postCheckout builds the messaging deep link. A missing address is answered with the
// localized prompt so the storefront can ask again.
func (h *Handler) postCheckout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	handoff, err := h.handoff.Checkout(c.Request().Context(), req.Address)
	if errors.Is(err, usecase.ErrAddressRequired) {
		return echo.NewHTTPError(http.StatusBadRequest, usecase.AddressPrompt(h.state.Language()))
	}
	if err != nil {
		return h.fail(c, err)
	}
	h.metrics.Handoffs.Inc()
	return c.JSON(http.StatusOK, handoff)
}
