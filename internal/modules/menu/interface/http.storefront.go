package transport

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
	"github.com/fuadmd/FalafelArwa/internal/modules/menu/infrastructure"
)

type languageRequest struct {
	Language string `json:"language"`
}

type languageResponse struct {
	Language  domain.Language `json:"language"`
	Direction string          `json:"direction"`
}

func (h *Handler) getMenu(c echo.Context) error {
	return c.JSON(http.StatusOK, h.storefront.Menu())
}

func (h *Handler) getCategoryProducts(c echo.Context) error {
	products, err := h.storefront.ProductsInCategory(c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// putLanguage switches the display language; unsupported codes fall back to Arabic.
func (h *Handler) putLanguage(c echo.Context) error {
	var req languageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	lang, err := h.state.SetLanguage(c.Request().Context(), domain.Language(strings.TrimSpace(req.Language)))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, languageResponse{Language: lang, Direction: lang.Direction()})
}

func (h *Handler) getQRCode(c echo.Context) error {
	size, _ := strconv.Atoi(c.QueryParam("size"))
	if size > 1024 {
		size = 1024
	}
	png, err := infrastructure.QRCodePNG(h.menuURL(c), size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *Handler) getNotification(c echo.Context) error {
	current, ok := h.state.Notification()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, current)
}

// menuURL is the configured public address, or the address the request came in on.
func (h *Handler) menuURL(c echo.Context) string {
	if h.publicURL != "" {
		return h.publicURL
	}
	return c.Scheme() + "://" + c.Request().Host + "/"
}
