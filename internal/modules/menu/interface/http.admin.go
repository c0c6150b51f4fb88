package transport

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/application/usecase"
	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
	"github.com/fuadmd/FalafelArwa/internal/modules/menu/infrastructure"
)

type statusRequest struct {
	Status    string            `json:"status"`
	AutoHours *domain.AutoHours `json:"autoHours,omitempty"`
}

type designRequest struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type sliderImageRequest struct {
	Image string `json:"image"`
}

func (h *Handler) upsertCategory(c echo.Context) error {
	var category domain.Category
	if err := c.Bind(&category); err != nil {
		return badRequest("invalid request body")
	}
	if id := c.Param("id"); id != "" {
		category.ID = id
	}
	saved, err := h.catalog.UpsertCategory(c.Request().Context(), category)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

func (h *Handler) deleteCategory(c echo.Context) error {
	if err := h.catalog.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) upsertProduct(c echo.Context) error {
	var product domain.Product
	if err := c.Bind(&product); err != nil {
		return badRequest("invalid request body")
	}
	if id := c.Param("id"); id != "" {
		product.ID = id
	}
	saved, err := h.catalog.UpsertProduct(c.Request().Context(), product)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

func (h *Handler) deleteProduct(c echo.Context) error {
	if err := h.catalog.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) exportCatalog(c echo.Context) error {
	var buf bytes.Buffer
	if err := infrastructure.WriteCatalogXLSX(&buf, h.state.Categories(), h.state.Products()); err != nil {
		return h.fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="menu.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *Handler) listUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.state.Users())
}

func (h *Handler) upsertUser(c echo.Context) error {
	var user domain.User
	if err := c.Bind(&user); err != nil {
		return badRequest("invalid request body")
	}
	if id := c.Param("id"); id != "" {
		user.ID = id
	}
	saved, err := h.users.UpsertUser(c.Request().Context(), user)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

func (h *Handler) deleteUser(c echo.Context) error {
	if err := h.users.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) getConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, h.state.Config())
}

func (h *Handler) putConfig(c echo.Context) error {
	var cfg domain.RestaurantConfig
	if err := c.Bind(&cfg); err != nil {
		return badRequest("invalid request body")
	}
	saved, err := h.configs.Replace(c.Request().Context(), cfg)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

func (h *Handler) putStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	saved, err := h.configs.SetStatus(c.Request().Context(), req.Status, req.AutoHours)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

func (h *Handler) patchDesign(c echo.Context) error {
	var req designRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	saved, err := h.configs.UpdateDesign(c.Request().Context(), req.Key, req.Value)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

// patchDesignStyle updates one sub-key of the productName or categoryTitle styles.
func (h *Handler) patchDesignStyle(c echo.Context) error {
	var req designRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	saved, err := h.configs.UpdateDesignStyle(c.Request().Context(), c.Param("field"), req.Key, req.Value)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

func (h *Handler) postSocialLink(c echo.Context) error {
	link, err := h.configs.AddSocialLink(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, link)
}

func (h *Handler) patchSocialLink(c echo.Context) error {
	var patch usecase.SocialLinkPatch
	if err := c.Bind(&patch); err != nil {
		return badRequest("invalid request body")
	}
	link, err := h.configs.UpdateSocialLink(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, link)
}

func (h *Handler) deleteSocialLink(c echo.Context) error {
	saved, err := h.configs.RemoveSocialLink(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

func (h *Handler) postSliderImage(c echo.Context) error {
	target, err := usecase.ParseImageTarget(c.Param("target"))
	if err != nil {
		return h.fail(c, err)
	}
	var req sliderImageRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Image) == "" {
		return badRequest("image is required")
	}
	saved, err := h.configs.AddSliderImage(c.Request().Context(), target, req.Image)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

func (h *Handler) putSliderImage(c echo.Context) error {
	target, index, err := sliderParams(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req sliderImageRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Image) == "" {
		return badRequest("image is required")
	}
	saved, err := h.configs.ReplaceSliderImage(c.Request().Context(), target, index, req.Image)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

func (h *Handler) deleteSliderImage(c echo.Context) error {
	target, index, err := sliderParams(c)
	if err != nil {
		return h.fail(c, err)
	}
	saved, err := h.configs.RemoveSliderImage(c.Request().Context(), target, index)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

func sliderParams(c echo.Context) (usecase.ImageTarget, int, error) {
	target, err := usecase.ParseImageTarget(c.Param("target"))
	if err != nil {
		return "", 0, err
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return "", 0, usecase.ErrSliderIndex
	}
	return target, index, nil
}

func (h *Handler) getPoster(c echo.Context) error {
	var buf bytes.Buffer
	if err := infrastructure.WritePoster(&buf, h.state.Config(), h.menuURL(c)); err != nil {
		return h.fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="menu-poster.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
