package transport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/application/usecase"
	"github.com/fuadmd/FalafelArwa/internal/modules/menu/infrastructure"
)

type uploadResponse struct {
	Target usecase.ImageTarget `json:"target"`
	Image  string              `json:"image"`
}

// postUpload encodes the multipart "file" field as a data URI. Configuration targets are
// applied immediately; product and category targets hand the URI back for the draft record.
// An unreadable file is logged and leaves state untouched.
func (h *Handler) postUpload(c echo.Context) error {
	target, err := usecase.ParseImageTarget(c.Param("target"))
	if err != nil {
		return h.fail(c, err)
	}

	header, err := c.FormFile("file")
	if err != nil {
		return badRequest("file is required")
	}
	src, err := header.Open()
	if err != nil {
		slog.Warn("upload open failed", slog.String("target", string(target)), slog.Any("error", err))
		h.metrics.Uploads.WithLabelValues(string(target), "unreadable").Inc()
		return c.NoContent(http.StatusNoContent)
	}
	defer src.Close()

	image, err := h.encoder.Encode(src)
	switch {
	case errors.Is(err, infrastructure.ErrImageTooLarge), errors.Is(err, infrastructure.ErrUnsupportedType):
		h.metrics.Uploads.WithLabelValues(string(target), "rejected").Inc()
		return h.fail(c, err)
	case err != nil:
		slog.Warn("upload read failed", slog.String("target", string(target)), slog.String("file", header.Filename), slog.Any("error", err))
		h.metrics.Uploads.WithLabelValues(string(target), "unreadable").Inc()
		return c.NoContent(http.StatusNoContent)
	}

	if !target.StoresInConfig() {
		h.metrics.Uploads.WithLabelValues(string(target), "ok").Inc()
		return c.JSON(http.StatusOK, uploadResponse{Target: target, Image: image})
	}
	cfg, err := h.configs.ApplyImage(c.Request().Context(), target, image)
	if err != nil {
		h.metrics.Uploads.WithLabelValues(string(target), "error").Inc()
		return h.fail(c, err)
	}
	h.metrics.Uploads.WithLabelValues(string(target), "ok").Inc()
	return c.JSON(http.StatusOK, cfg)
}
