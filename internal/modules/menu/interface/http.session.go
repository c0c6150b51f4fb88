package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

const contextUserKey = "user"

func (h *Handler) postLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	user, err := h.session.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		h.metrics.Logins.WithLabelValues("failed").Inc()
		return h.fail(c, err)
	}
	h.metrics.Logins.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) postLogout(c echo.Context) error {
	if err := h.session.Logout(c.Request().Context()); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) getSession(c echo.Context) error {
	user, err := h.session.Current()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// requireSession lets a request through only while a user is bound to the instance.
func (h *Handler) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := h.session.Current()
		if err != nil {
			return h.fail(c, err)
		}
		c.Set(contextUserKey, user)
		return next(c)
	}
}
