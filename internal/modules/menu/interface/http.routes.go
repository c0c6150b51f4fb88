package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/application/usecase"
	"github.com/fuadmd/FalafelArwa/internal/modules/menu/infrastructure"
	"github.com/fuadmd/FalafelArwa/internal/shared/httputil"
)

// Options wires the HTTP surface to one running container.
type Options struct {
	State           *usecase.Container
	Metrics         *infrastructure.Metrics
	Encoder         *infrastructure.ImageEncoder
	HandoffBaseURL  string
	PublicURL       string
	RequirePassword bool
	HashPasswords   bool
	RateLimit       rate.Limit
	RateBurst       int
}

// Handler serves the storefront, cart, session and admin routes.
type Handler struct {
	state      *usecase.Container
	storefront *usecase.Storefront
	cart       *usecase.CartManager
	catalog    *usecase.CatalogEditor
	configs    *usecase.ConfigEditor
	users      *usecase.UserEditor
	session    *usecase.SessionGate
	handoff    *usecase.OrderHandoff
	metrics    *infrastructure.Metrics
	encoder    *infrastructure.ImageEncoder
	limiter    *IPRateLimiter
	publicURL  string
	errors     *httputil.ErrorMapper
}

func NewHandler(opts Options) *Handler {
	if opts.Metrics == nil {
		opts.Metrics = infrastructure.NewMetrics(nil)
	}
	if opts.Encoder == nil {
		opts.Encoder = infrastructure.NewImageEncoder(0, 0, 0)
	}
	return &Handler{
		state:      opts.State,
		storefront: usecase.NewStorefront(opts.State),
		cart:       usecase.NewCartManager(opts.State),
		catalog:    usecase.NewCatalogEditor(opts.State),
		configs:    usecase.NewConfigEditor(opts.State),
		users:      usecase.NewUserEditor(opts.State, opts.HashPasswords),
		session:    usecase.NewSessionGate(opts.State, opts.RequirePassword),
		handoff:    usecase.NewOrderHandoff(opts.State, opts.HandoffBaseURL),
		metrics:    opts.Metrics,
		encoder:    opts.Encoder,
		limiter:    NewIPRateLimiter(opts.RateLimit, opts.RateBurst, 10*time.Minute),
		publicURL:  opts.PublicURL,
		errors:     newErrorMapper(),
	}
}

// Register mounts every route on e and returns the session-protected admin group
// so callers can attach more dashboard endpoints.
func (h *Handler) Register(e *echo.Echo) *echo.Group {
	e.GET("/", h.getMenu)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")
	api.GET("/menu", h.getMenu)
	api.GET("/menu/categories/:id/products", h.getCategoryProducts)
	api.PUT("/language", h.putLanguage)
	api.GET("/qr.png", h.getQRCode)
	api.GET("/notification", h.getNotification)

	api.GET("/cart", h.getCart)
	api.POST("/cart/items", h.postCartItem)
	api.PATCH("/cart/items/:id", h.patchCartItem)
	api.DELETE("/cart/items/:id", h.deleteCartItem)
	api.DELETE("/cart", h.deleteCart)
	api.POST("/cart/checkout", h.postCheckout, h.limiter.Middleware(h.metrics.RateLimited))

	api.POST("/session/login", h.postLogin)
	api.POST("/session/logout", h.postLogout)
	api.GET("/session", h.getSession)

	admin := api.Group("/admin", h.requireSession)
	admin.POST("/categories", h.upsertCategory)
	admin.PUT("/categories/:id", h.upsertCategory)
	admin.DELETE("/categories/:id", h.deleteCategory)
	admin.POST("/products", h.upsertProduct)
	admin.PUT("/products/:id", h.upsertProduct)
	admin.DELETE("/products/:id", h.deleteProduct)
	admin.GET("/products/export.xlsx", h.exportCatalog)
	admin.GET("/users", h.listUsers)
	admin.POST("/users", h.upsertUser)
	admin.PUT("/users/:id", h.upsertUser)
	admin.DELETE("/users/:id", h.deleteUser)
	admin.GET("/config", h.getConfig)
	admin.PUT("/config", h.putConfig)
	admin.PUT("/config/status", h.putStatus)
	admin.PATCH("/config/design", h.patchDesign)
	admin.PATCH("/config/design/:field", h.patchDesignStyle)
	admin.POST("/config/social-links", h.postSocialLink)
	admin.PATCH("/config/social-links/:id", h.patchSocialLink)
	admin.DELETE("/config/social-links/:id", h.deleteSocialLink)
	admin.POST("/config/sliders/:target", h.postSliderImage)
	admin.PUT("/config/sliders/:target/:index", h.putSliderImage)
	admin.DELETE("/config/sliders/:target/:index", h.deleteSliderImage)
	admin.POST("/uploads/:target", h.postUpload, h.limiter.Middleware(h.metrics.RateLimited))
	admin.GET("/poster.pdf", h.getPoster)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/")
	})
	return admin
}

func newErrorMapper() *httputil.ErrorMapper {
	return httputil.NewErrorMapper().
		WithMapping(usecase.ErrCategoryNotFound, http.StatusNotFound, "category not found").
		WithMapping(usecase.ErrProductNotFound, http.StatusNotFound, "product not found").
		WithMapping(usecase.ErrUserNotFound, http.StatusNotFound, "user not found").
		WithMapping(usecase.ErrSocialLinkNotFound, http.StatusNotFound, "social link not found").
		WithMapping(usecase.ErrInvalidCredentials, http.StatusUnauthorized, "invalid username or password").
		WithMapping(usecase.ErrUnauthenticated, http.StatusUnauthorized, "login required").
		WithMapping(usecase.ErrSelfDeletion, http.StatusConflict, "cannot delete the signed-in user").
		WithMapping(usecase.ErrUsernameEmpty, http.StatusBadRequest, "username is required").
		WithMapping(usecase.ErrAddressRequired, http.StatusBadRequest, "delivery address is required").
		WithMapping(usecase.ErrEmptyCart, http.StatusConflict, "cart is empty").
		WithMapping(usecase.ErrInvalidStatus, http.StatusBadRequest, "status must be open, closed or auto").
		WithMapping(usecase.ErrUnknownDesignKey, http.StatusBadRequest, "unknown design key").
		WithMapping(usecase.ErrSliderIndex, http.StatusBadRequest, "slider index out of range").
		WithMapping(usecase.ErrUnknownImageTarget, http.StatusBadRequest, "unknown image target").
		WithMapping(infrastructure.ErrImageTooLarge, http.StatusRequestEntityTooLarge, "image too large").
		WithMapping(infrastructure.ErrUnsupportedType, http.StatusUnsupportedMediaType, "unsupported image type").
		WithDefault(http.StatusInternalServerError, "internal server error")
}

// fail maps err to an HTTP error, logging server-side failures.
func (h *Handler) fail(c echo.Context, err error) error {
	info := h.errors.Map(err)
	if info.Status >= http.StatusInternalServerError {
		slog.Error("request failed", slog.String("path", c.Path()), slog.String("reqID", c.Response().Header().Get(echo.HeaderXRequestID)), slog.Any("error", err))
	} else {
		slog.Debug("request rejected", slog.String("path", c.Path()), slog.Int("status", info.Status), slog.Any("error", err))
	}
	return echo.NewHTTPError(info.Status, info.Message)
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}
