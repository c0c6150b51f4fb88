package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/application/port"
	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
)

const (
	EntityLanguage     = "language"
	EntityCategories   = "categories"
	EntityProducts     = "products"
	EntityConfig       = "config"
	EntityUsers        = "users"
	EntitySession      = "session"
	EntityCart         = "cart"
	EntityNotification = "notification"

	ActionUpdated = "updated"
	ActionShown   = "shown"
	ActionCleared = "cleared"
)

// Container is the single in-memory source of truth for the running instance.
// Every mutation goes through the mutex and is saved before the lock is released,
// so storage never lags behind what a later caller can observe.
type Container struct {
	mu        sync.Mutex
	store     port.DocumentStore
	publisher port.ChangePublisher
	clock     port.Clock
	notifier  *Notifier

	language    domain.Language
	categories  []domain.Category
	products    []domain.Product
	config      domain.RestaurantConfig
	users       []domain.User
	currentUser *domain.User
	cart        []domain.CartItem
}

// NewContainer wires the container to its store. Call Init before serving requests.
func NewContainer(store port.DocumentStore, publisher port.ChangePublisher, clock port.Clock, notificationTTL time.Duration) *Container {
	if publisher == nil {
		publisher = port.NopPublisher{}
	}
	if clock == nil {
		clock = port.SystemClock{}
	}
	c := &Container{
		store:     store,
		publisher: publisher,
		clock:     clock,
		language:  domain.DefaultLanguage,
		cart:      make([]domain.CartItem, 0),
	}
	c.notifier = NewNotifier(notificationTTL, func(n Notification, shown bool) {
		action := ActionCleared
		if shown {
			action = ActionShown
		}
		c.publisher.Publish(context.Background(), port.ChangeEvent{
			Entity:    EntityNotification,
			Action:    action,
			Data:      n,
			Timestamp: c.clock.Now().UTC(),
		})
	})
	return c
}

// Init loads every collection. Absent documents are seeded from the bundled dataset and saved;
// malformed ones fall back to the seed in memory and are left untouched in storage.
func (c *Container) Init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	lang, err := loadDocument(ctx, c.store, port.KeyLanguage, func() domain.Language { return domain.DefaultLanguage })
	if err != nil {
		return err
	}
	c.language = domain.NormalizeLanguage(string(lang))

	if c.categories, err = loadDocument(ctx, c.store, port.KeyCategories, domain.DefaultCategories); err != nil {
		return err
	}
	if c.products, err = loadDocument(ctx, c.store, port.KeyProducts, domain.DefaultProducts); err != nil {
		return err
	}
	if c.config, err = loadDocument(ctx, c.store, port.KeyConfig, domain.DefaultConfig); err != nil {
		return err
	}
	if c.users, err = loadDocument(ctx, c.store, port.KeyUsers, domain.DefaultUsers); err != nil {
		return err
	}

	c.currentUser = nil
	raw, err := c.store.Load(ctx, port.KeyCurrentUser)
	switch {
	case errors.Is(err, port.ErrNotFound):
	case err != nil:
		return fmt.Errorf("load %s: %w", port.KeyCurrentUser, err)
	default:
		var user domain.User
		if err := json.Unmarshal(raw, &user); err != nil {
			slog.Warn("stored document malformed, ignoring", slog.String("key", port.KeyCurrentUser), slog.Any("error", err))
		} else {
			c.currentUser = &user
		}
	}

	slog.Info("state container initialised",
		slog.String("language", string(c.language)),
		slog.Int("categories", len(c.categories)),
		slog.Int("products", len(c.products)),
		slog.Int("users", len(c.users)),
		slog.Bool("sessionBound", c.currentUser != nil),
	)
	return nil
}

// Reload re-reads one shared collection after another instance changed it.
// Instance-local entities (cart, session, notification) are ignored.
func (c *Container) Reload(ctx context.Context, entity string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	switch entity {
	case EntityLanguage:
		var lang domain.Language
		if lang, err = reloadDocument[domain.Language](ctx, c.store, port.KeyLanguage); err == nil {
			c.language = domain.NormalizeLanguage(string(lang))
		}
	case EntityCategories:
		var categories []domain.Category
		if categories, err = reloadDocument[[]domain.Category](ctx, c.store, port.KeyCategories); err == nil {
			c.categories = categories
		}
	case EntityProducts:
		var products []domain.Product
		if products, err = reloadDocument[[]domain.Product](ctx, c.store, port.KeyProducts); err == nil {
			c.products = products
		}
	case EntityConfig:
		var cfg domain.RestaurantConfig
		if cfg, err = reloadDocument[domain.RestaurantConfig](ctx, c.store, port.KeyConfig); err == nil {
			c.config = cfg
		}
	case EntityUsers:
		var users []domain.User
		if users, err = reloadDocument[[]domain.User](ctx, c.store, port.KeyUsers); err == nil {
			c.users = users
		}
	default:
		return nil
	}
	if err != nil {
		slog.Warn("reload collection failed", slog.String("entity", entity), slog.Any("error", err))
	}
	return err
}

func reloadDocument[T any](ctx context.Context, store port.DocumentStore, key string) (T, error) {
	var value T
	raw, err := store.Load(ctx, key)
	if err != nil {
		return value, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, fmt.Errorf("decode %s: %w", key, err)
	}
	return value, nil
}

func loadDocument[T any](ctx context.Context, store port.DocumentStore, key string, seed func() T) (T, error) {
	raw, err := store.Load(ctx, key)
	if errors.Is(err, port.ErrNotFound) {
		value := seed()
		payload, err := json.Marshal(value)
		if err != nil {
			return value, fmt.Errorf("encode seed %s: %w", key, err)
		}
		if err := store.Save(ctx, key, payload); err != nil {
			return value, fmt.Errorf("save seed %s: %w", key, err)
		}
		slog.Info("seeded collection", slog.String("key", key))
		return value, nil
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("load %s: %w", key, err)
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		slog.Warn("stored document malformed, using defaults", slog.String("key", key), slog.Any("error", err))
		return seed(), nil
	}
	return value, nil
}

// persistLocked saves the collection behind key and announces it. Caller holds c.mu.
// The in-memory update is kept even when the save fails.
func (c *Container) persistLocked(ctx context.Context, key string) error {
	var (
		value  any
		entity string
	)
	switch key {
	case port.KeyLanguage:
		value, entity = c.language, EntityLanguage
	case port.KeyCategories:
		value, entity = c.categories, EntityCategories
	case port.KeyProducts:
		value, entity = c.products, EntityProducts
	case port.KeyConfig:
		value, entity = c.config, EntityConfig
	case port.KeyUsers:
		value, entity = publicUsers(c.users), EntityUsers
	default:
		return fmt.Errorf("unknown collection %q", key)
	}

	stored := value
	if key == port.KeyUsers {
		stored = c.users
	}
	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.store.Save(ctx, key, payload); err != nil {
		slog.Error("persist collection failed", slog.String("key", key), slog.Any("error", err))
		return fmt.Errorf("save %s: %w", key, err)
	}
	c.publishLocked(ctx, entity, "", value)
	return nil
}

// persistSessionLocked saves the bound user, or removes the key once the slot is cleared.
func (c *Container) persistSessionLocked(ctx context.Context) error {
	if c.currentUser == nil {
		if err := c.store.Remove(ctx, port.KeyCurrentUser); err != nil {
			slog.Error("clear session failed", slog.Any("error", err))
			return fmt.Errorf("remove %s: %w", port.KeyCurrentUser, err)
		}
		c.publishLocked(ctx, EntitySession, "", nil)
		return nil
	}
	payload, err := json.Marshal(c.currentUser)
	if err != nil {
		return fmt.Errorf("encode %s: %w", port.KeyCurrentUser, err)
	}
	if err := c.store.Save(ctx, port.KeyCurrentUser, payload); err != nil {
		slog.Error("persist session failed", slog.Any("error", err))
		return fmt.Errorf("save %s: %w", port.KeyCurrentUser, err)
	}
	c.publishLocked(ctx, EntitySession, c.currentUser.ID, c.currentUser.Public())
	return nil
}

func (c *Container) publishLocked(ctx context.Context, entity, resourceID string, data any) {
	c.publisher.Publish(ctx, port.ChangeEvent{
		Entity:     entity,
		Action:     ActionUpdated,
		ResourceID: resourceID,
		Data:       data,
		Timestamp:  c.clock.Now().UTC(),
	})
}

// SetLanguage stores the display language; unsupported values fall back to Arabic.
func (c *Container) SetLanguage(ctx context.Context, lang domain.Language) (domain.Language, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.language = domain.NormalizeLanguage(string(lang))
	return c.language, c.persistLocked(ctx, port.KeyLanguage)
}

func (c *Container) Language() domain.Language {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.language
}

// Direction is rtl for Arabic and ltr otherwise.
func (c *Container) Direction() string {
	return c.Language().Direction()
}

func (c *Container) Categories() []domain.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Category{}, c.categories...)
}

func (c *Container) Products() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Product{}, c.products...)
}

func (c *Container) Config() domain.RestaurantConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.config.Clone()
}

// Users returns the accounts without their passwords.
func (c *Container) Users() []domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return publicUsers(c.users)
}

// CurrentUser reports the bound session user, if any.
func (c *Container) CurrentUser() (domain.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentUser == nil {
		return domain.User{}, false
	}
	return c.currentUser.Public(), true
}

func (c *Container) Cart() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.CartItem{}, c.cart...)
}

// Notification returns the pending transient message, if one is still showing.
func (c *Container) Notification() (Notification, bool) {
	return c.notifier.Current()
}

// Now is the container clock, exposed for status evaluation.
func (c *Container) Now() time.Time {
	return c.clock.Now()
}

// Close stops the pending notification timer.
func (c *Container) Close() {
	c.notifier.Stop()
}

func (c *Container) notifyLocked(kind domain.NotificationKind) {
	c.notifier.Show(kind, domain.NotificationText(kind, c.language))
}

func publicUsers(users []domain.User) []domain.User {
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out
}
