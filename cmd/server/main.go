package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/fuadmd/FalafelArwa/internal/config"
	menuport "github.com/fuadmd/FalafelArwa/internal/modules/menu/application/port"
	menuusecase "github.com/fuadmd/FalafelArwa/internal/modules/menu/application/usecase"
	menuinfra "github.com/fuadmd/FalafelArwa/internal/modules/menu/infrastructure"
	menutransport "github.com/fuadmd/FalafelArwa/internal/modules/menu/interface"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/application/handler"
	rtport "github.com/fuadmd/FalafelArwa/internal/modules/realtime/application/port"
	rtusecase "github.com/fuadmd/FalafelArwa/internal/modules/realtime/application/usecase"
	"github.com/fuadmd/FalafelArwa/internal/modules/realtime/domain"
	rtinfra "github.com/fuadmd/FalafelArwa/internal/modules/realtime/infrastructure"
	rttransport "github.com/fuadmd/FalafelArwa/internal/modules/realtime/interface"
	"github.com/fuadmd/FalafelArwa/internal/platform/broker"
	"github.com/fuadmd/FalafelArwa/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, _, err := logging.Setup(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: true,
		Directory: cfg.Logging.Directory,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	if err := run(cfg); err != nil {
		slog.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := menuinfra.NewMetrics(registry)

	store, storeCloser, err := menuinfra.OpenStore(ctx, menuinfra.StoreConfig{
		Backend: cfg.Store.Backend,
		Dir:     cfg.Store.Dir,
		Prefix:  cfg.Store.Prefix,
		Redis: menuinfra.RedisConfig{
			Addr:     cfg.Store.RedisAddr,
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		},
		Mongo: menuinfra.MongoConfig{
			URI:        cfg.Store.MongoURI,
			Database:   cfg.Store.MongoDatabase,
			Collection: cfg.Store.MongoCollection,
		},
		Postgres: cfg.Store.PostgresDSN,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer storeCloser.Close()
	slog.Info("document store ready", slog.String("backend", cfg.Store.Backend))

	hub := rtinfra.NewHub()
	broadcastUC := rtusecase.NewBroadcastUseCase(hub)

	var feed rtport.EventPublisher
	if cfg.Kafka.Enabled() {
		producer := broker.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		feed = producer
		slog.Info("kafka change feed enabled", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("topic", cfg.Kafka.Topic))
	}
	changeFeed := rtusecase.NewChangeFeed(cfg.Server.InstanceID, broadcastUC, feed)

	state := menuusecase.NewContainer(menuinfra.NewInstrumentedStore(store, metrics), changeFeed, menuport.SystemClock{}, cfg.Menu.NotificationTTL)
	if err := state.Init(ctx); err != nil {
		return fmt.Errorf("init state: %w", err)
	}
	defer state.Close()

	handlers := rtinfra.NewHandlerRegistry()
	for _, topic := range changeTopics() {
		handlers.Register(handler.NewChangeStreamHandler(topic, cfg.Server.InstanceID, state, broadcastUC))
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())
	e.Use(middleware.RequestID(), middleware.Recover(), middleware.CORS())

	menuHandler := menutransport.NewHandler(menutransport.Options{
		State:           state,
		Metrics:         metrics,
		Encoder:         menuinfra.NewImageEncoder(cfg.Upload.MaxBytes, cfg.Upload.MaxWidth, cfg.Upload.MaxHeight),
		HandoffBaseURL:  cfg.Menu.HandoffBaseURL,
		PublicURL:       cfg.Menu.PublicURL,
		RequirePassword: cfg.Auth.RequirePassword,
		HashPasswords:   cfg.Auth.HashPasswords,
		RateLimit:       rate.Limit(cfg.RateLimit.RPS),
		RateBurst:       cfg.RateLimit.Burst,
	})
	admin := menuHandler.Register(e)
	admin.POST("/announcements", rttransport.NewAnnouncementHTTPHandler(broadcastUC, state))

	e.GET("/ws/storefront", rttransport.NewStorefrontWebsocketHandler(hub, rttransport.StorefrontOptions{
		State:          state,
		SliderInterval: cfg.Menu.SliderInterval,
		PhraseInterval: cfg.Menu.PhraseInterval,
		Viewers:        metrics.LiveViewers,
		CartActions:    metrics.CartActions,
	}))
	e.GET("/ws/notifications", rttransport.NewNotificationsWebsocketHandler(hub, state))
	e.GET("/ws/admin", rttransport.NewAdminWebsocketHandler(hub, state))
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("http server starting", slog.String("port", cfg.Server.Port), slog.String("instance", cfg.Server.InstanceID))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.Kafka.Enabled() {
		// Each instance reads the whole feed, so every replica gets its own consumer group.
		groupID := cfg.Kafka.GroupID + "-" + cfg.Server.InstanceID
		g.Go(func() error {
			broker.StartKafkaConsumers(gctx, handlers, cfg.Kafka.Brokers, groupID, []string{cfg.Kafka.Topic})
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		hub.Shutdown()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// changeTopics lists every change topic the container emits.
func changeTopics() []string {
	topics := make([]string, 0, 10)
	for _, entity := range []string{
		domain.EntityLanguage,
		domain.EntityCategories,
		domain.EntityProducts,
		domain.EntityConfig,
		domain.EntityUsers,
		domain.EntitySession,
		domain.EntityCart,
	} {
		topics = append(topics, domain.UpdatedTopic(entity))
	}
	return append(topics,
		domain.CustomTopic(domain.EntityNotification, domain.ActionShown),
		domain.CustomTopic(domain.EntityNotification, domain.ActionCleared),
	)
}
