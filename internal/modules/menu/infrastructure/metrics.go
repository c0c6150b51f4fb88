package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/application/port"
)

const metricsNamespace = "menu"

// Metrics groups the service counters exposed on /metrics.
type Metrics struct {
	StoreOps      *prometheus.CounterVec
	StoreDuration *prometheus.HistogramVec
	CartActions   *prometheus.CounterVec
	Logins        *prometheus.CounterVec
	Handoffs      prometheus.Counter
	Uploads       *prometheus.CounterVec
	RateLimited   prometheus.Counter
	LiveViewers   prometheus.Gauge
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StoreOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Document store operations by kind, key and result.",
		}, []string{"op", "key", "result"}),
		StoreDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Document store latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		CartActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "cart",
			Name:      "actions_total",
			Help:      "Cart mutations by action.",
		}, []string{"action"}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "session",
			Name:      "logins_total",
			Help:      "Sign in attempts by result.",
		}, []string{"result"}),
		Handoffs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "order",
			Name:      "handoffs_total",
			Help:      "Orders handed off to the messaging app.",
		}),
		Uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "upload",
			Name:      "images_total",
			Help:      "Image uploads by target and result.",
		}, []string{"target", "result"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-IP limiter.",
		}),
		LiveViewers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "realtime",
			Name:      "storefront_viewers",
			Help:      "Connected storefront websocket views.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.StoreOps, m.StoreDuration, m.CartActions, m.Logins, m.Handoffs, m.Uploads, m.RateLimited, m.LiveViewers)
	}
	return m
}

// InstrumentedStore records counts and latency around another store.
type InstrumentedStore struct {
	next    port.DocumentStore
	metrics *Metrics
}

func NewInstrumentedStore(next port.DocumentStore, metrics *Metrics) *InstrumentedStore {
	return &InstrumentedStore{next: next, metrics: metrics}
}

func (s *InstrumentedStore) observe(op, key string, started time.Time, err error) {
	result := "ok"
	switch {
	case errors.Is(err, port.ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	s.metrics.StoreOps.WithLabelValues(op, key, result).Inc()
	s.metrics.StoreDuration.WithLabelValues(op).Observe(time.Since(started).Seconds())
}

func (s *InstrumentedStore) Load(ctx context.Context, key string) ([]byte, error) {
	started := time.Now()
	value, err := s.next.Load(ctx, key)
	s.observe("load", key, started, err)
	return value, err
}

func (s *InstrumentedStore) Save(ctx context.Context, key string, value []byte) error {
	started := time.Now()
	err := s.next.Save(ctx, key, value)
	s.observe("save", key, started, err)
	return err
}

func (s *InstrumentedStore) Remove(ctx context.Context, key string) error {
	started := time.Now()
	err := s.next.Remove(ctx, key)
	s.observe("remove", key, started, err)
	return err
}

var _ port.DocumentStore = (*InstrumentedStore)(nil)
