// Package metrics exposes Prometheus collectors for the auction board.
package metrics

import (
	"strconv"
	"time"

	model "auction-board/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "auction_board").
	Namespace string

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Metrics holds the board's collectors.
type Metrics struct {
	storeMutations *prometheus.CounterVec
	counterValue   prometheus.Gauge
	usersTotal     prometheus.Gauge
	storeVersion   prometheus.Gauge
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	liveClients    prometheus.Gauge
}

// New registers the collectors and returns them.
func New(opts ...Option) *Metrics {
	config := Config{
		Namespace: "auction_board",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		storeMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "store_mutations_total",
			Help:      "Shared store mutations observed, by action",
		}, []string{"action"}),

		counterValue: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "counter_value",
			Help:      "Current value of the shared counter",
		}),

		usersTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "users_total",
			Help:      "Number of records in the shared user registry",
		}),

		storeVersion: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "store_version",
			Help:      "Version of the last observed shared store snapshot",
		}),

		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),

		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		liveClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "live_clients",
			Help:      "Connected WebSocket clients",
		}),
	}
}

// ObserveState seeds the gauges from a snapshot without counting a mutation.
func (m *Metrics) ObserveState(state model.StoreState) {
	m.counterValue.Set(float64(state.Counter.Value))
	m.usersTotal.Set(float64(state.Users.TotalCount))
	m.storeVersion.Set(float64(state.Version))
}

// ObserveEvent is a store listener.
func (m *Metrics) ObserveEvent(ev model.StoreEvent) {
	m.storeMutations.WithLabelValues(string(ev.Action)).Inc()
	m.ObserveState(ev.State)
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ClientConnected increments the live client gauge.
func (m *Metrics) ClientConnected() {
	m.liveClients.Inc()
}

// ClientDisconnected decrements the live client gauge.
func (m *Metrics) ClientDisconnected() {
	m.liveClients.Dec()
}
