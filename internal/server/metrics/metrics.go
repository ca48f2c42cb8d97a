// Package metrics exposes the backing store's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "salesmatch"

// Collector owns its own registry so several servers (and tests) can live in
// one process.
type Collector struct {
	registry *prometheus.Registry

	rpcs          *prometheus.CounterVec
	statusChanges *prometheus.CounterVec
	logins        *prometheus.CounterVec
	resets        prometheus.Counter
}

func NewCollector() *Collector {
	c := &Collector{registry: prometheus.NewRegistry()}

	c.rpcs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "grpc",
			Name:      "requests_total",
			Help:      "Total number of gRPC requests handled.",
		},
		[]string{"method", "code"},
	)

	c.statusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "accounts",
			Name:      "status_changes_total",
			Help:      "Total number of applied status changes by target status.",
		},
		[]string{"status"},
	)

	c.logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "logins_total",
			Help:      "Total number of login attempts by outcome.",
		},
		[]string{"success"},
	)

	c.resets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "accounts",
			Name:      "resets_total",
			Help:      "Total number of dataset resets triggered by logout.",
		},
	)

	c.registry.MustRegister(c.rpcs, c.statusChanges, c.logins, c.resets)
	return c
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) RecordRPC(method, code string) {
	c.rpcs.WithLabelValues(method, code).Inc()
}

func (c *Collector) RecordStatusChange(status string) {
	c.statusChanges.WithLabelValues(status).Inc()
}

func (c *Collector) RecordLogin(success bool) {
	label := "false"
	if success {
		label = "true"
	}
	c.logins.WithLabelValues(label).Inc()
}

func (c *Collector) RecordReset() {
	c.resets.Inc()
}
