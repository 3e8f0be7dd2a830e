// Package metrics provides Prometheus collectors for the HTTP surface and
// the resolution pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "site_engine"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// ResolutionsTotal tracks which stage of the fallback chain resolved an
	// inbound hostname (exact, substring, env_hint) or whether it failed
	// (none). The backend label distinguishes database hits from the static
	// fallback table.
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "resolutions_total",
			Help:      "Total number of hostname resolutions by outcome and backend",
		},
		[]string{"outcome", "backend"},
	)

	BindingCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "binding_cache_total",
			Help:      "Binding lookup cache hits and misses",
		},
		[]string{"result"},
	)

	SitemapsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sitemap",
			Name:      "generated_total",
			Help:      "Total number of sitemaps generated",
		},
	)

	BotRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bots",
			Name:      "requests_total",
			Help:      "Requests from detected crawlers by bot type and outcome",
		},
		[]string{"bot_type", "outcome"},
	)
)
