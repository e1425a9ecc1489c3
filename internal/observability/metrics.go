package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultMetricsNamespace = "nhl"
	defaultMetricsSubsystem = "commentary"
)

// Metrics records pipeline and HTTP metrics on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	fetches          *prometheus.CounterVec
	summaries        *prometheus.CounterVec
	assemblies       *prometheus.CounterVec
	assemblyDuration prometheus.Histogram
	assembledEvents  prometheus.Histogram
	backfillGames    *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

type MetricsOption func(*metricsOptions)

type metricsOptions struct {
	namespace string
	subsystem string
	buckets   []float64
	runtime   bool
}

func WithMetricsNamespace(namespace string) MetricsOption {
	return func(o *metricsOptions) {
		if namespace != "" {
			o.namespace = namespace
		}
	}
}

func WithHistogramBuckets(buckets []float64) MetricsOption {
	return func(o *metricsOptions) {
		if len(buckets) > 0 {
			o.buckets = buckets
		}
	}
}

// WithRuntimeCollectors adds the go and process collectors.
func WithRuntimeCollectors() MetricsOption {
	return func(o *metricsOptions) {
		o.runtime = true
	}
}

func NewMetrics(opts ...MetricsOption) *Metrics {
	o := metricsOptions{
		namespace: defaultMetricsNamespace,
		subsystem: defaultMetricsSubsystem,
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(&o)
	}

	registry := prometheus.NewRegistry()
	if o.runtime {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	auto := promauto.With(registry)

	return &Metrics{
		registry: registry,
		fetches: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "feed_fetches_total",
			Help:      "Raw NHL payload loads by resource and source (cache, upstream, error).",
		}, []string{"resource", "source"}),
		summaries: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "summaries_total",
			Help:      "Summaries served by kind and source (cache, built, error).",
		}, []string{"kind", "source"}),
		assemblies: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "assemblies_total",
			Help:      "Game assemblies by outcome.",
		}, []string{"outcome"}),
		assemblyDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "assembly_duration_seconds",
			Help:      "Time spent assembling one game's canonical events.",
			Buckets:   o.buckets,
		}),
		assembledEvents: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "assembled_events",
			Help:      "Canonical events produced per assembled game.",
			Buckets:   prometheus.LinearBuckets(50, 50, 10),
		}),
		backfillGames: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "backfill_games_total",
			Help:      "Backfilled games by artifact and status.",
		}, []string{"artifact", "status"}),
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		httpDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   o.buckets,
		}, []string{"route", "method"}),
	}
}

func (m *Metrics) ObserveFetch(resource, source string) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(resource, source).Inc()
}

func (m *Metrics) ObserveSummary(kind, source string) {
	if m == nil {
		return
	}
	m.summaries.WithLabelValues(kind, source).Inc()
}

func (m *Metrics) ObserveAssembly(duration time.Duration, events int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.assemblies.WithLabelValues("error").Inc()
		return
	}
	m.assemblies.WithLabelValues("ok").Inc()
	m.assemblyDuration.Observe(duration.Seconds())
	m.assembledEvents.Observe(float64(events))
}

func (m *Metrics) ObserveBackfill(artifact, status string) {
	if m == nil {
		return
	}
	m.backfillGames.WithLabelValues(artifact, status).Inc()
}

func (m *Metrics) ObserveHTTPRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}
