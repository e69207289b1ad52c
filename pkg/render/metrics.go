package render

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/reflow/pkg/listdiff"
)

// MetricsConfig configures the Prometheus collectors of a Renderer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "reflow").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for reconcile duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "reflow",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the collectors of one Renderer. A nil *metrics records
// nothing.
type metrics struct {
	mountsTotal      prometheus.Counter
	listActionsTotal *prometheus.CounterVec
	reconcileSeconds prometheus.Histogram
	mountedNodes     prometheus.Gauge
}

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		mountsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mounts_total",
			Help:        "Total number of trees mounted",
			ConstLabels: config.ConstLabels,
		}),

		listActionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "list_actions_total",
			Help:        "Total number of list edits applied, by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		reconcileSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "list_reconcile_seconds",
			Help:        "List reconcile duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		mountedNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mounted_nodes",
			Help:        "Number of host nodes currently inserted by the renderer",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// WithMetrics registers Prometheus collectors for the renderer.
//
// Metrics collected:
//   - reflow_mounts_total: Counter of Mount calls
//   - reflow_list_actions_total: Counter of list edits by kind
//   - reflow_list_reconcile_seconds: Histogram of list reconcile duration
//   - reflow_mounted_nodes: Gauge of host nodes inserted and not yet removed
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	r := render.New(tree, render.WithMetrics(render.WithRegistry(reg)))
func WithMetrics(opts ...MetricsOption) Option {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return func(r *Renderer) {
		r.metrics = initMetrics(config)
	}
}

func (m *metrics) mount() {
	if m == nil {
		return
	}
	m.mountsTotal.Inc()
}

func (m *metrics) nodeAdded() {
	if m == nil {
		return
	}
	m.mountedNodes.Inc()
}

func (m *metrics) nodeRemoved() {
	if m == nil {
		return
	}
	m.mountedNodes.Dec()
}

func (m *metrics) reconciled(counts map[listdiff.Kind]int, d time.Duration) {
	if m == nil {
		return
	}
	m.reconcileSeconds.Observe(d.Seconds())
	for kind, n := range counts {
		m.listActionsTotal.WithLabelValues(kind.String()).Add(float64(n))
	}
}
