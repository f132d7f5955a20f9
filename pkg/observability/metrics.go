package observability

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsConfig configures the metrics provider
type MetricsConfig struct {
	// Service identification
	ServiceName    string
	ServiceVersion string
	Environment    string

	// Prometheus configuration
	MetricsPath string // HTTP path for metrics endpoint (default: /metrics)
	MetricsPort int    // Port for metrics server (default: 9090)

	// Metric options
	Namespace        string    // Prometheus namespace (default: mcp)
	Subsystem        string    // Prometheus subsystem (default: schema)
	HistogramBuckets []float64 // Custom histogram buckets for latency

	// Labels to add to all metrics
	ConstLabels prometheus.Labels
}

// MetricsProvider records codec activity: message decoding and encoding per
// method and direction, batch sizes, result shape resolution and failures by
// taxonomy kind.
type MetricsProvider interface {
	RecordDecode(ctx context.Context, method, direction, status string, duration time.Duration)
	RecordEncode(ctx context.Context, method, direction, status string, duration time.Duration)
	RecordBatch(ctx context.Context, size int, status string, duration time.Duration)
	RecordResultShape(ctx context.Context, shape string)
	RecordFailure(ctx context.Context, kind, method string)

	// Custom metrics
	RecordGauge(name string, value float64, labels prometheus.Labels)
	RecordCounter(name string, labels prometheus.Labels)
	RecordHistogram(name string, value float64, labels prometheus.Labels)

	// Management
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// PrometheusMetricsProvider implements MetricsProvider using Prometheus
type PrometheusMetricsProvider struct {
	config MetricsConfig
	server *http.Server

	decodeDuration *prometheus.HistogramVec
	decodeTotal    *prometheus.CounterVec
	encodeDuration *prometheus.HistogramVec
	encodeTotal    *prometheus.CounterVec

	batchDuration *prometheus.HistogramVec
	batchTotal    *prometheus.CounterVec
	batchSize     *prometheus.HistogramVec

	resultShapeTotal *prometheus.CounterVec
	failureTotal     *prometheus.CounterVec

	// Custom metrics registry
	customMetrics map[string]prometheus.Collector
	mu            sync.RWMutex
}

// NewMetricsProvider creates a new Prometheus metrics provider
func NewMetricsProvider(config MetricsConfig) (MetricsProvider, error) {
	// Set defaults
	if config.Namespace == "" {
		config.Namespace = "mcp"
	}
	if config.Subsystem == "" {
		config.Subsystem = "schema"
	}
	if config.MetricsPath == "" {
		config.MetricsPath = "/metrics"
	}
	if config.MetricsPort == 0 {
		config.MetricsPort = 9090
	}
	if config.HistogramBuckets == nil {
		// Default buckets for microseconds; codec work is sub-millisecond
		config.HistogramBuckets = []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 25000}
	}

	// Add service labels to const labels
	if config.ConstLabels == nil {
		config.ConstLabels = prometheus.Labels{}
	}
	config.ConstLabels["service"] = config.ServiceName
	config.ConstLabels["version"] = config.ServiceVersion
	config.ConstLabels["environment"] = config.Environment

	provider := &PrometheusMetricsProvider{
		config:        config,
		customMetrics: make(map[string]prometheus.Collector),
	}

	provider.initializeMetrics()

	if err := provider.registerMetrics(); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return provider, nil
}

// initializeMetrics creates all metric collectors
func (p *PrometheusMetricsProvider) initializeMetrics() {
	p.decodeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   p.config.Namespace,
			Subsystem:   p.config.Subsystem,
			Name:        "decode_duration_microseconds",
			Help:        "Duration of message decoding in microseconds",
			Buckets:     p.config.HistogramBuckets,
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"method", "direction", "status"},
	)

	p.decodeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   p.config.Namespace,
			Subsystem:   p.config.Subsystem,
			Name:        "decode_total",
			Help:        "Total number of decoded messages",
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"method", "direction", "status"},
	)

	p.encodeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   p.config.Namespace,
			Subsystem:   p.config.Subsystem,
			Name:        "encode_duration_microseconds",
			Help:        "Duration of message encoding in microseconds",
			Buckets:     p.config.HistogramBuckets,
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"method", "direction", "status"},
	)

	p.encodeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   p.config.Namespace,
			Subsystem:   p.config.Subsystem,
			Name:        "encode_total",
			Help:        "Total number of encoded messages",
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"method", "direction", "status"},
	)

	p.batchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   p.config.Namespace,
			Subsystem:   p.config.Subsystem,
			Name:        "batch_duration_microseconds",
			Help:        "Duration of batch decoding in microseconds",
			Buckets:     p.config.HistogramBuckets,
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"status"},
	)

	p.batchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   p.config.Namespace,
			Subsystem:   p.config.Subsystem,
			Name:        "batch_total",
			Help:        "Total number of decoded batches",
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"status"},
	)

	p.batchSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   p.config.Namespace,
			Subsystem:   p.config.Subsystem,
			Name:        "batch_size",
			Help:        "Number of envelopes per batch",
			Buckets:     []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"status"},
	)

	p.resultShapeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   p.config.Namespace,
			Subsystem:   p.config.Subsystem,
			Name:        "result_shape_total",
			Help:        "Total number of resolved server result shapes",
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"shape"},
	)

	p.failureTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   p.config.Namespace,
			Subsystem:   p.config.Subsystem,
			Name:        "failure_total",
			Help:        "Total number of schema failures by taxonomy kind",
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"kind", "method"},
	)
}

// registerMetrics registers all metrics with Prometheus
func (p *PrometheusMetricsProvider) registerMetrics() error {
	collectors := []prometheus.Collector{
		p.decodeDuration,
		p.decodeTotal,
		p.encodeDuration,
		p.encodeTotal,
		p.batchDuration,
		p.batchTotal,
		p.batchSize,
		p.resultShapeTotal,
		p.failureTotal,
	}

	for _, collector := range collectors {
		if err := prometheus.Register(collector); err != nil {
			// Check if already registered
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}

	return nil
}

// RecordDecode records a decoded message
func (p *PrometheusMetricsProvider) RecordDecode(ctx context.Context, method, direction, status string, duration time.Duration) {
	us := float64(duration.Microseconds())
	p.decodeDuration.WithLabelValues(method, direction, status).Observe(us)
	p.decodeTotal.WithLabelValues(method, direction, status).Inc()
}

// RecordEncode records an encoded message
func (p *PrometheusMetricsProvider) RecordEncode(ctx context.Context, method, direction, status string, duration time.Duration) {
	us := float64(duration.Microseconds())
	p.encodeDuration.WithLabelValues(method, direction, status).Observe(us)
	p.encodeTotal.WithLabelValues(method, direction, status).Inc()
}

// RecordBatch records a decoded batch
func (p *PrometheusMetricsProvider) RecordBatch(ctx context.Context, size int, status string, duration time.Duration) {
	us := float64(duration.Microseconds())
	p.batchDuration.WithLabelValues(status).Observe(us)
	p.batchTotal.WithLabelValues(status).Inc()
	p.batchSize.WithLabelValues(status).Observe(float64(size))
}

// RecordResultShape records the shape a server result resolved to
func (p *PrometheusMetricsProvider) RecordResultShape(ctx context.Context, shape string) {
	p.resultShapeTotal.WithLabelValues(shape).Inc()
}

// RecordFailure records a schema failure by taxonomy kind
func (p *PrometheusMetricsProvider) RecordFailure(ctx context.Context, kind, method string) {
	p.failureTotal.WithLabelValues(kind, method).Inc()
}

// RecordGauge records a custom gauge metric
func (p *PrometheusMetricsProvider) RecordGauge(name string, value float64, labels prometheus.Labels) {
	p.mu.Lock()
	defer p.mu.Unlock()

	gauge, exists := p.customMetrics[name]
	if !exists {
		gauge = prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   p.config.Namespace,
				Subsystem:   p.config.Subsystem,
				Name:        name,
				Help:        fmt.Sprintf("Custom gauge metric: %s", name),
				ConstLabels: p.config.ConstLabels,
			},
			labelKeys(labels),
		)
		if err := prometheus.Register(gauge); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				gauge = are.ExistingCollector
			} else {
				return
			}
		}
		p.customMetrics[name] = gauge
	}

	if gv, ok := gauge.(*prometheus.GaugeVec); ok {
		gv.With(labels).Set(value)
	}
}

// RecordCounter records a custom counter metric
func (p *PrometheusMetricsProvider) RecordCounter(name string, labels prometheus.Labels) {
	p.mu.Lock()
	defer p.mu.Unlock()

	counter, exists := p.customMetrics[name]
	if !exists {
		counter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   p.config.Namespace,
				Subsystem:   p.config.Subsystem,
				Name:        name,
				Help:        fmt.Sprintf("Custom counter metric: %s", name),
				ConstLabels: p.config.ConstLabels,
			},
			labelKeys(labels),
		)
		if err := prometheus.Register(counter); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				counter = are.ExistingCollector
			} else {
				return
			}
		}
		p.customMetrics[name] = counter
	}

	if cv, ok := counter.(*prometheus.CounterVec); ok {
		cv.With(labels).Inc()
	}
}

// RecordHistogram records a custom histogram metric
func (p *PrometheusMetricsProvider) RecordHistogram(name string, value float64, labels prometheus.Labels) {
	p.mu.Lock()
	defer p.mu.Unlock()

	histogram, exists := p.customMetrics[name]
	if !exists {
		histogram = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   p.config.Namespace,
				Subsystem:   p.config.Subsystem,
				Name:        name,
				Help:        fmt.Sprintf("Custom histogram metric: %s", name),
				Buckets:     p.config.HistogramBuckets,
				ConstLabels: p.config.ConstLabels,
			},
			labelKeys(labels),
		)
		if err := prometheus.Register(histogram); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				histogram = are.ExistingCollector
			} else {
				return
			}
		}
		p.customMetrics[name] = histogram
	}

	if hv, ok := histogram.(*prometheus.HistogramVec); ok {
		hv.With(labels).Observe(value)
	}
}

// Start starts the metrics HTTP server
func (p *PrometheusMetricsProvider) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle(p.config.MetricsPath, promhttp.Handler())

	p.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", p.config.MetricsPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("metrics server error: %v\n", err)
		}
	}()

	return nil
}

// Shutdown stops the metrics HTTP server
func (p *PrometheusMetricsProvider) Shutdown(ctx context.Context) error {
	if p.server != nil {
		return p.server.Shutdown(ctx)
	}
	return nil
}

func labelKeys(labels prometheus.Labels) []string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	return keys
}
