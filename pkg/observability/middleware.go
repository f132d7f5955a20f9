package observability

import (
	"context"
	"fmt"
)

// ObservabilityConfig configures the combined observability provider
type ObservabilityConfig struct {
	// Tracing configuration
	EnableTracing bool
	TracingConfig TracingConfig

	// Metrics configuration
	EnableMetrics bool
	MetricsConfig MetricsConfig

	// Feature flags
	CapturePayloads bool // Capture message payloads in spans
}

// Provider bundles the tracing and metrics providers behind one lifecycle.
// Either provider may be nil when its feature flag is off; the accessors are
// nil-safe for callers that record unconditionally.
type Provider struct {
	config  ObservabilityConfig
	tracer  *TracingProvider
	metrics MetricsProvider
}

// NewProvider creates the providers the configuration enables.
func NewProvider(config ObservabilityConfig) (*Provider, error) {
	p := &Provider{config: config}

	if config.EnableTracing {
		tracer, err := NewTracingProvider(config.TracingConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create tracing provider: %w", err)
		}
		p.tracer = tracer
	}

	if config.EnableMetrics {
		metrics, err := NewMetricsProvider(config.MetricsConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics provider: %w", err)
		}
		p.metrics = metrics
	}

	return p, nil
}

// Tracer returns the tracing provider, or nil when tracing is disabled.
func (p *Provider) Tracer() *TracingProvider { return p.tracer }

// Metrics returns the metrics provider, or nil when metrics are disabled.
func (p *Provider) Metrics() MetricsProvider { return p.metrics }

// CapturePayloads reports whether spans should carry message payloads.
func (p *Provider) CapturePayloads() bool { return p.config.CapturePayloads }

// Start starts the providers that need a lifecycle.
func (p *Provider) Start(ctx context.Context) error {
	if p.metrics != nil {
		return p.metrics.Start(ctx)
	}
	return nil
}

// Shutdown flushes and stops both providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	var firstErr error
	if p.tracer != nil {
		if err := p.tracer.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if p.metrics != nil {
		if err := p.metrics.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
