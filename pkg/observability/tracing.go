// Package observability provides metrics and tracing for the MCP schema
// codec. Both providers are opt-in; the protocol package never depends on
// this package.
package observability

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/ajitpratap0/mcp-schema-go/pkg/protocol"
)

// TracingConfig configures OpenTelemetry tracing
type TracingConfig struct {
	// Service identification
	ServiceName    string
	ServiceVersion string
	Environment    string

	// Exporter configuration
	ExporterType ExporterType
	Endpoint     string // OTLP endpoint
	Headers      map[string]string
	Insecure     bool // Use insecure connection (for development)

	// Sampling configuration
	SampleRate   float64  // 0.0 to 1.0
	AlwaysSample []string // Method names to always sample
	NeverSample  []string // Method names to never sample

	// Additional attributes
	ResourceAttributes map[string]string
}

// ExporterType defines the type of trace exporter
type ExporterType string

const (
	// ExporterTypeOTLPGRPC exports traces via OTLP over gRPC
	ExporterTypeOTLPGRPC ExporterType = "otlp-grpc"

	// ExporterTypeOTLPHTTP exports traces via OTLP over HTTP
	ExporterTypeOTLPHTTP ExporterType = "otlp-http"

	// ExporterTypeNoop disables trace export (for testing)
	ExporterTypeNoop ExporterType = "noop"
)

// TracingProvider manages OpenTelemetry tracing
type TracingProvider struct {
	config         TracingConfig
	tracerProvider *sdktrace.TracerProvider
	tracer         trace.Tracer
	propagator     propagation.TextMapPropagator
	mu             sync.RWMutex
	shutdown       func(context.Context) error
}

// NewTracingProvider creates a new tracing provider
func NewTracingProvider(config TracingConfig) (*TracingProvider, error) {
	// Set defaults
	if config.ServiceName == "" {
		config.ServiceName = "mcp-schema"
	}
	if config.ServiceVersion == "" {
		config.ServiceVersion = "unknown"
	}
	if config.Environment == "" {
		config.Environment = "development"
	}
	if config.SampleRate == 0 {
		config.SampleRate = 1.0
	}

	res, err := createResource(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := createExporter(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}

	sampler := createSampler(config)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)

	otel.SetTracerProvider(tp)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	return &TracingProvider{
		config:         config,
		tracerProvider: tp,
		tracer:         tp.Tracer("mcp-schema"),
		propagator:     propagator,
		shutdown:       tp.Shutdown,
	}, nil
}

// createResource creates the OpenTelemetry resource
func createResource(config TracingConfig) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(config.ServiceName),
		semconv.ServiceVersion(config.ServiceVersion),
		semconv.DeploymentEnvironment(config.Environment),
	}

	for k, v := range config.ResourceAttributes {
		attrs = append(attrs, attribute.String(k, v))
	}

	return resource.NewWithAttributes(
		semconv.SchemaURL,
		attrs...,
	), nil
}

// createExporter creates the configured trace exporter
func createExporter(config TracingConfig) (sdktrace.SpanExporter, error) {
	switch config.ExporterType {
	case ExporterTypeOTLPGRPC:
		return createOTLPGRPCExporter(config)
	case ExporterTypeOTLPHTTP:
		return createOTLPHTTPExporter(config)
	case ExporterTypeNoop:
		return &noopExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported exporter type: %s", config.ExporterType)
	}
}

// createOTLPGRPCExporter creates an OTLP gRPC exporter
func createOTLPGRPCExporter(config TracingConfig) (sdktrace.SpanExporter, error) {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(config.Endpoint),
		otlptracegrpc.WithHeaders(config.Headers),
	}

	if config.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	client := otlptracegrpc.NewClient(opts...)
	return otlptrace.New(context.Background(), client)
}

// createOTLPHTTPExporter creates an OTLP HTTP exporter
func createOTLPHTTPExporter(config TracingConfig) (sdktrace.SpanExporter, error) {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(config.Endpoint),
		otlptracehttp.WithHeaders(config.Headers),
	}

	if config.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	client := otlptracehttp.NewClient(opts...)
	return otlptrace.New(context.Background(), client)
}

// createSampler creates a sampler based on configuration
func createSampler(config TracingConfig) sdktrace.Sampler {
	if len(config.AlwaysSample) > 0 || len(config.NeverSample) > 0 {
		return &methodSampler{
			defaultRate:  config.SampleRate,
			alwaysSample: makeStringSet(config.AlwaysSample),
			neverSample:  makeStringSet(config.NeverSample),
		}
	}

	if config.SampleRate >= 1.0 {
		return sdktrace.AlwaysSample()
	} else if config.SampleRate <= 0.0 {
		return sdktrace.NeverSample()
	}
	return sdktrace.TraceIDRatioBased(config.SampleRate)
}

// StartSpan starts a new span with the given name and options
func (tp *TracingProvider) StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tp.tracer.Start(ctx, name, opts...)
}

// StartMessageSpan starts a span for decoding or encoding a protocol
// message. Direction is "inbound" or "outbound".
func (tp *TracingProvider) StartMessageSpan(ctx context.Context, method, direction string) (context.Context, trace.Span) {
	kind := trace.SpanKindServer
	if direction == "outbound" {
		kind = trace.SpanKindClient
	}
	opts := []trace.SpanStartOption{
		trace.WithSpanKind(kind),
		trace.WithAttributes(
			attribute.String("mcp.method", method),
			attribute.String("mcp.direction", direction),
			attribute.String("mcp.service", tp.config.ServiceName),
		),
	}

	return tp.tracer.Start(ctx, fmt.Sprintf("mcp.%s", method), opts...)
}

// RecordError records an error on the current span
func (tp *TracingProvider) RecordError(ctx context.Context, err error, opts ...trace.EventOption) {
	span := trace.SpanFromContext(ctx)
	if span != nil && span.IsRecording() {
		span.RecordError(err, opts...)
		span.SetStatus(codes.Error, err.Error())
	}
}

// AddEvent adds an event to the current span
func (tp *TracingProvider) AddEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span != nil && span.IsRecording() {
		span.AddEvent(name, trace.WithAttributes(attrs...))
	}
}

// SetAttributes sets attributes on the current span
func (tp *TracingProvider) SetAttributes(ctx context.Context, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span != nil && span.IsRecording() {
		span.SetAttributes(attrs...)
	}
}

// ExtractMeta extracts trace context propagated inside a message's _meta
// field.
func (tp *TracingProvider) ExtractMeta(ctx context.Context, meta protocol.Meta) context.Context {
	return tp.propagator.Extract(ctx, MetaCarrier(meta))
}

// InjectMeta injects the current trace context into a message's _meta field.
// The meta map must be non-nil.
func (tp *TracingProvider) InjectMeta(ctx context.Context, meta protocol.Meta) {
	tp.propagator.Inject(ctx, MetaCarrier(meta))
}

// Shutdown gracefully shuts down the tracing provider
func (tp *TracingProvider) Shutdown(ctx context.Context) error {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	if tp.shutdown != nil {
		return tp.shutdown(ctx)
	}
	return nil
}

// MetaCarrier adapts a message's _meta map to the OpenTelemetry propagation
// carrier interface. Values are stored as JSON strings; non-string values
// already present under a propagation key are skipped on read.
type MetaCarrier protocol.Meta

// Get returns the string value stored under key.
func (c MetaCarrier) Get(key string) string {
	raw, ok := c[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Set stores value under key as a JSON string.
func (c MetaCarrier) Set(key, value string) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c[key] = raw
}

// Keys returns every key in the carrier.
func (c MetaCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}

// methodSampler samples based on method name
type methodSampler struct {
	defaultRate  float64
	alwaysSample map[string]struct{}
	neverSample  map[string]struct{}
}

func (ms *methodSampler) ShouldSample(params sdktrace.SamplingParameters) sdktrace.SamplingResult {
	// Extract method name from span name or attributes
	method := params.Name
	for _, attr := range params.Attributes {
		if attr.Key == "mcp.method" {
			method = attr.Value.AsString()
			break
		}
	}

	if _, ok := ms.alwaysSample[method]; ok {
		return sdktrace.SamplingResult{Decision: sdktrace.RecordAndSample}
	}
	if _, ok := ms.neverSample[method]; ok {
		return sdktrace.SamplingResult{Decision: sdktrace.Drop}
	}

	if ms.defaultRate >= 1.0 {
		return sdktrace.SamplingResult{Decision: sdktrace.RecordAndSample}
	} else if ms.defaultRate <= 0.0 {
		return sdktrace.SamplingResult{Decision: sdktrace.Drop}
	}

	return sdktrace.TraceIDRatioBased(ms.defaultRate).ShouldSample(params)
}

func (ms *methodSampler) Description() string {
	return fmt.Sprintf("MethodSampler{defaultRate=%.2f}", ms.defaultRate)
}

// noopExporter is a no-op span exporter for testing
type noopExporter struct{}

func (n *noopExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	return nil
}

func (n *noopExporter) Shutdown(ctx context.Context) error {
	return nil
}

func makeStringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
