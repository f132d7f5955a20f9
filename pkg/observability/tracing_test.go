package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ajitpratap0/mcp-schema-go/pkg/protocol"
)

func newTestTracer(t *testing.T) *TracingProvider {
	t.Helper()
	tp, err := NewTracingProvider(TracingConfig{ExporterType: ExporterTypeNoop})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})
	return tp
}

func TestTracingProviderDefaults(t *testing.T) {
	tp := newTestTracer(t)

	assert.Equal(t, "mcp-schema", tp.config.ServiceName)
	assert.Equal(t, 1.0, tp.config.SampleRate)
}

func TestTracingProviderRejectsUnknownExporter(t *testing.T) {
	_, err := NewTracingProvider(TracingConfig{ExporterType: "jaeger"})
	assert.Error(t, err)
}

func TestStartMessageSpan(t *testing.T) {
	tp := newTestTracer(t)

	ctx, span := tp.StartMessageSpan(context.Background(), "tools/call", "inbound")
	defer span.End()

	require.True(t, span.SpanContext().IsValid())
	assert.True(t, trace.SpanFromContext(ctx).SpanContext().Equal(span.SpanContext()))

	tp.RecordError(ctx, assert.AnError)
	tp.AddEvent(ctx, "probe")
}

func TestMetaCarrier(t *testing.T) {
	meta := protocol.Meta{}
	carrier := MetaCarrier(meta)

	carrier.Set("traceparent", "00-abc-def-01")
	assert.Equal(t, "00-abc-def-01", carrier.Get("traceparent"))
	assert.Equal(t, []string{"traceparent"}, carrier.Keys())

	// Raw JSON stored by the message owner, not a propagation string.
	meta["progressToken"] = []byte(`42`)
	assert.Equal(t, "", carrier.Get("progressToken"))
	assert.Equal(t, "", carrier.Get("missing"))
}

func TestMetaPropagationRoundTrip(t *testing.T) {
	tp := newTestTracer(t)

	ctx, span := tp.StartMessageSpan(context.Background(), "ping", "outbound")
	defer span.End()

	meta := protocol.Meta{}
	tp.InjectMeta(ctx, meta)
	require.Contains(t, meta, "traceparent")

	extracted := tp.ExtractMeta(context.Background(), meta)
	got := trace.SpanContextFromContext(extracted)
	assert.Equal(t, span.SpanContext().TraceID(), got.TraceID())
}

func TestMethodSampler(t *testing.T) {
	sampler := createSampler(TracingConfig{
		SampleRate:   0,
		AlwaysSample: []string{"tools/call"},
		NeverSample:  []string{"ping"},
	})

	sample := func(method string) sdktrace.SamplingDecision {
		return sampler.ShouldSample(sdktrace.SamplingParameters{
			Name:       "mcp." + method,
			Attributes: []attribute.KeyValue{attribute.String("mcp.method", method)},
		}).Decision
	}

	assert.Equal(t, sdktrace.RecordAndSample, sample("tools/call"))
	assert.Equal(t, sdktrace.Drop, sample("ping"))
	assert.Equal(t, sdktrace.Drop, sample("prompts/get"))
}
