package observability

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) *PrometheusMetricsProvider {
	t.Helper()
	provider, err := NewMetricsProvider(MetricsConfig{ServiceName: "test"})
	require.NoError(t, err)
	return provider.(*PrometheusMetricsProvider)
}

func TestMetricsProviderDefaults(t *testing.T) {
	p := newTestMetrics(t)

	assert.Equal(t, "mcp", p.config.Namespace)
	assert.Equal(t, "schema", p.config.Subsystem)
	assert.Equal(t, "/metrics", p.config.MetricsPath)
	assert.Equal(t, 9090, p.config.MetricsPort)
	assert.Equal(t, "test", p.config.ConstLabels["service"])
}

func TestRecordDecodeEncode(t *testing.T) {
	p := newTestMetrics(t)
	ctx := context.Background()

	p.RecordDecode(ctx, "tools/call", "inbound", "success", 50*time.Microsecond)
	p.RecordDecode(ctx, "tools/call", "inbound", "success", 80*time.Microsecond)
	p.RecordDecode(ctx, "tools/call", "inbound", "error", 10*time.Microsecond)
	p.RecordEncode(ctx, "ping", "outbound", "success", 5*time.Microsecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(p.decodeTotal.WithLabelValues("tools/call", "inbound", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(p.decodeTotal.WithLabelValues("tools/call", "inbound", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(p.encodeTotal.WithLabelValues("ping", "outbound", "success")))
}

func TestRecordBatchAndFailure(t *testing.T) {
	p := newTestMetrics(t)
	ctx := context.Background()

	p.RecordBatch(ctx, 16, "success", time.Millisecond)
	p.RecordFailure(ctx, "unsupported_method", "no/such")
	p.RecordResultShape(ctx, "callTool")

	assert.Equal(t, float64(1), testutil.ToFloat64(p.batchTotal.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(p.failureTotal.WithLabelValues("unsupported_method", "no/such")))
	assert.Equal(t, float64(1), testutil.ToFloat64(p.resultShapeTotal.WithLabelValues("callTool")))
}

func TestCustomMetrics(t *testing.T) {
	p := newTestMetrics(t)

	labels := prometheus.Labels{"stage": "probe"}
	p.RecordCounter("custom_probe_total", labels)
	p.RecordCounter("custom_probe_total", labels)
	p.RecordGauge("custom_probe_depth", 3, labels)
	p.RecordHistogram("custom_probe_micros", 42, labels)

	counter, ok := p.customMetrics["custom_probe_total"].(*prometheus.CounterVec)
	require.True(t, ok)
	assert.Equal(t, float64(2), testutil.ToFloat64(counter.With(labels)))

	gauge, ok := p.customMetrics["custom_probe_depth"].(*prometheus.GaugeVec)
	require.True(t, ok)
	assert.Equal(t, float64(3), testutil.ToFloat64(gauge.With(labels)))
}
