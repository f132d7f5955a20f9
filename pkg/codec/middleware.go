package codec

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
	"github.com/ajitpratap0/mcp-schema-go/pkg/logging"
	"github.com/ajitpratap0/mcp-schema-go/pkg/observability"
	"github.com/ajitpratap0/mcp-schema-go/pkg/protocol"
)

// Middleware wraps a codec to add cross-cutting functionality.
type Middleware interface {
	// Wrap wraps the given codec with middleware functionality
	Wrap(codec Codec) Codec
}

// MiddlewareFunc is an adapter to allow the use of ordinary functions as middleware
type MiddlewareFunc func(Codec) Codec

// Wrap implements the Middleware interface
func (f MiddlewareFunc) Wrap(c Codec) Codec {
	return f(c)
}

// Chain chains multiple middleware together
func Chain(middleware ...Middleware) Middleware {
	return MiddlewareFunc(func(codec Codec) Codec {
		// Apply middleware in reverse order so the first middleware is the outermost
		for i := len(middleware) - 1; i >= 0; i-- {
			codec = middleware[i].Wrap(codec)
		}
		return codec
	})
}

const (
	directionInbound  = "inbound"
	directionOutbound = "outbound"
)

// NewLoggingMiddleware logs every codec operation with its method, direction
// and duration. Failures log at error level with the taxonomy kind attached.
func NewLoggingMiddleware(logger logging.Logger) Middleware {
	return MiddlewareFunc(func(next Codec) Codec {
		return &loggingCodec{next: next, logger: logger}
	})
}

type loggingCodec struct {
	next   Codec
	logger logging.Logger
}

func (c *loggingCodec) EncodeClient(ctx context.Context, msg protocol.ClientMessage) ([]byte, error) {
	start := time.Now()
	data, err := c.next.EncodeClient(ctx, msg)
	c.logOp(ctx, "encode", MethodOf(msg), directionOutbound, start, err)
	return data, err
}

func (c *loggingCodec) EncodeServer(ctx context.Context, msg protocol.ServerMessage) ([]byte, error) {
	start := time.Now()
	data, err := c.next.EncodeServer(ctx, msg)
	c.logOp(ctx, "encode", MethodOf(msg), directionOutbound, start, err)
	return data, err
}

func (c *loggingCodec) DecodeClient(ctx context.Context, data []byte) (protocol.ClientMessage, error) {
	start := time.Now()
	msg, err := c.next.DecodeClient(ctx, data)
	c.logOp(ctx, "decode", MethodOf(msg), directionInbound, start, err)
	return msg, err
}

func (c *loggingCodec) DecodeServer(ctx context.Context, data []byte) (protocol.ServerMessage, error) {
	start := time.Now()
	msg, err := c.next.DecodeServer(ctx, data)
	c.logOp(ctx, "decode", MethodOf(msg), directionInbound, start, err)
	return msg, err
}

func (c *loggingCodec) DecodeClientBatch(ctx context.Context, data []byte) ([]protocol.ClientMessage, error) {
	start := time.Now()
	msgs, err := c.next.DecodeClientBatch(ctx, data)
	c.logBatch(ctx, len(msgs), start, err)
	return msgs, err
}

func (c *loggingCodec) DecodeServerBatch(ctx context.Context, data []byte) ([]protocol.ServerMessage, error) {
	start := time.Now()
	msgs, err := c.next.DecodeServerBatch(ctx, data)
	c.logBatch(ctx, len(msgs), start, err)
	return msgs, err
}

func (c *loggingCodec) logOp(ctx context.Context, op, method, direction string, start time.Time, err error) {
	logger := c.logger.WithContext(ctx).WithFields(
		logging.String("method", method),
		logging.String("direction", direction),
		logging.Duration("duration", time.Since(start)),
	)
	if err != nil {
		logger.WithError(err).Error(op + " failed")
		return
	}
	logger.Debug(op + " succeeded")
}

func (c *loggingCodec) logBatch(ctx context.Context, size int, start time.Time, err error) {
	logger := c.logger.WithContext(ctx).WithFields(
		logging.Int("batch_size", size),
		logging.Duration("duration", time.Since(start)),
	)
	if err != nil {
		logger.WithError(err).Error("batch decode failed")
		return
	}
	logger.Debug("batch decode succeeded")
}

// NewObservabilityMiddleware records metrics and spans for every codec
// operation through the combined provider.
func NewObservabilityMiddleware(provider *observability.Provider) Middleware {
	return MiddlewareFunc(func(next Codec) Codec {
		return &observabilityCodec{next: next, provider: provider}
	})
}

type observabilityCodec struct {
	next     Codec
	provider *observability.Provider
}

func (c *observabilityCodec) EncodeClient(ctx context.Context, msg protocol.ClientMessage) ([]byte, error) {
	ctx, finish := c.startSpan(ctx, MethodOf(msg), directionOutbound)
	start := time.Now()
	data, err := c.next.EncodeClient(ctx, msg)
	c.recordEncode(ctx, MethodOf(msg), directionOutbound, start, err)
	finish(err, data)
	return data, err
}

func (c *observabilityCodec) EncodeServer(ctx context.Context, msg protocol.ServerMessage) ([]byte, error) {
	ctx, finish := c.startSpan(ctx, MethodOf(msg), directionOutbound)
	start := time.Now()
	data, err := c.next.EncodeServer(ctx, msg)
	c.recordEncode(ctx, MethodOf(msg), directionOutbound, start, err)
	finish(err, data)
	return data, err
}

func (c *observabilityCodec) DecodeClient(ctx context.Context, data []byte) (protocol.ClientMessage, error) {
	ctx, finish := c.startSpan(ctx, "decode", directionInbound)
	start := time.Now()
	msg, err := c.next.DecodeClient(ctx, data)
	c.recordDecode(ctx, MethodOf(msg), directionInbound, start, err)
	finish(err, data)
	return msg, err
}

func (c *observabilityCodec) DecodeServer(ctx context.Context, data []byte) (protocol.ServerMessage, error) {
	ctx, finish := c.startSpan(ctx, "decode", directionInbound)
	start := time.Now()
	msg, err := c.next.DecodeServer(ctx, data)
	c.recordDecode(ctx, MethodOf(msg), directionInbound, start, err)
	if err == nil {
		c.recordResultShape(ctx, msg)
	}
	finish(err, data)
	return msg, err
}

func (c *observabilityCodec) DecodeClientBatch(ctx context.Context, data []byte) ([]protocol.ClientMessage, error) {
	ctx, finish := c.startSpan(ctx, "decode_batch", directionInbound)
	start := time.Now()
	msgs, err := c.next.DecodeClientBatch(ctx, data)
	c.recordBatch(ctx, len(msgs), start, err)
	finish(err, data)
	return msgs, err
}

func (c *observabilityCodec) DecodeServerBatch(ctx context.Context, data []byte) ([]protocol.ServerMessage, error) {
	ctx, finish := c.startSpan(ctx, "decode_batch", directionInbound)
	start := time.Now()
	msgs, err := c.next.DecodeServerBatch(ctx, data)
	c.recordBatch(ctx, len(msgs), start, err)
	if err == nil {
		for _, msg := range msgs {
			c.recordResultShape(ctx, msg)
		}
	}
	finish(err, data)
	return msgs, err
}

// startSpan opens a span when tracing is enabled and returns a finish
// callback that records the outcome.
func (c *observabilityCodec) startSpan(ctx context.Context, name, direction string) (context.Context, func(error, []byte)) {
	tracer := c.provider.Tracer()
	if tracer == nil {
		return ctx, func(error, []byte) {}
	}
	ctx, span := tracer.StartMessageSpan(ctx, name, direction)
	return ctx, func(err error, payload []byte) {
		span.SetAttributes(attribute.Int("mcp.payload_bytes", len(payload)))
		if c.provider.CapturePayloads() {
			span.SetAttributes(attribute.String("mcp.payload", string(payload)))
		}
		if err != nil {
			tracer.RecordError(ctx, err)
		}
		span.End()
	}
}

func (c *observabilityCodec) recordDecode(ctx context.Context, method, direction string, start time.Time, err error) {
	metrics := c.provider.Metrics()
	if metrics == nil {
		return
	}
	metrics.RecordDecode(ctx, metricMethod(method), direction, statusOf(err), time.Since(start))
	if err != nil {
		metrics.RecordFailure(ctx, string(mcperrors.KindOf(err)), metricMethod(method))
	}
}

func (c *observabilityCodec) recordEncode(ctx context.Context, method, direction string, start time.Time, err error) {
	metrics := c.provider.Metrics()
	if metrics == nil {
		return
	}
	metrics.RecordEncode(ctx, metricMethod(method), direction, statusOf(err), time.Since(start))
	if err != nil {
		metrics.RecordFailure(ctx, string(mcperrors.KindOf(err)), metricMethod(method))
	}
}

// recordResultShape resolves the result of a decoded response and counts the
// shape it lands on. Error responses and empty results are not counted.
func (c *observabilityCodec) recordResultShape(ctx context.Context, msg protocol.ServerMessage) {
	metrics := c.provider.Metrics()
	if metrics == nil {
		return
	}
	resp, ok := msg.(*protocol.Response)
	if !ok || resp.Error != nil || len(resp.Result) == 0 {
		return
	}
	res, err := protocol.ResolveServerResult(resp.Result)
	if err != nil {
		return
	}
	metrics.RecordResultShape(ctx, resultShapeLabel(res))
}

func resultShapeLabel(res protocol.ServerResult) string {
	switch res.(type) {
	case *protocol.InitializeResult:
		return "initialize"
	case *protocol.CompleteResult:
		return "complete"
	case *protocol.GetPromptResult:
		return "getPrompt"
	case *protocol.ListPromptsResult:
		return "listPrompts"
	case *protocol.ListResourcesResult:
		return "listResources"
	case *protocol.ListResourceTemplatesResult:
		return "listResourceTemplates"
	case *protocol.ReadResourceResult:
		return "readResource"
	case *protocol.CallToolResult:
		return "callTool"
	case *protocol.ListToolsResult:
		return "listTools"
	case *protocol.ElicitResult:
		return "elicit"
	case *protocol.EmptyResult:
		return "empty"
	default:
		return "unknown"
	}
}

func (c *observabilityCodec) recordBatch(ctx context.Context, size int, start time.Time, err error) {
	metrics := c.provider.Metrics()
	if metrics == nil {
		return
	}
	metrics.RecordBatch(ctx, size, statusOf(err), time.Since(start))
	if err != nil {
		metrics.RecordFailure(ctx, string(mcperrors.KindOf(err)), "batch")
	}
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// metricMethod keeps label cardinality bounded: responses carry no method.
func metricMethod(method string) string {
	if method == "" {
		return "response"
	}
	return method
}
