// Package mcpschema models the message schema of the Model Context Protocol,
// revision 2024-11-05, on top of the JSON-RPC 2.0 wire format.
//
// The root package re-exports the handful of entry points most callers need.
// The full surface lives in the sub-packages:
//
//   - pkg/protocol: envelope, method and result types with strict wire rules
//   - pkg/codec: encoding and decoding of messages, with middleware hooks
//   - pkg/errors: the structured error taxonomy and JSON-RPC error mapping
//   - pkg/logging: structured logging plus the notifications/message bridge
//   - pkg/observability: Prometheus metrics and OpenTelemetry tracing
//   - pkg/pagination: opaque cursors for the paginated list operations
//
// # Decoding messages
//
// A Codec turns raw bytes into typed messages and back. Decoding classifies
// the payload as a request, notification or response and resolves the params
// type from the method name:
//
//	c := mcpschema.NewCodec()
//
//	msg, err := c.DecodeClient(ctx, data)
//	if err != nil {
//	    switch mcperrors.KindOf(err) {
//	    case mcperrors.KindUnsupportedMethod:
//	        // reply with method-not-found
//	    }
//	}
//
//	switch m := msg.(type) {
//	case *protocol.ClientRequest:
//	    // m.Params is already the concrete type for m.Method
//	case *protocol.ClientNotification:
//	case *protocol.Response:
//	}
//
// # Building messages
//
// Constructors pair a method with its params type and reject mismatches:
//
//	req, err := protocol.NewClientRequest(
//	    protocol.Int64ID(1),
//	    protocol.MethodCallTool,
//	    &protocol.CallToolParams{Name: "greet"},
//	)
//
// # Middleware
//
// Cross-cutting concerns wrap the codec the same way transport middleware
// wraps a connection:
//
//	c := mcpschema.NewCodec(
//	    codec.NewObservabilityMiddleware(provider),
//	    codec.NewLoggingMiddleware(logger),
//	)
package mcpschema
