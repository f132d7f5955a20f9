// Package pkg groups the components of the Model Context Protocol schema module.
//
// The sub-packages split along concerns:
//
//   - protocol: the message types of revision 2024-11-05 and their wire rules
//   - codec: byte-level encoding and decoding with a middleware chain
//   - errors: the structured failure taxonomy and JSON-RPC error mapping
//   - logging: structured logging and the notifications/message adapter
//   - observability: Prometheus metrics and OpenTelemetry tracing providers
//   - pagination: opaque cursor encoding for the list operations
package pkg
