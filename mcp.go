// Package mcpschema provides a Golang schema for the Model Context Protocol (2024-11-05)
package mcpschema

import (
	"github.com/ajitpratap0/mcp-schema-go/pkg/codec"
	"github.com/ajitpratap0/mcp-schema-go/pkg/protocol"
)

// Version represents the current version of the module
const Version = "1.0.0"

// Wire format constants
const (
	JSONRPCVersion  = protocol.JSONRPCVersion
	ProtocolVersion = protocol.ProtocolVersion
)

// These exports provide direct access to the core components
var (
	// NewCodec creates a codec, optionally wrapped in middleware
	NewCodec = codec.New

	// NewIDGenerator creates a sequential request id generator
	NewIDGenerator = codec.NewIDGenerator

	// NewLoggingMiddleware wraps a codec with per-message logging
	NewLoggingMiddleware = codec.NewLoggingMiddleware

	// NewObservabilityMiddleware wraps a codec with metrics and tracing
	NewObservabilityMiddleware = codec.NewObservabilityMiddleware
)

// Message constructors
var (
	NewClientRequest      = protocol.NewClientRequest
	NewClientNotification = protocol.NewClientNotification
	NewServerRequest      = protocol.NewServerRequest
	NewServerNotification = protocol.NewServerNotification
	NewResponse           = protocol.NewResponse
	NewErrorResponse      = protocol.NewErrorResponse
)

// Request id constructors
var (
	StringID = protocol.StringID
	Int64ID  = protocol.Int64ID
)
