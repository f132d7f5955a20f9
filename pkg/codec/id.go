package codec

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ajitpratap0/mcp-schema-go/pkg/protocol"
)

// IDGenerator produces monotonically increasing request ids with a shared
// prefix. It is safe for concurrent use.
type IDGenerator struct {
	prefix string
	next   atomic.Int64
}

// NewIDGenerator creates a generator. The prefix defaults to "req".
func NewIDGenerator(prefix string) *IDGenerator {
	if prefix == "" {
		prefix = "req"
	}
	return &IDGenerator{prefix: prefix}
}

// NextID returns the next string-kind request id, e.g. "req_1".
func (g *IDGenerator) NextID() protocol.RequestID {
	n := g.next.Add(1)
	return protocol.StringID(fmt.Sprintf("%s_%d", g.prefix, n))
}

// NextInt64ID returns the next number-kind request id.
func (g *IDGenerator) NextInt64ID() protocol.RequestID {
	return protocol.Int64ID(g.next.Add(1))
}

// RandomID returns a UUID-based request id for callers that cannot share a
// generator.
func RandomID() protocol.RequestID {
	return protocol.StringID(uuid.NewString())
}

// RandomProgressToken returns a UUID-based progress token.
func RandomProgressToken() protocol.ProgressToken {
	return protocol.StringToken(uuid.NewString())
}
