// Package codec turns raw wire bytes into typed protocol messages and back.
// It layers cross-cutting concerns (logging, metrics, tracing) over the pure
// parsing in pkg/protocol through a middleware chain.
package codec

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
	"github.com/ajitpratap0/mcp-schema-go/pkg/protocol"
)

// Codec encodes and decodes protocol messages. Decode methods classify the
// payload (request, notification or response) and fully resolve the typed
// params; batch variants preserve input order.
type Codec interface {
	EncodeClient(ctx context.Context, msg protocol.ClientMessage) ([]byte, error)
	EncodeServer(ctx context.Context, msg protocol.ServerMessage) ([]byte, error)
	DecodeClient(ctx context.Context, data []byte) (protocol.ClientMessage, error)
	DecodeServer(ctx context.Context, data []byte) (protocol.ServerMessage, error)
	DecodeClientBatch(ctx context.Context, data []byte) ([]protocol.ClientMessage, error)
	DecodeServerBatch(ctx context.Context, data []byte) ([]protocol.ServerMessage, error)
}

// jsonCodec is the base implementation over pkg/protocol.
type jsonCodec struct{}

// New returns the base JSON codec wrapped in the given middleware, first
// middleware outermost.
func New(middleware ...Middleware) Codec {
	return Chain(middleware...).Wrap(jsonCodec{})
}

func (jsonCodec) EncodeClient(ctx context.Context, msg protocol.ClientMessage) ([]byte, error) {
	return encodeMessage(msg)
}

func (jsonCodec) EncodeServer(ctx context.Context, msg protocol.ServerMessage) ([]byte, error) {
	return encodeMessage(msg)
}

func (jsonCodec) DecodeClient(ctx context.Context, data []byte) (protocol.ClientMessage, error) {
	return protocol.ParseClientMessage(data)
}

func (jsonCodec) DecodeServer(ctx context.Context, data []byte) (protocol.ServerMessage, error) {
	return protocol.ParseServerMessage(data)
}

func (jsonCodec) DecodeClientBatch(ctx context.Context, data []byte) ([]protocol.ClientMessage, error) {
	items, err := splitBatch(data)
	if err != nil {
		return nil, err
	}

	out := make([]protocol.ClientMessage, len(items))
	g, _ := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			msg, err := protocol.ParseClientMessage(item)
			if err != nil {
				return err
			}
			out[i] = msg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (jsonCodec) DecodeServerBatch(ctx context.Context, data []byte) ([]protocol.ServerMessage, error) {
	items, err := splitBatch(data)
	if err != nil {
		return nil, err
	}

	out := make([]protocol.ServerMessage, len(items))
	g, _ := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			msg, err := protocol.ParseServerMessage(item)
			if err != nil {
				return err
			}
			out[i] = msg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// encodeMessage marshals a message, mapping non-protocol marshal failures
// into the taxonomy.
func encodeMessage(msg interface{}) ([]byte, error) {
	if msg == nil {
		return nil, mcperrors.MalformedEnvelope("nil message")
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		if mcperrors.KindOf(err) != "" {
			return nil, err
		}
		return nil, mcperrors.Wrap(mcperrors.KindMalformedJSON, "encode message", err)
	}
	return raw, nil
}

// splitBatch parses the top-level array of a batch without touching its
// elements.
func splitBatch(data []byte) ([]json.RawMessage, error) {
	if !json.Valid(data) {
		return nil, mcperrors.New(mcperrors.KindMalformedJSON, "")
	}
	if !protocol.IsBatch(data) {
		return nil, mcperrors.MalformedEnvelope("batch must be a JSON array")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, mcperrors.Wrap(mcperrors.KindMalformedEnvelope, "batch", err)
	}
	if len(items) == 0 {
		return nil, mcperrors.MalformedEnvelope("batch must not be empty")
	}
	return items, nil
}

// EncodeBatch marshals a batch envelope built with protocol.NewBatchRequest.
func EncodeBatch(batch protocol.BatchRequest) ([]byte, error) {
	if batch.Len() == 0 {
		return nil, mcperrors.MalformedEnvelope("batch must not be empty")
	}
	raw, err := json.Marshal(batch)
	if err != nil {
		return nil, mcperrors.Wrap(mcperrors.KindMalformedJSON, "encode batch", err)
	}
	return raw, nil
}

// MethodOf returns the method a message dispatches on, or "" for responses.
func MethodOf(msg interface{}) string {
	switch m := msg.(type) {
	case *protocol.ClientRequest:
		return m.Method
	case *protocol.ClientNotification:
		return m.Method
	case *protocol.ServerRequest:
		return m.Method
	case *protocol.ServerNotification:
		return m.Method
	default:
		return ""
	}
}
