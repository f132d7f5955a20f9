package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindToCodeMapping(t *testing.T) {
	tests := []struct {
		kind Kind
		code int
	}{
		{KindMalformedJSON, CodeParseError},
		{KindMalformedEnvelope, CodeInvalidRequest},
		{KindInvalidIdentifierShape, CodeInvalidRequest},
		{KindFieldCollision, CodeInvalidRequest},
		{KindUnsupportedMethod, CodeMethodNotFound},
		{KindParamsShapeMismatch, CodeInvalidParams},
		{KindUnknownContentVariant, CodeInvalidParams},
		{KindNoMatchingResultShape, CodeInternalError},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.code, CodeForKind(tt.kind))
			assert.Equal(t, tt.code, New(tt.kind, "x").Code())
		})
	}
}

func TestSentinelMatching(t *testing.T) {
	err := UnsupportedMethod("bogus/method")
	assert.True(t, errors.Is(err, ErrUnsupportedMethod))
	assert.False(t, errors.Is(err, ErrParamsShapeMismatch))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, errors.Is(wrapped, ErrUnsupportedMethod))
	assert.Equal(t, KindUnsupportedMethod, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindUnsupportedMethod))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := MalformedJSON(cause)

	assert.Equal(t, KindMalformedJSON, err.Kind())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
}

func TestParamsShapeMismatchDetail(t *testing.T) {
	err := ParamsShapeMismatch("tools/call", errors.New("missing name"))
	assert.Contains(t, err.Error(), "tools/call")
	assert.Contains(t, err.Error(), "missing name")

	err = MissingParams("initialize")
	assert.Equal(t, KindParamsShapeMismatch, err.Kind())
	assert.Contains(t, err.Error(), "initialize")
}

func TestWithDataDoesNotMutate(t *testing.T) {
	base := New(KindUnsupportedMethod, "x")
	withData := base.WithData("payload")

	assert.Nil(t, base.Data())
	assert.Equal(t, "payload", withData.Data())
	assert.Equal(t, base.Kind(), withData.Kind())
}

func TestToJSONRPCError(t *testing.T) {
	rpcErr := ToJSONRPCError(UnsupportedMethod("bogus"))
	assert.Equal(t, CodeMethodNotFound, rpcErr.Code)
	assert.NotEmpty(t, rpcErr.Message)
	require.NotNil(t, rpcErr.Data)

	rpcErr = ToJSONRPCError(errors.New("plain failure"))
	assert.Equal(t, CodeInternalError, rpcErr.Code)
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.False(t, IsKind(errors.New("plain"), KindMalformedJSON))
}
