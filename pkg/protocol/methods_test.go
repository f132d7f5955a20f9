package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

func TestParseClientRequestDispatch(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantParams interface{}
	}{
		{
			"initialize",
			`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"demo","version":"0.1"}}}`,
			&InitializeParams{},
		},
		{
			"tools/call",
			`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"echo","arguments":{"text":"hi"}}}`,
			&CallToolParams{},
		},
		{
			"prompts/get",
			`{"jsonrpc":"2.0","id":3,"method":"prompts/get","params":{"name":"greet"}}`,
			&GetPromptParams{},
		},
		{
			"resources/list with cursor",
			`{"jsonrpc":"2.0","id":4,"method":"resources/list","params":{"cursor":"abc"}}`,
			&PaginatedParams{},
		},
		{
			"logging/setLevel",
			`{"jsonrpc":"2.0","id":5,"method":"logging/setLevel","params":{"level":"warning"}}`,
			&SetLevelParams{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseClientRequest([]byte(tt.input))
			require.NoError(t, err)
			assert.IsType(t, tt.wantParams, req.Params)

			out, err := json.Marshal(req)
			require.NoError(t, err)
			assert.JSONEq(t, tt.input, string(out))
		})
	}
}

func TestParseClientRequestUnsupportedMethod(t *testing.T) {
	for _, method := range []string{"bogus/method", "sampling/createMessage", "notifications/initialized"} {
		t.Run(method, func(t *testing.T) {
			raw := `{"jsonrpc":"2.0","id":1,"method":"` + method + `","params":{}}`
			_, err := ParseClientRequest([]byte(raw))
			require.Error(t, err)
			assert.True(t, mcperrors.IsKind(err, mcperrors.KindUnsupportedMethod))
		})
	}
}

func TestParseClientRequestDefaultParams(t *testing.T) {
	req, err := ParseClientRequest([]byte(`{"jsonrpc":"2.0","id":1,"method":"ping"}`))
	require.NoError(t, err)
	require.IsType(t, &PingParams{}, req.Params)

	// Explicit null counts as absent and still gets the default.
	req, err = ParseClientRequest([]byte(`{"jsonrpc":"2.0","id":1,"method":"ping","params":null}`))
	require.NoError(t, err)
	require.IsType(t, &PingParams{}, req.Params)
}

func TestParseClientRequestMissingRequiredParams(t *testing.T) {
	for _, method := range []string{MethodInitialize, MethodCallTool, MethodReadResource, MethodListPrompts} {
		t.Run(method, func(t *testing.T) {
			raw := `{"jsonrpc":"2.0","id":1,"method":"` + method + `"}`
			_, err := ParseClientRequest([]byte(raw))
			require.Error(t, err)
			assert.True(t, mcperrors.IsKind(err, mcperrors.KindParamsShapeMismatch))
		})
	}
}

func TestParseClientRequestParamsShapeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"initialize without clientInfo", `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{}}}`},
		{"tools/call without name", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"arguments":{}}}`},
		{"setLevel with bad level", `{"jsonrpc":"2.0","id":1,"method":"logging/setLevel","params":{"level":"verbose"}}`},
		{"params of the wrong JSON kind", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":[1,2]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClientRequest([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, mcperrors.IsKind(err, mcperrors.KindParamsShapeMismatch))
		})
	}
}

func TestParseClientRequestMalformedJSON(t *testing.T) {
	_, err := ParseClientRequest([]byte(`{"jsonrpc":"2.0",`))
	require.Error(t, err)
	assert.True(t, mcperrors.IsKind(err, mcperrors.KindMalformedJSON))
}

func TestParseClientNotificationDispatch(t *testing.T) {
	n, err := ParseClientNotification([]byte(`{"jsonrpc":"2.0","method":"notifications/cancelled","params":{"requestId":7,"reason":"timeout"}}`))
	require.NoError(t, err)
	params, ok := n.Params.(*CancelledParams)
	require.True(t, ok)
	id, isInt := params.RequestID.Int64Value()
	assert.True(t, isInt)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "timeout", params.Reason)

	n, err = ParseClientNotification([]byte(`{"jsonrpc":"2.0","method":"notifications/initialized"}`))
	require.NoError(t, err)
	assert.IsType(t, &NotificationParams{}, n.Params)

	_, err = ParseClientNotification([]byte(`{"jsonrpc":"2.0","method":"notifications/cancelled","params":{"reason":"timeout"}}`))
	require.Error(t, err)
	assert.True(t, mcperrors.IsKind(err, mcperrors.KindParamsShapeMismatch))
}

func TestParseServerRequestDispatch(t *testing.T) {
	raw := `{"jsonrpc":"2.0","id":"s-1","method":"sampling/createMessage","params":{"messages":[{"role":"user","content":{"type":"text","text":"hi"}}],"maxTokens":64}}`
	req, err := ParseServerRequest([]byte(raw))
	require.NoError(t, err)
	params, ok := req.Params.(*CreateMessageParams)
	require.True(t, ok)
	require.Len(t, params.Messages, 1)
	assert.Equal(t, int64(64), params.MaxTokens)

	// roots/list is parameter-optional on the server side.
	req, err = ParseServerRequest([]byte(`{"jsonrpc":"2.0","id":"s-2","method":"roots/list"}`))
	require.NoError(t, err)
	assert.IsType(t, &ListRootsParams{}, req.Params)

	// Client-only methods are outside the server request union.
	_, err = ParseServerRequest([]byte(`{"jsonrpc":"2.0","id":"s-3","method":"tools/call","params":{"name":"x"}}`))
	require.Error(t, err)
	assert.True(t, mcperrors.IsKind(err, mcperrors.KindUnsupportedMethod))
}

func TestParseServerNotificationDispatch(t *testing.T) {
	n, err := ParseServerNotification([]byte(`{"jsonrpc":"2.0","method":"notifications/message","params":{"level":"error","data":"disk full"}}`))
	require.NoError(t, err)
	params, ok := n.Params.(*LoggingMessageParams)
	require.True(t, ok)
	assert.Equal(t, LoggingLevelError, params.Level)

	n, err = ParseServerNotification([]byte(`{"jsonrpc":"2.0","method":"notifications/resources/updated","params":{"uri":"file:///a"}}`))
	require.NoError(t, err)
	assert.IsType(t, &ResourceUpdatedParams{}, n.Params)

	n, err = ParseServerNotification([]byte(`{"jsonrpc":"2.0","method":"notifications/tools/list_changed"}`))
	require.NoError(t, err)
	assert.IsType(t, &NotificationParams{}, n.Params)
}

func TestNewClientRequestPairing(t *testing.T) {
	req, err := NewClientRequest(Int64ID(1), MethodCallTool, &CallToolParams{Name: "echo"})
	require.NoError(t, err)
	assert.Equal(t, MethodCallTool, req.Method)

	_, err = NewClientRequest(Int64ID(1), MethodCallTool, &GetPromptParams{Name: "greet"})
	require.Error(t, err)
	assert.True(t, mcperrors.IsKind(err, mcperrors.KindParamsShapeMismatch))

	_, err = NewClientRequest(Int64ID(1), MethodCallTool, nil)
	require.Error(t, err)
	assert.True(t, mcperrors.IsKind(err, mcperrors.KindParamsShapeMismatch))

	_, err = NewClientRequest(Int64ID(1), "bogus/method", &CallToolParams{Name: "echo"})
	require.Error(t, err)
	assert.True(t, mcperrors.IsKind(err, mcperrors.KindUnsupportedMethod))

	_, err = NewClientRequest(RequestID{}, MethodPing, nil)
	assert.Error(t, err)
}

func TestClientRequestMarshalOmitsNilOptionalParams(t *testing.T) {
	req, err := NewClientRequest(Int64ID(1), MethodPing, nil)
	require.NoError(t, err)

	out, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"method":"ping"}`, string(out))
}

func TestServerNotificationRoundTrip(t *testing.T) {
	n, err := NewServerNotification(NotificationMessage, &LoggingMessageParams{
		Level: LoggingLevelWarning,
		Data:  json.RawMessage(`"low disk"`),
	})
	require.NoError(t, err)

	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","method":"notifications/message","params":{"level":"warning","data":"low disk"}}`, string(out))

	parsed, err := ParseServerNotification(out)
	require.NoError(t, err)
	assert.Equal(t, n.Method, parsed.Method)
}

func TestParseClientMessageClassification(t *testing.T) {
	msg, err := ParseClientMessage([]byte(`{"jsonrpc":"2.0","id":1,"method":"ping"}`))
	require.NoError(t, err)
	assert.IsType(t, &ClientRequest{}, msg)

	msg, err = ParseClientMessage([]byte(`{"jsonrpc":"2.0","method":"notifications/initialized"}`))
	require.NoError(t, err)
	assert.IsType(t, &ClientNotification{}, msg)

	msg, err = ParseClientMessage([]byte(`{"jsonrpc":"2.0","id":1,"result":{}}`))
	require.NoError(t, err)
	assert.IsType(t, &Response{}, msg)

	_, err = ParseClientMessage([]byte(`{"jsonrpc":"2.0"}`))
	require.Error(t, err)
	assert.True(t, mcperrors.IsKind(err, mcperrors.KindMalformedEnvelope))

	_, err = ParseClientMessage([]byte(`not json`))
	require.Error(t, err)
	assert.True(t, mcperrors.IsKind(err, mcperrors.KindMalformedJSON))
}

func TestParseServerMessageClassification(t *testing.T) {
	msg, err := ParseServerMessage([]byte(`{"jsonrpc":"2.0","id":"s-1","method":"ping"}`))
	require.NoError(t, err)
	assert.IsType(t, &ServerRequest{}, msg)

	msg, err = ParseServerMessage([]byte(`{"jsonrpc":"2.0","method":"notifications/progress","params":{"progressToken":"t1","progress":0.5}}`))
	require.NoError(t, err)
	assert.IsType(t, &ServerNotification{}, msg)

	msg, err = ParseServerMessage([]byte(`{"jsonrpc":"2.0","id":"s-1","error":{"code":-32602,"message":"bad params"}}`))
	require.NoError(t, err)
	assert.IsType(t, &Response{}, msg)
}
