package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

const (
	// JSONRPCVersion is the JSON-RPC version literal carried by every envelope.
	JSONRPCVersion = "2.0"

	// ProtocolVersion is the MCP revision this schema targets.
	ProtocolVersion = "2024-11-05"
)

// RequestID correlates a request with its eventual response or error. It is
// a closed union over a JSON string or a 64-bit signed integer; identity
// follows the JSON value, so StringID("1") and Int64ID(1) are never equal.
// The zero value means "no id".
type RequestID struct {
	value interface{}
}

// StringID returns a string-kind request id.
func StringID(s string) RequestID { return RequestID{value: s} }

// Int64ID returns a number-kind request id.
func Int64ID(n int64) RequestID { return RequestID{value: n} }

// IsZero reports whether the id is unset.
func (id RequestID) IsZero() bool { return id.value == nil }

// StringValue returns the string form and whether the id is string-kind.
func (id RequestID) StringValue() (string, bool) {
	s, ok := id.value.(string)
	return s, ok
}

// Int64Value returns the integer form and whether the id is number-kind.
func (id RequestID) Int64Value() (int64, bool) {
	n, ok := id.value.(int64)
	return n, ok
}

// String returns a display form for logs.
func (id RequestID) String() string {
	if id.value == nil {
		return "<none>"
	}
	return fmt.Sprintf("%v", id.value)
}

// MarshalJSON serializes the id back to its original scalar kind. A zero id
// cannot be rendered: requests and responses always carry one.
func (id RequestID) MarshalJSON() ([]byte, error) {
	if id.value == nil {
		return nil, mcperrors.InvalidIdentifierShape("absent id")
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON parses a JSON scalar that is either a string or an integer.
// Booleans, floats, null, arrays and objects are InvalidIdentifierShape.
func (id *RequestID) UnmarshalJSON(data []byte) error {
	v, err := parseScalarID(data)
	if err != nil {
		return err
	}
	id.value = v
	return nil
}

// ProgressToken associates out-of-band progress notifications with a
// specific outstanding request. Same shape as RequestID, semantically
// independent.
type ProgressToken struct {
	value interface{}
}

// StringToken returns a string-kind progress token.
func StringToken(s string) ProgressToken { return ProgressToken{value: s} }

// Int64Token returns a number-kind progress token.
func Int64Token(n int64) ProgressToken { return ProgressToken{value: n} }

// IsZero reports whether the token is unset.
func (t ProgressToken) IsZero() bool { return t.value == nil }

// StringValue returns the string form and whether the token is string-kind.
func (t ProgressToken) StringValue() (string, bool) {
	s, ok := t.value.(string)
	return s, ok
}

// Int64Value returns the integer form and whether the token is number-kind.
func (t ProgressToken) Int64Value() (int64, bool) {
	n, ok := t.value.(int64)
	return n, ok
}

// String returns a display form for logs.
func (t ProgressToken) String() string {
	if t.value == nil {
		return "<none>"
	}
	return fmt.Sprintf("%v", t.value)
}

// MarshalJSON serializes the token back to its original scalar kind.
func (t ProgressToken) MarshalJSON() ([]byte, error) {
	if t.value == nil {
		return nil, mcperrors.InvalidIdentifierShape("absent progress token")
	}
	return json.Marshal(t.value)
}

// UnmarshalJSON parses a JSON scalar that is either a string or an integer.
func (t *ProgressToken) UnmarshalJSON(data []byte) error {
	v, err := parseScalarID(data)
	if err != nil {
		return err
	}
	t.value = v
	return nil
}

// parseScalarID decodes the string-or-int64 scalar shared by RequestID and
// ProgressToken.
func parseScalarID(data []byte) (interface{}, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, mcperrors.InvalidIdentifierShape("empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, mcperrors.InvalidIdentifierShape(string(data))
		}
		return s, nil
	case 't', 'f':
		return nil, mcperrors.InvalidIdentifierShape("boolean")
	case 'n':
		return nil, mcperrors.InvalidIdentifierShape("null")
	case '[':
		return nil, mcperrors.InvalidIdentifierShape("array")
	case '{':
		return nil, mcperrors.InvalidIdentifierShape("object")
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return nil, mcperrors.InvalidIdentifierShape(string(data))
		}
		n, err := num.Int64()
		if err != nil {
			return nil, mcperrors.InvalidIdentifierShape("non-integer number " + num.String())
		}
		return n, nil
	}
}

// Cursor is an opaque pagination token.
type Cursor string

// ErrorObject is the JSON-RPC error member of an error response.
type ErrorObject struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Error implements the error interface for wire errors surfaced to callers.
func (e *ErrorObject) Error() string {
	return fmt.Sprintf("rpc error: code = %d desc = %s", e.Code, e.Message)
}

// Request is a JSON-RPC 2.0 request envelope. A request always carries an id.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      RequestID       `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// NewRequest creates a request envelope, marshaling params if non-nil.
func NewRequest(id RequestID, method string, params interface{}) (*Request, error) {
	if id.IsZero() {
		return nil, mcperrors.MalformedEnvelope("request requires an id")
	}
	if method == "" {
		return nil, mcperrors.MalformedEnvelope("request requires a method")
	}
	raw, err := marshalParams(params)
	if err != nil {
		return nil, err
	}
	return &Request{JSONRPC: JSONRPCVersion, ID: id, Method: method, Params: raw}, nil
}

// UnmarshalJSON validates the envelope invariants while decoding: jsonrpc
// must be "2.0", the id key must be present and of identifier shape, and the
// method must be non-empty.
func (r *Request) UnmarshalJSON(data []byte) error {
	var shadow struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return mcperrors.Wrap(mcperrors.KindMalformedEnvelope, "", err)
	}
	if shadow.JSONRPC != JSONRPCVersion {
		return mcperrors.MalformedEnvelope(fmt.Sprintf("jsonrpc must be %q, got %q", JSONRPCVersion, shadow.JSONRPC))
	}
	if shadow.ID == nil {
		return mcperrors.MalformedEnvelope("request missing id")
	}
	if shadow.Method == "" {
		return mcperrors.MalformedEnvelope("request missing method")
	}
	if err := r.ID.UnmarshalJSON(shadow.ID); err != nil {
		return err
	}
	r.JSONRPC = shadow.JSONRPC
	r.Method = shadow.Method
	r.Params = normalizeParams(shadow.Params)
	return nil
}

// Notification is a JSON-RPC 2.0 notification envelope. A notification
// never carries an id.
type Notification struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// NewNotification creates a notification envelope, marshaling params if
// non-nil.
func NewNotification(method string, params interface{}) (*Notification, error) {
	if method == "" {
		return nil, mcperrors.MalformedEnvelope("notification requires a method")
	}
	raw, err := marshalParams(params)
	if err != nil {
		return nil, err
	}
	return &Notification{JSONRPC: JSONRPCVersion, Method: method, Params: raw}, nil
}

// UnmarshalJSON validates the envelope invariants: jsonrpc "2.0", id absent,
// method non-empty.
func (n *Notification) UnmarshalJSON(data []byte) error {
	var shadow struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return mcperrors.Wrap(mcperrors.KindMalformedEnvelope, "", err)
	}
	if shadow.JSONRPC != JSONRPCVersion {
		return mcperrors.MalformedEnvelope(fmt.Sprintf("jsonrpc must be %q, got %q", JSONRPCVersion, shadow.JSONRPC))
	}
	if shadow.ID != nil {
		return mcperrors.MalformedEnvelope("notification must not carry an id")
	}
	if shadow.Method == "" {
		return mcperrors.MalformedEnvelope("notification missing method")
	}
	n.JSONRPC = shadow.JSONRPC
	n.Method = shadow.Method
	n.Params = normalizeParams(shadow.Params)
	return nil
}

// Response is a JSON-RPC 2.0 response envelope. It carries the id of the
// request it answers and exactly one of Result or Error.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      RequestID       `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
}

// NewResponse creates a success response envelope for the given request id.
func NewResponse(id RequestID, result interface{}) (*Response, error) {
	if id.IsZero() {
		return nil, mcperrors.MalformedEnvelope("response requires the request id")
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, mcperrors.Wrap(mcperrors.KindMalformedJSON, "marshal result", err)
	}
	return &Response{JSONRPC: JSONRPCVersion, ID: id, Result: raw}, nil
}

// NewErrorResponse creates an error response envelope for the given request
// id.
func NewErrorResponse(id RequestID, code int, message string, data interface{}) (*Response, error) {
	if id.IsZero() {
		return nil, mcperrors.MalformedEnvelope("error response requires the request id")
	}
	errObj := &ErrorObject{Code: code, Message: message}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, mcperrors.Wrap(mcperrors.KindMalformedJSON, "marshal error data", err)
		}
		errObj.Data = raw
	}
	return &Response{JSONRPC: JSONRPCVersion, ID: id, Error: errObj}, nil
}

// UnmarshalJSON validates the envelope invariants: jsonrpc "2.0", id present
// and of identifier shape, exactly one of result/error.
func (r *Response) UnmarshalJSON(data []byte) error {
	var shadow struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Result  json.RawMessage `json:"result"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return mcperrors.Wrap(mcperrors.KindMalformedEnvelope, "", err)
	}
	if shadow.JSONRPC != JSONRPCVersion {
		return mcperrors.MalformedEnvelope(fmt.Sprintf("jsonrpc must be %q, got %q", JSONRPCVersion, shadow.JSONRPC))
	}
	if shadow.ID == nil {
		return mcperrors.MalformedEnvelope("response missing id")
	}
	hasResult := shadow.Result != nil
	hasError := shadow.Error != nil && !bytes.Equal(bytes.TrimSpace(shadow.Error), []byte("null"))
	if hasResult == hasError {
		return mcperrors.MalformedEnvelope("response must carry exactly one of result and error")
	}
	if err := r.ID.UnmarshalJSON(shadow.ID); err != nil {
		return err
	}
	r.JSONRPC = shadow.JSONRPC
	r.Result = shadow.Result
	if hasError {
		var errObj ErrorObject
		if err := json.Unmarshal(shadow.Error, &errObj); err != nil {
			return mcperrors.Wrap(mcperrors.KindMalformedEnvelope, "error member", err)
		}
		r.Error = &errObj
	}
	return nil
}

// DecodeResult resolves the result member into a typed ServerResult. It
// fails for error responses.
func (r *Response) DecodeResult() (ServerResult, error) {
	if r.Error != nil {
		return nil, r.Error
	}
	return ResolveServerResult(r.Result)
}

// marshalParams renders caller-supplied params, mapping marshal failures to
// the taxonomy.
func marshalParams(params interface{}) (json.RawMessage, error) {
	if params == nil {
		return nil, nil
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, mcperrors.Wrap(mcperrors.KindMalformedJSON, "marshal params", err)
	}
	return raw, nil
}

// normalizeParams treats an explicit JSON null the same as an absent params
// member.
func normalizeParams(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	return raw
}

// IsRequest reports whether the raw message is shaped like a request
// envelope (jsonrpc, id, method).
func IsRequest(data []byte) bool {
	var probe struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Method  string          `json:"method"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.JSONRPC == JSONRPCVersion && probe.ID != nil && probe.Method != ""
}

// IsNotification reports whether the raw message is shaped like a
// notification envelope (jsonrpc, method, no id).
func IsNotification(data []byte) bool {
	var probe struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Method  string          `json:"method"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.JSONRPC == JSONRPCVersion && probe.ID == nil && probe.Method != ""
}

// IsResponse reports whether the raw message is shaped like a response
// envelope (jsonrpc, id, result or error).
func IsResponse(data []byte) bool {
	var probe struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Method  string          `json:"method"`
		Result  json.RawMessage `json:"result"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.JSONRPC == JSONRPCVersion && probe.ID != nil && probe.Method == "" &&
		(probe.Result != nil || probe.Error != nil)
}

// IsBatch reports whether the raw message is a JSON-RPC batch (a top-level
// array).
func IsBatch(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// BatchRequest is an ordered set of request and notification envelopes sent
// as one unit.
type BatchRequest []json.RawMessage

// NewBatchRequest builds a batch from request and notification envelopes.
func NewBatchRequest(items ...interface{}) (BatchRequest, error) {
	if len(items) == 0 {
		return nil, mcperrors.MalformedEnvelope("batch must not be empty")
	}
	batch := make(BatchRequest, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case *Request:
			if v == nil {
				return nil, mcperrors.MalformedEnvelope("nil request in batch")
			}
		case *Notification:
			if v == nil {
				return nil, mcperrors.MalformedEnvelope("nil notification in batch")
			}
		default:
			return nil, mcperrors.MalformedEnvelope(fmt.Sprintf("batch item must be a request or notification, got %T", item))
		}
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, mcperrors.Wrap(mcperrors.KindMalformedJSON, "marshal batch item", err)
		}
		batch = append(batch, raw)
	}
	return batch, nil
}

// Len returns the number of envelopes in the batch.
func (b BatchRequest) Len() int { return len(b) }

// BatchResponse is the ordered set of responses answering a batch request.
type BatchResponse []*Response
