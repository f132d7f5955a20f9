package errors

// JSON-RPC 2.0 standard error codes. These are the values that appear in the
// "code" member of a wire error object.
const (
	// CodeParseError indicates the message bytes were not valid JSON
	CodeParseError int = -32700

	// CodeInvalidRequest indicates the JSON was valid but not a valid envelope
	CodeInvalidRequest int = -32600

	// CodeMethodNotFound indicates the method does not exist / is not available
	CodeMethodNotFound int = -32601

	// CodeInvalidParams indicates invalid method parameter(s)
	CodeInvalidParams int = -32602

	// CodeInternalError indicates an internal JSON-RPC error
	CodeInternalError int = -32603
)

// Kind classifies a schema failure. Every error produced by this module
// carries exactly one kind; a message either fully parses into one typed
// variant or fails as a whole with one of these.
type Kind string

const (
	// KindMalformedJSON: the byte sequence is not valid JSON.
	KindMalformedJSON Kind = "malformed_json"

	// KindMalformedEnvelope: jsonrpc != "2.0", a request without an id, a
	// notification with an id, or a response carrying both or neither of
	// result/error.
	KindMalformedEnvelope Kind = "malformed_envelope"

	// KindInvalidIdentifierShape: an id or progress token that is neither a
	// JSON string nor a 64-bit integer.
	KindInvalidIdentifierShape Kind = "invalid_identifier_shape"

	// KindUnsupportedMethod: a method string outside the closed enumeration.
	KindUnsupportedMethod Kind = "unsupported_method"

	// KindParamsShapeMismatch: params present but missing required fields of
	// the method's payload type, or absent for a method that requires them.
	KindParamsShapeMismatch Kind = "params_shape_mismatch"

	// KindUnknownContentVariant: a content object whose discriminator matches
	// no variant of its union.
	KindUnknownContentVariant Kind = "unknown_content_variant"

	// KindNoMatchingResultShape: a result object satisfying none of the known
	// result shapes.
	KindNoMatchingResultShape Kind = "no_matching_result_shape"

	// KindFieldCollision: an extra-map key shadowing a declared field name at
	// serialization time.
	KindFieldCollision Kind = "field_collision"
)

// KindInfo provides human-readable information about a failure kind.
type KindInfo struct {
	Kind        Kind
	Code        int
	Description string
}

// kindRegistry maps each kind to its JSON-RPC code and description.
var kindRegistry = map[Kind]KindInfo{
	KindMalformedJSON:          {KindMalformedJSON, CodeParseError, "message is not valid JSON"},
	KindMalformedEnvelope:      {KindMalformedEnvelope, CodeInvalidRequest, "not a valid JSON-RPC 2.0 envelope"},
	KindInvalidIdentifierShape: {KindInvalidIdentifierShape, CodeInvalidRequest, "identifier is neither a string nor an integer"},
	KindUnsupportedMethod:      {KindUnsupportedMethod, CodeMethodNotFound, "method is not part of the protocol revision"},
	KindParamsShapeMismatch:    {KindParamsShapeMismatch, CodeInvalidParams, "params do not satisfy the method's payload shape"},
	KindUnknownContentVariant:  {KindUnknownContentVariant, CodeInvalidParams, "content matches no known variant"},
	KindNoMatchingResultShape:  {KindNoMatchingResultShape, CodeInternalError, "result matches no known shape"},
	KindFieldCollision:         {KindFieldCollision, CodeInvalidRequest, "extra field shadows a declared field"},
}

// Info returns the registry entry for a kind. Unregistered kinds map to an
// internal error code.
func Info(k Kind) KindInfo {
	if info, ok := kindRegistry[k]; ok {
		return info
	}
	return KindInfo{Kind: k, Code: CodeInternalError, Description: "unknown failure kind"}
}

// CodeForKind returns the JSON-RPC error code a kind maps to.
func CodeForKind(k Kind) int {
	return Info(k).Code
}
