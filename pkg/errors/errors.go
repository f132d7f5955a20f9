// Package errors provides structured error handling for the MCP schema
// module. Every parse or construction failure surfaces as a *ProtocolError
// carrying a Kind from the closed taxonomy and the JSON-RPC error code it
// maps to. Failures are local and non-retryable; nothing here is recovered
// internally.
package errors

import (
	"errors"
	"fmt"
)

// ProtocolError is the error type returned by every operation in this
// module. It satisfies the standard error interfaces: errors.Is matches on
// Kind (via the Kind sentinels below) and errors.Unwrap exposes the cause.
type ProtocolError struct {
	kind   Kind
	detail string
	data   interface{}
	cause  error
}

// New creates a ProtocolError of the given kind with a detail message.
func New(kind Kind, detail string) *ProtocolError {
	return &ProtocolError{kind: kind, detail: detail}
}

// Newf creates a ProtocolError with a formatted detail message.
func Newf(kind Kind, format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{kind: kind, detail: fmt.Sprintf(format, args...)}
}

// Wrap creates a ProtocolError of the given kind caused by err.
func Wrap(kind Kind, detail string, err error) *ProtocolError {
	return &ProtocolError{kind: kind, detail: detail, cause: err}
}

// Kind returns the failure kind.
func (e *ProtocolError) Kind() Kind { return e.kind }

// Code returns the JSON-RPC error code the kind maps to.
func (e *ProtocolError) Code() int { return CodeForKind(e.kind) }

// Detail returns the failure-specific detail message.
func (e *ProtocolError) Detail() string { return e.detail }

// Data returns structured data attached to the error, if any.
func (e *ProtocolError) Data() interface{} { return e.data }

// WithData returns a copy of the error with structured data attached.
func (e *ProtocolError) WithData(data interface{}) *ProtocolError {
	clone := *e
	clone.data = data
	return &clone
}

func (e *ProtocolError) Error() string {
	msg := Info(e.kind).Description
	if e.detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.detail)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *ProtocolError) Unwrap() error { return e.cause }

// Is reports kind equality so that errors.Is(err, ErrUnsupportedMethod)
// style checks work without comparing details.
func (e *ProtocolError) Is(target error) bool {
	var pe *ProtocolError
	if errors.As(target, &pe) {
		return pe.kind == e.kind && pe.detail == ""
	}
	return false
}

// Kind sentinels for errors.Is matching.
var (
	ErrMalformedJSON          = New(KindMalformedJSON, "")
	ErrMalformedEnvelope      = New(KindMalformedEnvelope, "")
	ErrInvalidIdentifierShape = New(KindInvalidIdentifierShape, "")
	ErrUnsupportedMethod      = New(KindUnsupportedMethod, "")
	ErrParamsShapeMismatch    = New(KindParamsShapeMismatch, "")
	ErrUnknownContentVariant  = New(KindUnknownContentVariant, "")
	ErrNoMatchingResultShape  = New(KindNoMatchingResultShape, "")
	ErrFieldCollision         = New(KindFieldCollision, "")
)

// KindOf returns the kind carried by err, or the empty kind when err is not
// a ProtocolError.
func KindOf(err error) Kind {
	var pe *ProtocolError
	if errors.As(err, &pe) {
		return pe.kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Constructors for the taxonomy. Each names the failing input rather than
// the rule, so callers get actionable messages.

// MalformedJSON wraps a json decoding failure.
func MalformedJSON(err error) *ProtocolError {
	return Wrap(KindMalformedJSON, "", err)
}

// MalformedEnvelope reports a structurally invalid JSON-RPC envelope.
func MalformedEnvelope(detail string) *ProtocolError {
	return New(KindMalformedEnvelope, detail)
}

// InvalidIdentifierShape reports an id value of the wrong JSON kind.
func InvalidIdentifierShape(got string) *ProtocolError {
	return Newf(KindInvalidIdentifierShape, "got %s", got)
}

// UnsupportedMethod reports a method outside the closed enumeration.
func UnsupportedMethod(method string) *ProtocolError {
	return Newf(KindUnsupportedMethod, "%q", method).WithData(map[string]string{"method": method})
}

// ParamsShapeMismatch reports params that fail a payload type's shape.
func ParamsShapeMismatch(method string, err error) *ProtocolError {
	return Wrap(KindParamsShapeMismatch, fmt.Sprintf("method %q", method), err)
}

// MissingParams reports an absent params object for a method that requires one.
func MissingParams(method string) *ProtocolError {
	return Newf(KindParamsShapeMismatch, "method %q requires params", method)
}

// UnknownContentVariant reports a content object matching no union variant.
func UnknownContentVariant(union, discriminator string) *ProtocolError {
	return Newf(KindUnknownContentVariant, "%s has no variant for %s", union, discriminator)
}

// NoMatchingResultShape reports a result satisfying none of the known shapes.
func NoMatchingResultShape() *ProtocolError {
	return New(KindNoMatchingResultShape, "")
}

// FieldCollision reports an extra-map key shadowing a declared field.
func FieldCollision(key string) *ProtocolError {
	return Newf(KindFieldCollision, "key %q", key)
}
