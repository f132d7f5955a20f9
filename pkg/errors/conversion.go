package errors

import (
	"errors"
)

// JSONRPCError is the wire representation of a JSON-RPC error object as
// produced from a ProtocolError. The protocol package defines the envelope
// it travels in; this type exists so transports can surface schema failures
// without importing the full message model.
type JSONRPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ToJSONRPCError converts any error into a wire error object. ProtocolErrors
// keep their mapped code and attached data; everything else becomes an
// internal error.
func ToJSONRPCError(err error) *JSONRPCError {
	var pe *ProtocolError
	if errors.As(err, &pe) {
		msg := Info(pe.Kind()).Description
		if pe.Detail() != "" {
			msg = msg + ": " + pe.Detail()
		}
		return &JSONRPCError{
			Code:    pe.Code(),
			Message: msg,
			Data:    pe.Data(),
		}
	}
	return &JSONRPCError{
		Code:    CodeInternalError,
		Message: err.Error(),
	}
}
