package protocol

import (
	"encoding/json"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

// LoggingLevel is a syslog-style message severity.
type LoggingLevel string

const (
	LoggingLevelDebug     LoggingLevel = "debug"
	LoggingLevelInfo      LoggingLevel = "info"
	LoggingLevelNotice    LoggingLevel = "notice"
	LoggingLevelWarning   LoggingLevel = "warning"
	LoggingLevelError     LoggingLevel = "error"
	LoggingLevelCritical  LoggingLevel = "critical"
	LoggingLevelAlert     LoggingLevel = "alert"
	LoggingLevelEmergency LoggingLevel = "emergency"
)

// IsValidLoggingLevel reports whether l is one of the protocol levels.
func IsValidLoggingLevel(l LoggingLevel) bool {
	switch l {
	case LoggingLevelDebug, LoggingLevelInfo, LoggingLevelNotice, LoggingLevelWarning,
		LoggingLevelError, LoggingLevelCritical, LoggingLevelAlert, LoggingLevelEmergency:
		return true
	}
	return false
}

// SetLevelParams is the payload of logging/setLevel.
type SetLevelParams struct {
	Meta  *RequestMeta `json:"_meta,omitempty"`
	Level LoggingLevel `json:"level"`
	Extra Extras       `json:"-"`
}

func (p SetLevelParams) MarshalJSON() ([]byte, error) {
	type plain SetLevelParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *SetLevelParams) UnmarshalJSON(data []byte) error {
	type plain SetLevelParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// Validate checks the required fields.
func (p *SetLevelParams) Validate() error {
	if !IsValidLoggingLevel(p.Level) {
		return mcperrors.Newf(mcperrors.KindParamsShapeMismatch, "logging/setLevel requires a valid level, got %q", p.Level)
	}
	return nil
}

// LoggingMessageParams is the payload of notifications/message.
type LoggingMessageParams struct {
	Level  LoggingLevel    `json:"level"`
	Logger string          `json:"logger,omitempty"`
	Data   json.RawMessage `json:"data"`
	Extra  Extras          `json:"-"`
}

func (p LoggingMessageParams) MarshalJSON() ([]byte, error) {
	type plain LoggingMessageParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *LoggingMessageParams) UnmarshalJSON(data []byte) error {
	type plain LoggingMessageParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// Validate checks the required fields.
func (p *LoggingMessageParams) Validate() error {
	if !IsValidLoggingLevel(p.Level) {
		return mcperrors.Newf(mcperrors.KindParamsShapeMismatch, "notifications/message requires a valid level, got %q", p.Level)
	}
	if len(p.Data) == 0 {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "notifications/message requires data")
	}
	return nil
}
