package logging

import (
	"encoding/json"
	"sync"

	"github.com/ajitpratap0/mcp-schema-go/pkg/protocol"
)

// NotificationSink receives the wire payload of a notifications/message for
// delivery to the connected client.
type NotificationSink func(params *protocol.LoggingMessageParams)

// WireAdapter forwards log entries to a client as notifications/message
// payloads, honoring the threshold set by logging/setLevel. Entries below
// the threshold are dropped silently.
type WireAdapter struct {
	mu     sync.RWMutex
	level  protocol.LoggingLevel
	logger string
	sink   NotificationSink
}

// NewWireAdapter creates an adapter that emits payloads named after logger.
// The initial threshold is info.
func NewWireAdapter(logger string, sink NotificationSink) *WireAdapter {
	return &WireAdapter{
		level:  protocol.LoggingLevelInfo,
		logger: logger,
		sink:   sink,
	}
}

// SetLevel applies a logging/setLevel request to the adapter.
func (a *WireAdapter) SetLevel(params *protocol.SetLevelParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	a.mu.Lock()
	a.level = params.Level
	a.mu.Unlock()
	return nil
}

// Level returns the current threshold.
func (a *WireAdapter) Level() protocol.LoggingLevel {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.level
}

// Emit forwards a message at the given severity if it clears the threshold.
// The data value is marshaled into the payload as-is.
func (a *WireAdapter) Emit(level protocol.LoggingLevel, data interface{}) error {
	if !protocol.IsValidLoggingLevel(level) {
		level = protocol.LoggingLevelInfo
	}
	a.mu.RLock()
	threshold := a.level
	a.mu.RUnlock()
	if severityRank(level) < severityRank(threshold) {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	a.sink(&protocol.LoggingMessageParams{
		Level:  level,
		Logger: a.logger,
		Data:   raw,
	})
	return nil
}

// Debug emits a debug-severity payload.
func (a *WireAdapter) Debug(data interface{}) error {
	return a.Emit(protocol.LoggingLevelDebug, data)
}

// Info emits an info-severity payload.
func (a *WireAdapter) Info(data interface{}) error {
	return a.Emit(protocol.LoggingLevelInfo, data)
}

// Warning emits a warning-severity payload.
func (a *WireAdapter) Warning(data interface{}) error {
	return a.Emit(protocol.LoggingLevelWarning, data)
}

// Error emits an error-severity payload.
func (a *WireAdapter) Error(data interface{}) error {
	return a.Emit(protocol.LoggingLevelError, data)
}

// severityRank orders the wire levels from debug (lowest) to emergency.
func severityRank(l protocol.LoggingLevel) int {
	switch l {
	case protocol.LoggingLevelDebug:
		return 0
	case protocol.LoggingLevelInfo:
		return 1
	case protocol.LoggingLevelNotice:
		return 2
	case protocol.LoggingLevelWarning:
		return 3
	case protocol.LoggingLevelError:
		return 4
	case protocol.LoggingLevelCritical:
		return 5
	case protocol.LoggingLevelAlert:
		return 6
	case protocol.LoggingLevelEmergency:
		return 7
	default:
		return 1
	}
}
