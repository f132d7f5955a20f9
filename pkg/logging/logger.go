// Package logging provides structured logging for the MCP schema module.
// It supports multiple output formats, log levels, and integration with the
// protocol error taxonomy.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
	"github.com/ajitpratap0/mcp-schema-go/pkg/protocol"
)

// Level represents the severity of a log message
type Level int

const (
	// DebugLevel is for detailed information useful for debugging
	DebugLevel Level = iota - 1
	// InfoLevel is for general informational messages
	InfoLevel
	// WarnLevel is for warning messages
	WarnLevel
	// ErrorLevel is for error messages
	ErrorLevel
	// FatalLevel is for fatal errors that will terminate the program
	FatalLevel
)

// String returns the string representation of a log level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// LevelFromWire maps a protocol logging level onto the logger's levels. The
// wire carries the eight syslog severities; everything above error collapses
// into ErrorLevel.
func LevelFromWire(l protocol.LoggingLevel) Level {
	switch l {
	case protocol.LoggingLevelDebug:
		return DebugLevel
	case protocol.LoggingLevelInfo, protocol.LoggingLevelNotice:
		return InfoLevel
	case protocol.LoggingLevelWarning:
		return WarnLevel
	default:
		return ErrorLevel
	}
}

// LevelToWire maps a logger level back onto the protocol's severities.
func LevelToWire(l Level) protocol.LoggingLevel {
	switch l {
	case DebugLevel:
		return protocol.LoggingLevelDebug
	case InfoLevel:
		return protocol.LoggingLevelInfo
	case WarnLevel:
		return protocol.LoggingLevelWarning
	case FatalLevel:
		return protocol.LoggingLevelCritical
	default:
		return protocol.LoggingLevelError
	}
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean field
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// ErrorField creates an error field
func ErrorField(err error) Field {
	return Field{Key: "error", Value: err}
}

// Duration creates a duration field
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Time creates a time field
func Time(key string, value time.Time) Field {
	return Field{Key: key, Value: value}
}

// Any creates a field with any value
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger is the interface for structured logging
type Logger interface {
	// Debug logs a debug message with fields
	Debug(msg string, fields ...Field)
	// Info logs an info message with fields
	Info(msg string, fields ...Field)
	// Warn logs a warning message with fields
	Warn(msg string, fields ...Field)
	// Error logs an error message with fields
	Error(msg string, fields ...Field)
	// Fatal logs a fatal message with fields and exits
	Fatal(msg string, fields ...Field)

	// WithFields returns a new logger with additional fields
	WithFields(fields ...Field) Logger
	// WithContext returns a new logger with context fields
	WithContext(ctx context.Context) Logger
	// WithError returns a new logger with error context
	WithError(err error) Logger

	// SetLevel sets the minimum log level
	SetLevel(level Level)
	// GetLevel returns the current log level
	GetLevel() Level
}

// Entry represents a log entry
type Entry struct {
	Level     Level
	Message   string
	Fields    map[string]interface{}
	Timestamp time.Time
	RequestID string
	Method    string
	Direction string
}

// Formatter formats log entries
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// baseLogger is the base implementation of Logger
type baseLogger struct {
	mu         sync.RWMutex
	level      Level
	output     io.Writer
	formatter  Formatter
	fields     map[string]interface{}
	requestKey string
}

// New creates a new structured logger
func New(output io.Writer, formatter Formatter) Logger {
	if output == nil {
		output = os.Stdout
	}
	if formatter == nil {
		formatter = NewTextFormatter()
	}

	return &baseLogger{
		level:      InfoLevel,
		output:     output,
		formatter:  formatter,
		fields:     make(map[string]interface{}),
		requestKey: "request_id",
	}
}

// Debug logs a debug message
func (l *baseLogger) Debug(msg string, fields ...Field) {
	l.log(DebugLevel, msg, fields...)
}

// Info logs an info message
func (l *baseLogger) Info(msg string, fields ...Field) {
	l.log(InfoLevel, msg, fields...)
}

// Warn logs a warning message
func (l *baseLogger) Warn(msg string, fields ...Field) {
	l.log(WarnLevel, msg, fields...)
}

// Error logs an error message
func (l *baseLogger) Error(msg string, fields ...Field) {
	l.log(ErrorLevel, msg, fields...)
}

// Fatal logs a fatal message and exits
func (l *baseLogger) Fatal(msg string, fields ...Field) {
	l.log(FatalLevel, msg, fields...)
	os.Exit(1)
}

// WithFields returns a new logger with additional fields
func (l *baseLogger) WithFields(fields ...Field) Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	newFields := make(map[string]interface{})
	for k, v := range l.fields {
		newFields[k] = v
	}

	for _, field := range fields {
		newFields[field.Key] = field.Value
	}

	return &baseLogger{
		level:      l.level,
		output:     l.output,
		formatter:  l.formatter,
		fields:     newFields,
		requestKey: l.requestKey,
	}
}

// WithContext returns a new logger with context fields
func (l *baseLogger) WithContext(ctx context.Context) Logger {
	fields := []Field{}

	if requestID := RequestIDFromContext(ctx); requestID != "" {
		fields = append(fields, String(l.requestKey, requestID))
	}

	return l.WithFields(fields...)
}

// WithError returns a new logger with error context. Protocol errors
// contribute their kind and the JSON-RPC code they map to.
func (l *baseLogger) WithError(err error) Logger {
	fields := []Field{ErrorField(err)}

	if kind := mcperrors.KindOf(err); kind != "" {
		fields = append(fields,
			String("error_kind", string(kind)),
			Int("rpc_code", mcperrors.CodeForKind(kind)),
		)
	}

	return l.WithFields(fields...)
}

// SetLevel sets the minimum log level
func (l *baseLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current log level
func (l *baseLogger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// log writes a log entry
func (l *baseLogger) log(level Level, msg string, fields ...Field) {
	l.mu.RLock()
	if level < l.level {
		l.mu.RUnlock()
		return
	}
	l.mu.RUnlock()

	entry := &Entry{
		Level:     level,
		Message:   msg,
		Fields:    make(map[string]interface{}),
		Timestamp: time.Now(),
	}

	l.mu.RLock()
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	l.mu.RUnlock()

	for _, field := range fields {
		entry.Fields[field.Key] = field.Value
	}

	// Extract special fields
	if requestID, ok := entry.Fields[l.requestKey].(string); ok {
		entry.RequestID = requestID
	}
	if method, ok := entry.Fields["method"].(string); ok {
		entry.Method = method
	}
	if direction, ok := entry.Fields["direction"].(string); ok {
		entry.Direction = direction
	}

	data, err := l.formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to format log entry: %v\n", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.output.Write(data); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write log entry: %v\n", err)
	}
}

type contextKey string

const requestIDKey contextKey = "request_id"

// ContextWithRequestID returns a context with a request ID
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from a context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
