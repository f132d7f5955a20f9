package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
	"github.com/ajitpratap0/mcp-schema-go/pkg/protocol"
)

// TestLogger tests the basic logger functionality
func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, NewTextFormatter())
	logger.SetLevel(DebugLevel) // Enable debug logging

	logger.Debug("Debug message", String("key", "value"))
	logger.Info("Info message", Int("count", 42))
	logger.Warn("Warning message", Bool("flag", true))
	logger.Error("Error message", ErrorField(errors.New("test error")))

	output := buf.String()

	if !strings.Contains(output, "Debug message") {
		t.Error("Expected debug message in output")
	}
	if !strings.Contains(output, "Info message") {
		t.Error("Expected info message in output")
	}
	if !strings.Contains(output, "Warning message") {
		t.Error("Expected warning message in output")
	}
	if !strings.Contains(output, "Error message") {
		t.Error("Expected error message in output")
	}

	if !strings.Contains(output, "key=value") {
		t.Error("Expected key=value in output")
	}
	if !strings.Contains(output, "count=42") {
		t.Error("Expected count=42 in output")
	}
	if !strings.Contains(output, "flag=true") {
		t.Error("Expected flag=true in output")
	}
	if !strings.Contains(output, "error=test error") {
		t.Error("Expected error=test error in output")
	}
}

// TestLogLevels tests log level filtering
func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, NewTextFormatter())

	logger.SetLevel(WarnLevel)

	logger.Debug("Debug message")
	logger.Info("Info message")
	logger.Warn("Warning message")
	logger.Error("Error message")

	output := buf.String()

	if strings.Contains(output, "Debug message") {
		t.Error("Debug message should be filtered out")
	}
	if strings.Contains(output, "Info message") {
		t.Error("Info message should be filtered out")
	}
	if !strings.Contains(output, "Warning message") {
		t.Error("Warning message should be logged")
	}
	if !strings.Contains(output, "Error message") {
		t.Error("Error message should be logged")
	}
}

// TestWithFields tests field inheritance
func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, NewTextFormatter())

	childLogger := logger.WithFields(String("service", "schema"))
	childLogger.Info("Child message", String("extra", "field"))

	output := buf.String()
	if !strings.Contains(output, "service=schema") {
		t.Error("Expected inherited field in output")
	}
	if !strings.Contains(output, "extra=field") {
		t.Error("Expected extra field in output")
	}
}

// TestWithContext tests request ID propagation
func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, NewTextFormatter())

	ctx := ContextWithRequestID(context.Background(), "req-99")
	logger.WithContext(ctx).Info("Handled")

	if !strings.Contains(buf.String(), "[req-99]") {
		t.Error("Expected request ID in output")
	}
}

// TestWithError tests protocol error enrichment
func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, NewJSONFormatter())

	logger.WithError(mcperrors.UnsupportedMethod("bogus/method")).Error("Decode failed")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to decode JSON output: %v", err)
	}

	if entry["error_kind"] != string(mcperrors.KindUnsupportedMethod) {
		t.Errorf("Expected error_kind %q, got %v", mcperrors.KindUnsupportedMethod, entry["error_kind"])
	}
	if int(entry["rpc_code"].(float64)) != mcperrors.CodeMethodNotFound {
		t.Errorf("Expected rpc_code %d, got %v", mcperrors.CodeMethodNotFound, entry["rpc_code"])
	}
}

// TestWithErrorPlain tests that non-protocol errors stay unenriched
func TestWithErrorPlain(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, NewJSONFormatter())

	logger.WithError(errors.New("plain")).Error("Failed")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to decode JSON output: %v", err)
	}
	if _, ok := entry["error_kind"]; ok {
		t.Error("Did not expect error_kind for a plain error")
	}
}

// TestLevelWireMapping tests the level bridges in both directions
func TestLevelWireMapping(t *testing.T) {
	tests := []struct {
		wire protocol.LoggingLevel
		want Level
	}{
		{protocol.LoggingLevelDebug, DebugLevel},
		{protocol.LoggingLevelInfo, InfoLevel},
		{protocol.LoggingLevelNotice, InfoLevel},
		{protocol.LoggingLevelWarning, WarnLevel},
		{protocol.LoggingLevelError, ErrorLevel},
		{protocol.LoggingLevelEmergency, ErrorLevel},
	}
	for _, tt := range tests {
		if got := LevelFromWire(tt.wire); got != tt.want {
			t.Errorf("LevelFromWire(%s) = %v, want %v", tt.wire, got, tt.want)
		}
	}

	if LevelToWire(WarnLevel) != protocol.LoggingLevelWarning {
		t.Error("Expected WarnLevel to map to warning")
	}
	if LevelToWire(DebugLevel) != protocol.LoggingLevelDebug {
		t.Error("Expected DebugLevel to map to debug")
	}
}

// TestWireAdapter tests log forwarding over notifications/message
func TestWireAdapter(t *testing.T) {
	var got []*protocol.LoggingMessageParams
	adapter := NewWireAdapter("schema", func(p *protocol.LoggingMessageParams) {
		got = append(got, p)
	})

	// Below the default info threshold
	if err := adapter.Debug("dropped"); err != nil {
		t.Fatalf("Debug failed: %v", err)
	}
	if err := adapter.Error("kept"); err != nil {
		t.Fatalf("Error failed: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("Expected 1 forwarded payload, got %d", len(got))
	}
	if got[0].Level != protocol.LoggingLevelError {
		t.Errorf("Expected error level, got %s", got[0].Level)
	}
	if got[0].Logger != "schema" {
		t.Errorf("Expected logger name 'schema', got %q", got[0].Logger)
	}

	// Raise the threshold via a setLevel payload
	if err := adapter.SetLevel(&protocol.SetLevelParams{Level: protocol.LoggingLevelCritical}); err != nil {
		t.Fatalf("SetLevel failed: %v", err)
	}
	if err := adapter.Error("now dropped"); err != nil {
		t.Fatalf("Error failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Expected threshold to drop the second payload, got %d", len(got))
	}

	// Invalid levels are rejected by the payload validator
	if err := adapter.SetLevel(&protocol.SetLevelParams{Level: "verbose"}); err == nil {
		t.Error("Expected SetLevel to reject an unknown level")
	}
}
