package protocol

import (
	"bytes"
	"encoding/json"
	"reflect"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

// ServerResult is the union of every result shape a server can return.
// The wire carries no discriminator, so decoding resolves the variant by
// structural trial in a fixed order.
type ServerResult interface{ serverResult() }

func (*InitializeResult) serverResult()            {}
func (*CompleteResult) serverResult()              {}
func (*GetPromptResult) serverResult()             {}
func (*ListPromptsResult) serverResult()           {}
func (*ListResourcesResult) serverResult()         {}
func (*ListResourceTemplatesResult) serverResult() {}
func (*ReadResourceResult) serverResult()          {}
func (*CallToolResult) serverResult()              {}
func (*ListToolsResult) serverResult()             {}
func (*ElicitResult) serverResult()                {}
func (*EmptyResult) serverResult()                 {}

// resultShape names the members whose presence selects a variant. A shape
// matches when all of its required keys are present. EmptyResult has no
// required keys and therefore matches anything, so it is tried last.
type resultShape struct {
	requiredKeys []string
	resultType   reflect.Type
}

var resultShapes = []resultShape{
	{[]string{"protocolVersion", "capabilities", "serverInfo"}, reflect.TypeOf(&InitializeResult{})},
	{[]string{"completion"}, reflect.TypeOf(&CompleteResult{})},
	{[]string{"messages"}, reflect.TypeOf(&GetPromptResult{})},
	{[]string{"prompts"}, reflect.TypeOf(&ListPromptsResult{})},
	{[]string{"resources"}, reflect.TypeOf(&ListResourcesResult{})},
	{[]string{"resourceTemplates"}, reflect.TypeOf(&ListResourceTemplatesResult{})},
	{[]string{"contents"}, reflect.TypeOf(&ReadResourceResult{})},
	{[]string{"content"}, reflect.TypeOf(&CallToolResult{})},
	{[]string{"tools"}, reflect.TypeOf(&ListToolsResult{})},
	{[]string{"action"}, reflect.TypeOf(&ElicitResult{})},
	{nil, reflect.TypeOf(&EmptyResult{})},
}

// ResolveServerResult decodes a raw result member into the first variant
// whose required keys it carries.
func ResolveServerResult(raw json.RawMessage) (ServerResult, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, mcperrors.NoMatchingResultShape()
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, mcperrors.NoMatchingResultShape()
	}
	for _, shape := range resultShapes {
		if !hasAllKeys(probe, shape.requiredKeys) {
			continue
		}
		target := reflect.New(shape.resultType.Elem()).Interface()
		if err := json.Unmarshal(raw, target); err != nil {
			return nil, err
		}
		return target.(ServerResult), nil
	}
	return nil, mcperrors.NoMatchingResultShape()
}

func hasAllKeys(probe map[string]json.RawMessage, keys []string) bool {
	for _, k := range keys {
		if _, ok := probe[k]; !ok {
			return false
		}
	}
	return true
}
