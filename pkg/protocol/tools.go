package protocol

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

// Tool describes a callable tool the server offers.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema ToolInputSchema `json:"inputSchema"`
	Extra       Extras          `json:"-"`
}

func (t Tool) MarshalJSON() ([]byte, error) {
	type plain Tool
	return marshalExtended(plain(t), t.Extra)
}

func (t *Tool) UnmarshalJSON(data []byte) error {
	type plain Tool
	return unmarshalExtended(data, (*plain)(t), &t.Extra)
}

// ToolInputSchema carries the JSON Schema describing a tool's arguments.
// The schema is opaque structured data: it is transported, never enforced.
type ToolInputSchema struct {
	Type       string                     `json:"type"`
	Properties map[string]json.RawMessage `json:"properties,omitempty"`
	Required   []string                   `json:"required,omitempty"`
}

// ToolSchemaFor reflects a Go struct into the object schema carried by a
// Tool. The argument is a value (or pointer to a value) of the struct type
// describing the tool's arguments.
func ToolSchemaFor(v interface{}) (ToolInputSchema, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
		Anonymous:      true,
	}
	schema := reflector.Reflect(v)
	raw, err := json.Marshal(schema)
	if err != nil {
		return ToolInputSchema{}, mcperrors.Wrap(mcperrors.KindMalformedJSON, "reflect tool schema", err)
	}
	var out ToolInputSchema
	if err := json.Unmarshal(raw, &out); err != nil {
		return ToolInputSchema{}, mcperrors.Wrap(mcperrors.KindMalformedJSON, "decode tool schema", err)
	}
	if out.Type == "" {
		out.Type = "object"
	}
	return out, nil
}

// CallToolParams is the payload of tools/call.
type CallToolParams struct {
	Meta      *RequestMeta               `json:"_meta,omitempty"`
	Name      string                     `json:"name"`
	Arguments map[string]json.RawMessage `json:"arguments,omitempty"`
	Extra     Extras                     `json:"-"`
}

func (p CallToolParams) MarshalJSON() ([]byte, error) {
	type plain CallToolParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *CallToolParams) UnmarshalJSON(data []byte) error {
	type plain CallToolParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// Validate checks the required fields.
func (p *CallToolParams) Validate() error {
	if p.Name == "" {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "tools/call requires name")
	}
	return nil
}

// CallToolResult answers tools/call. IsError marks a tool-level failure
// surfaced as content rather than a protocol error.
type CallToolResult struct {
	Meta    Meta            `json:"_meta,omitempty"`
	Content []PromptContent `json:"content"`
	IsError *bool           `json:"isError,omitempty"`
	Extra   Extras          `json:"-"`
}

func (r CallToolResult) MarshalJSON() ([]byte, error) {
	type plain CallToolResult
	return marshalExtended(plain(r), r.Extra)
}

func (r *CallToolResult) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Meta    Meta              `json:"_meta"`
		Content []json.RawMessage `json:"content"`
		IsError *bool             `json:"isError"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	content, err := resolvePromptContentList(shadow.Content)
	if err != nil {
		return err
	}
	r.Meta = shadow.Meta
	r.Content = content
	r.IsError = shadow.IsError
	return collectExtras(data, reflect.TypeOf(*r), &r.Extra)
}

// ListToolsResult answers tools/list.
type ListToolsResult struct {
	Meta       Meta   `json:"_meta,omitempty"`
	NextCursor Cursor `json:"nextCursor,omitempty"`
	Tools      []Tool `json:"tools"`
	Extra      Extras `json:"-"`
}

func (r ListToolsResult) MarshalJSON() ([]byte, error) {
	type plain ListToolsResult
	return marshalExtended(plain(r), r.Extra)
}

func (r *ListToolsResult) UnmarshalJSON(data []byte) error {
	type plain ListToolsResult
	return unmarshalExtended(data, (*plain)(r), &r.Extra)
}
