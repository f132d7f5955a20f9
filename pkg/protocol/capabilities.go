package protocol

import (
	"encoding/json"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

// ClientCapabilities is the feature set a client advertises during
// initialization. Unknown capability groups survive in Extra.
type ClientCapabilities struct {
	Experimental map[string]json.RawMessage `json:"experimental,omitempty"`
	Roots        *RootsCapability           `json:"roots,omitempty"`
	Sampling     map[string]json.RawMessage `json:"sampling,omitempty"`
	Extra        Extras                     `json:"-"`
}

func (c ClientCapabilities) MarshalJSON() ([]byte, error) {
	type plain ClientCapabilities
	return marshalExtended(plain(c), c.Extra)
}

func (c *ClientCapabilities) UnmarshalJSON(data []byte) error {
	type plain ClientCapabilities
	return unmarshalExtended(data, (*plain)(c), &c.Extra)
}

// ServerCapabilities is the feature set a server advertises during
// initialization.
type ServerCapabilities struct {
	Experimental map[string]json.RawMessage `json:"experimental,omitempty"`
	Logging      map[string]json.RawMessage `json:"logging,omitempty"`
	Prompts      *PromptsCapability         `json:"prompts,omitempty"`
	Resources    *ResourcesCapability       `json:"resources,omitempty"`
	Tools        *ToolsCapability           `json:"tools,omitempty"`
	Extra        Extras                     `json:"-"`
}

func (c ServerCapabilities) MarshalJSON() ([]byte, error) {
	type plain ServerCapabilities
	return marshalExtended(plain(c), c.Extra)
}

func (c *ServerCapabilities) UnmarshalJSON(data []byte) error {
	type plain ServerCapabilities
	return unmarshalExtended(data, (*plain)(c), &c.Extra)
}

// RootsCapability configures the roots feature.
type RootsCapability struct {
	ListChanged *bool `json:"listChanged,omitempty"`
}

// PromptsCapability configures the prompts feature.
type PromptsCapability struct {
	ListChanged *bool `json:"listChanged,omitempty"`
}

// ResourcesCapability configures the resources feature.
type ResourcesCapability struct {
	Subscribe   *bool `json:"subscribe,omitempty"`
	ListChanged *bool `json:"listChanged,omitempty"`
}

// ToolsCapability configures the tools feature.
type ToolsCapability struct {
	ListChanged *bool `json:"listChanged,omitempty"`
}

// InitializeParams is the payload of the initialize request.
type InitializeParams struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ClientCapabilities `json:"capabilities"`
	ClientInfo      Implementation     `json:"clientInfo"`
}

// Validate checks the required fields.
func (p *InitializeParams) Validate() error {
	if p.ProtocolVersion == "" {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "initialize requires protocolVersion")
	}
	if p.ClientInfo.Name == "" {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "initialize requires clientInfo.name")
	}
	return nil
}

// InitializeResult is the server's answer to initialize.
type InitializeResult struct {
	Meta            Meta               `json:"_meta,omitempty"`
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      Implementation     `json:"serverInfo"`
	Instructions    string             `json:"instructions,omitempty"`
	Extra           Extras             `json:"-"`
}

func (r InitializeResult) MarshalJSON() ([]byte, error) {
	type plain InitializeResult
	return marshalExtended(plain(r), r.Extra)
}

func (r *InitializeResult) UnmarshalJSON(data []byte) error {
	type plain InitializeResult
	return unmarshalExtended(data, (*plain)(r), &r.Extra)
}
