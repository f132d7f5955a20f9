package protocol

import (
	"encoding/json"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

// Prompt describes a prompt or prompt template the server offers.
type Prompt struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Arguments   []PromptArgument `json:"arguments,omitempty"`
	Extra       Extras           `json:"-"`
}

func (p Prompt) MarshalJSON() ([]byte, error) {
	type plain Prompt
	return marshalExtended(plain(p), p.Extra)
}

func (p *Prompt) UnmarshalJSON(data []byte) error {
	type plain Prompt
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// PromptArgument describes one argument a prompt accepts.
type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    *bool  `json:"required,omitempty"`
	Extra       Extras `json:"-"`
}

func (a PromptArgument) MarshalJSON() ([]byte, error) {
	type plain PromptArgument
	return marshalExtended(plain(a), a.Extra)
}

func (a *PromptArgument) UnmarshalJSON(data []byte) error {
	type plain PromptArgument
	return unmarshalExtended(data, (*plain)(a), &a.Extra)
}

// PromptMessage is one message of a rendered prompt.
type PromptMessage struct {
	Role    Role          `json:"role"`
	Content PromptContent `json:"content"`
}

func (m *PromptMessage) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Role    Role            `json:"role"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	if shadow.Content == nil {
		return mcperrors.UnknownContentVariant("PromptContent", "missing content")
	}
	content, err := ResolvePromptContent(shadow.Content)
	if err != nil {
		return err
	}
	m.Role = shadow.Role
	m.Content = content
	return nil
}

// GetPromptParams is the payload of prompts/get.
type GetPromptParams struct {
	Meta      *RequestMeta      `json:"_meta,omitempty"`
	Name      string            `json:"name"`
	Arguments map[string]string `json:"arguments,omitempty"`
	Extra     Extras            `json:"-"`
}

func (p GetPromptParams) MarshalJSON() ([]byte, error) {
	type plain GetPromptParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *GetPromptParams) UnmarshalJSON(data []byte) error {
	type plain GetPromptParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// Validate checks the required fields.
func (p *GetPromptParams) Validate() error {
	if p.Name == "" {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "prompts/get requires name")
	}
	return nil
}

// GetPromptResult answers prompts/get.
type GetPromptResult struct {
	Meta        Meta            `json:"_meta,omitempty"`
	Description string          `json:"description,omitempty"`
	Messages    []PromptMessage `json:"messages"`
	Extra       Extras          `json:"-"`
}

func (r GetPromptResult) MarshalJSON() ([]byte, error) {
	type plain GetPromptResult
	return marshalExtended(plain(r), r.Extra)
}

func (r *GetPromptResult) UnmarshalJSON(data []byte) error {
	type plain GetPromptResult
	return unmarshalExtended(data, (*plain)(r), &r.Extra)
}

// ListPromptsResult answers prompts/list.
type ListPromptsResult struct {
	Meta       Meta     `json:"_meta,omitempty"`
	NextCursor Cursor   `json:"nextCursor,omitempty"`
	Prompts    []Prompt `json:"prompts"`
	Extra      Extras   `json:"-"`
}

func (r ListPromptsResult) MarshalJSON() ([]byte, error) {
	type plain ListPromptsResult
	return marshalExtended(plain(r), r.Extra)
}

func (r *ListPromptsResult) UnmarshalJSON(data []byte) error {
	type plain ListPromptsResult
	return unmarshalExtended(data, (*plain)(r), &r.Extra)
}
