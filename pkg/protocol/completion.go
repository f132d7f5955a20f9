package protocol

import (
	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

// Reference target kinds for completion/complete.
const (
	ReferenceTypeResource = "ref/resource"
	ReferenceTypePrompt   = "ref/prompt"
)

// Reference points at either a resource (by URI) or a prompt (by name),
// discriminated by the "type" field.
type Reference struct {
	Type string `json:"type"`
	URI  string `json:"uri,omitempty"`
	Name string `json:"name,omitempty"`
}

// Validate checks that the reference names a known kind and carries the
// field that kind requires.
func (r *Reference) Validate() error {
	switch r.Type {
	case ReferenceTypeResource:
		if r.URI == "" {
			return mcperrors.New(mcperrors.KindParamsShapeMismatch, "ref/resource requires uri")
		}
	case ReferenceTypePrompt:
		if r.Name == "" {
			return mcperrors.New(mcperrors.KindParamsShapeMismatch, "ref/prompt requires name")
		}
	default:
		return mcperrors.Newf(mcperrors.KindParamsShapeMismatch, "unknown reference type %q", r.Type)
	}
	return nil
}

// CompleteArgument names the argument being completed and its partial value.
type CompleteArgument struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Extra Extras `json:"-"`
}

func (a CompleteArgument) MarshalJSON() ([]byte, error) {
	type plain CompleteArgument
	return marshalExtended(plain(a), a.Extra)
}

func (a *CompleteArgument) UnmarshalJSON(data []byte) error {
	type plain CompleteArgument
	return unmarshalExtended(data, (*plain)(a), &a.Extra)
}

// CompleteParams is the payload of completion/complete.
type CompleteParams struct {
	Meta     *RequestMeta     `json:"_meta,omitempty"`
	Ref      Reference        `json:"ref"`
	Argument CompleteArgument `json:"argument"`
	Extra    Extras           `json:"-"`
}

func (p CompleteParams) MarshalJSON() ([]byte, error) {
	type plain CompleteParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *CompleteParams) UnmarshalJSON(data []byte) error {
	type plain CompleteParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// Validate checks the required fields.
func (p *CompleteParams) Validate() error {
	if err := p.Ref.Validate(); err != nil {
		return err
	}
	if p.Argument.Name == "" {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "completion/complete requires argument.name")
	}
	return nil
}

// CompletionData carries candidate completion values.
type CompletionData struct {
	Values  []string `json:"values"`
	Total   *int64   `json:"total,omitempty"`
	HasMore *bool    `json:"hasMore,omitempty"`
}

// CompleteResult answers completion/complete.
type CompleteResult struct {
	Meta       Meta           `json:"_meta,omitempty"`
	Completion CompletionData `json:"completion"`
	Extra      Extras         `json:"-"`
}

func (r CompleteResult) MarshalJSON() ([]byte, error) {
	type plain CompleteResult
	return marshalExtended(plain(r), r.Extra)
}

func (r *CompleteResult) UnmarshalJSON(data []byte) error {
	type plain CompleteResult
	return unmarshalExtended(data, (*plain)(r), &r.Extra)
}
