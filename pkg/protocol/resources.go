package protocol

import (
	"encoding/json"
	"reflect"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

// Resource describes something the server can read at a URI.
type Resource struct {
	URI         string       `json:"uri"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	MimeType    string       `json:"mimeType,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	Extra       Extras       `json:"-"`
}

func (r Resource) MarshalJSON() ([]byte, error) {
	type plain Resource
	return marshalExtended(plain(r), r.Extra)
}

func (r *Resource) UnmarshalJSON(data []byte) error {
	type plain Resource
	return unmarshalExtended(data, (*plain)(r), &r.Extra)
}

// ResourceTemplate describes a parameterized family of resources.
type ResourceTemplate struct {
	URITemplate string       `json:"uriTemplate"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	MimeType    string       `json:"mimeType,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	Extra       Extras       `json:"-"`
}

func (r ResourceTemplate) MarshalJSON() ([]byte, error) {
	type plain ResourceTemplate
	return marshalExtended(plain(r), r.Extra)
}

func (r *ResourceTemplate) UnmarshalJSON(data []byte) error {
	type plain ResourceTemplate
	return unmarshalExtended(data, (*plain)(r), &r.Extra)
}

// ListResourcesResult answers resources/list.
type ListResourcesResult struct {
	Meta       Meta       `json:"_meta,omitempty"`
	NextCursor Cursor     `json:"nextCursor,omitempty"`
	Resources  []Resource `json:"resources"`
	Extra      Extras     `json:"-"`
}

func (r ListResourcesResult) MarshalJSON() ([]byte, error) {
	type plain ListResourcesResult
	return marshalExtended(plain(r), r.Extra)
}

func (r *ListResourcesResult) UnmarshalJSON(data []byte) error {
	type plain ListResourcesResult
	return unmarshalExtended(data, (*plain)(r), &r.Extra)
}

// ListResourceTemplatesResult answers resources/templates/list.
type ListResourceTemplatesResult struct {
	Meta              Meta               `json:"_meta,omitempty"`
	NextCursor        Cursor             `json:"nextCursor,omitempty"`
	ResourceTemplates []ResourceTemplate `json:"resourceTemplates"`
	Extra             Extras             `json:"-"`
}

func (r ListResourceTemplatesResult) MarshalJSON() ([]byte, error) {
	type plain ListResourceTemplatesResult
	return marshalExtended(plain(r), r.Extra)
}

func (r *ListResourceTemplatesResult) UnmarshalJSON(data []byte) error {
	type plain ListResourceTemplatesResult
	return unmarshalExtended(data, (*plain)(r), &r.Extra)
}

// ReadResourceParams is the payload of resources/read.
type ReadResourceParams struct {
	Meta  *RequestMeta `json:"_meta,omitempty"`
	URI   string       `json:"uri"`
	Extra Extras       `json:"-"`
}

func (p ReadResourceParams) MarshalJSON() ([]byte, error) {
	type plain ReadResourceParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *ReadResourceParams) UnmarshalJSON(data []byte) error {
	type plain ReadResourceParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// Validate checks the required fields.
func (p *ReadResourceParams) Validate() error {
	if p.URI == "" {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "resources/read requires uri")
	}
	return nil
}

// ReadResourceResult answers resources/read.
type ReadResourceResult struct {
	Meta     Meta               `json:"_meta,omitempty"`
	Contents []ResourceContents `json:"contents"`
	Extra    Extras             `json:"-"`
}

func (r ReadResourceResult) MarshalJSON() ([]byte, error) {
	type plain ReadResourceResult
	return marshalExtended(plain(r), r.Extra)
}

func (r *ReadResourceResult) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Meta     Meta              `json:"_meta"`
		Contents []json.RawMessage `json:"contents"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	contents, err := resolveResourceContentsList(shadow.Contents)
	if err != nil {
		return err
	}
	r.Meta = shadow.Meta
	r.Contents = contents
	return collectExtras(data, reflect.TypeOf(*r), &r.Extra)
}

// SubscribeParams is the payload of resources/subscribe.
type SubscribeParams struct {
	Meta  *RequestMeta `json:"_meta,omitempty"`
	URI   string       `json:"uri"`
	Extra Extras       `json:"-"`
}

func (p SubscribeParams) MarshalJSON() ([]byte, error) {
	type plain SubscribeParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *SubscribeParams) UnmarshalJSON(data []byte) error {
	type plain SubscribeParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// Validate checks the required fields.
func (p *SubscribeParams) Validate() error {
	if p.URI == "" {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "resources/subscribe requires uri")
	}
	return nil
}

// UnsubscribeParams is the payload of resources/unsubscribe.
type UnsubscribeParams struct {
	Meta  *RequestMeta `json:"_meta,omitempty"`
	URI   string       `json:"uri"`
	Extra Extras       `json:"-"`
}

func (p UnsubscribeParams) MarshalJSON() ([]byte, error) {
	type plain UnsubscribeParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *UnsubscribeParams) UnmarshalJSON(data []byte) error {
	type plain UnsubscribeParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// Validate checks the required fields.
func (p *UnsubscribeParams) Validate() error {
	if p.URI == "" {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "resources/unsubscribe requires uri")
	}
	return nil
}

// ResourceUpdatedParams is the payload of notifications/resources/updated.
type ResourceUpdatedParams struct {
	URI   string `json:"uri"`
	Extra Extras `json:"-"`
}

func (p ResourceUpdatedParams) MarshalJSON() ([]byte, error) {
	type plain ResourceUpdatedParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *ResourceUpdatedParams) UnmarshalJSON(data []byte) error {
	type plain ResourceUpdatedParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// Validate checks the required fields.
func (p *ResourceUpdatedParams) Validate() error {
	if p.URI == "" {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "resources/updated requires uri")
	}
	return nil
}
