package protocol

import (
	"encoding/json"
	"fmt"
	"reflect"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

var typeOfEmbeddedResource = reflect.TypeOf(EmbeddedResource{})

// Content type discriminator values.
const (
	ContentTypeText     = "text"
	ContentTypeImage    = "image"
	ContentTypeResource = "resource"
)

// PromptContent is the union of content variants a prompt message can carry:
// *TextContent, *ImageContent or *EmbeddedResource, discriminated by the
// "type" field.
type PromptContent interface {
	promptContent()
}

// SamplingContent is the union of content variants a sampling message can
// carry: *TextContent or *ImageContent.
type SamplingContent interface {
	samplingContent()
}

// ResourceContents is the union of resource payloads:
// *TextResourceContents or *BlobResourceContents, discriminated by the
// presence of the "text" or "blob" key.
type ResourceContents interface {
	resourceContents()
}

// TextContent is plain text content.
type TextContent struct {
	Type        string       `json:"type"`
	Text        string       `json:"text"`
	Annotations *Annotations `json:"annotations,omitempty"`
	Extra       Extras       `json:"-"`
}

// NewTextContent builds text content with the discriminator set.
func NewTextContent(text string) *TextContent {
	return &TextContent{Type: ContentTypeText, Text: text}
}

func (c TextContent) MarshalJSON() ([]byte, error) {
	type plain TextContent
	return marshalExtended(plain(c), c.Extra)
}

func (c *TextContent) UnmarshalJSON(data []byte) error {
	type plain TextContent
	return unmarshalExtended(data, (*plain)(c), &c.Extra)
}

func (*TextContent) promptContent()   {}
func (*TextContent) samplingContent() {}

// ImageContent is base64-encoded image content.
type ImageContent struct {
	Type        string       `json:"type"`
	Data        string       `json:"data"`
	MimeType    string       `json:"mimeType"`
	Annotations *Annotations `json:"annotations,omitempty"`
	Extra       Extras       `json:"-"`
}

// NewImageContent builds image content with the discriminator set.
func NewImageContent(data, mimeType string) *ImageContent {
	return &ImageContent{Type: ContentTypeImage, Data: data, MimeType: mimeType}
}

func (c ImageContent) MarshalJSON() ([]byte, error) {
	type plain ImageContent
	return marshalExtended(plain(c), c.Extra)
}

func (c *ImageContent) UnmarshalJSON(data []byte) error {
	type plain ImageContent
	return unmarshalExtended(data, (*plain)(c), &c.Extra)
}

func (*ImageContent) promptContent()   {}
func (*ImageContent) samplingContent() {}

// EmbeddedResource is a resource embedded into a prompt or tool result.
type EmbeddedResource struct {
	Type        string           `json:"type"`
	Resource    ResourceContents `json:"resource"`
	Annotations *Annotations     `json:"annotations,omitempty"`
	Extra       Extras           `json:"-"`
}

// NewEmbeddedResource wraps resource contents with the discriminator set.
func NewEmbeddedResource(resource ResourceContents) *EmbeddedResource {
	return &EmbeddedResource{Type: ContentTypeResource, Resource: resource}
}

func (c EmbeddedResource) MarshalJSON() ([]byte, error) {
	type plain EmbeddedResource
	return marshalExtended(plain(c), c.Extra)
}

func (c *EmbeddedResource) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Type        string          `json:"type"`
		Resource    json.RawMessage `json:"resource"`
		Annotations *Annotations    `json:"annotations"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	if shadow.Resource == nil {
		return mcperrors.UnknownContentVariant("EmbeddedResource", "missing resource")
	}
	resource, err := ResolveResourceContents(shadow.Resource)
	if err != nil {
		return err
	}
	c.Type = shadow.Type
	c.Resource = resource
	c.Annotations = shadow.Annotations
	return collectExtras(data, typeOfEmbeddedResource, &c.Extra)
}

func (*EmbeddedResource) promptContent() {}

// TextResourceContents is the textual payload of a resource.
type TextResourceContents struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text"`
}

func (*TextResourceContents) resourceContents() {}

// BlobResourceContents is the binary payload of a resource, base64-encoded.
type BlobResourceContents struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Blob     string `json:"blob"`
}

func (*BlobResourceContents) resourceContents() {}

// ResolvePromptContent resolves a raw content object to its PromptContent
// variant. The probe order is fixed: type "text", then "image", then
// "resource"; anything else is UnknownContentVariant.
func ResolvePromptContent(raw json.RawMessage) (PromptContent, error) {
	kind, err := probeContentType(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case ContentTypeText:
		var c TextContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return &c, nil
	case ContentTypeImage:
		var c ImageContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return &c, nil
	case ContentTypeResource:
		var c EmbeddedResource
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return &c, nil
	default:
		return nil, mcperrors.UnknownContentVariant("PromptContent", fmt.Sprintf("type %q", kind))
	}
}

// ResolveSamplingContent resolves a raw content object to its
// SamplingContent variant: type "text" then "image".
func ResolveSamplingContent(raw json.RawMessage) (SamplingContent, error) {
	kind, err := probeContentType(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case ContentTypeText:
		var c TextContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return &c, nil
	case ContentTypeImage:
		var c ImageContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return &c, nil
	default:
		return nil, mcperrors.UnknownContentVariant("SamplingContent", fmt.Sprintf("type %q", kind))
	}
}

// ResolveResourceContents resolves a raw object to its ResourceContents
// variant. There is no explicit tag: presence of "text" wins, then "blob".
func ResolveResourceContents(raw json.RawMessage) (ResourceContents, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, mcperrors.UnknownContentVariant("ResourceContents", "not an object")
	}
	if _, ok := probe["text"]; ok {
		var c TextResourceContents
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return &c, nil
	}
	if _, ok := probe["blob"]; ok {
		var c BlobResourceContents
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return &c, nil
	}
	return nil, mcperrors.UnknownContentVariant("ResourceContents", "neither text nor blob present")
}

// probeContentType extracts the "type" discriminator of a tagged content
// object.
func probeContentType(raw json.RawMessage) (string, error) {
	var probe struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return "", mcperrors.UnknownContentVariant("content", "not an object")
	}
	if probe.Type == nil {
		return "", mcperrors.UnknownContentVariant("content", "missing type")
	}
	return *probe.Type, nil
}

// resolvePromptContentList resolves each element of a content array.
func resolvePromptContentList(raws []json.RawMessage) ([]PromptContent, error) {
	if raws == nil {
		return nil, nil
	}
	out := make([]PromptContent, len(raws))
	for i, raw := range raws {
		c, err := ResolvePromptContent(raw)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// resolveResourceContentsList resolves each element of a contents array.
func resolveResourceContentsList(raws []json.RawMessage) ([]ResourceContents, error) {
	if raws == nil {
		return nil, nil
	}
	out := make([]ResourceContents, len(raws))
	for i, raw := range raws {
		c, err := ResolveResourceContents(raw)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
