package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

func TestResolvePromptContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  interface{}
	}{
		{
			"text",
			`{"type":"text","text":"hello"}`,
			&TextContent{Type: ContentTypeText, Text: "hello"},
		},
		{
			"image",
			`{"type":"image","data":"aGk=","mimeType":"image/png"}`,
			&ImageContent{Type: ContentTypeImage, Data: "aGk=", MimeType: "image/png"},
		},
		{
			"embedded text resource",
			`{"type":"resource","resource":{"uri":"file:///a.txt","text":"body"}}`,
			&EmbeddedResource{Type: ContentTypeResource, Resource: &TextResourceContents{URI: "file:///a.txt", Text: "body"}},
		},
		{
			"embedded blob resource",
			`{"type":"resource","resource":{"uri":"file:///a.bin","blob":"aGk="}}`,
			&EmbeddedResource{Type: ContentTypeResource, Resource: &BlobResourceContents{URI: "file:///a.bin", Blob: "aGk="}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePromptContent(json.RawMessage(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			out, err := json.Marshal(got)
			require.NoError(t, err)
			assert.JSONEq(t, tt.input, string(out))
		})
	}
}

func TestResolvePromptContentRejectsUnknown(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown type", `{"type":"audio","data":"aGk="}`},
		{"missing type", `{"text":"hello"}`},
		{"not an object", `"text"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePromptContent(json.RawMessage(tt.input))
			require.Error(t, err)
			assert.True(t, mcperrors.IsKind(err, mcperrors.KindUnknownContentVariant))
		})
	}
}

func TestSamplingContentExcludesResource(t *testing.T) {
	got, err := ResolveSamplingContent(json.RawMessage(`{"type":"text","text":"hi"}`))
	require.NoError(t, err)
	assert.IsType(t, &TextContent{}, got)

	_, err = ResolveSamplingContent(json.RawMessage(`{"type":"resource","resource":{"uri":"file:///a","text":"x"}}`))
	require.Error(t, err)
	assert.True(t, mcperrors.IsKind(err, mcperrors.KindUnknownContentVariant))
}

func TestResolveResourceContentsTextWinsOverBlob(t *testing.T) {
	// "text" is probed before "blob" when both are present.
	got, err := ResolveResourceContents(json.RawMessage(`{"uri":"file:///a","text":"t","blob":"b"}`))
	require.NoError(t, err)
	assert.IsType(t, &TextResourceContents{}, got)

	_, err = ResolveResourceContents(json.RawMessage(`{"uri":"file:///a"}`))
	require.Error(t, err)
	assert.True(t, mcperrors.IsKind(err, mcperrors.KindUnknownContentVariant))
}

func TestEmbeddedResourceMissingResourceMember(t *testing.T) {
	var c EmbeddedResource
	err := json.Unmarshal([]byte(`{"type":"resource"}`), &c)
	require.Error(t, err)
	assert.True(t, mcperrors.IsKind(err, mcperrors.KindUnknownContentVariant))
}

func TestContentKeepsUnknownKeys(t *testing.T) {
	input := `{"type":"text","text":"hi","vendorHint":"syntax"}`

	var c TextContent
	require.NoError(t, json.Unmarshal([]byte(input), &c))
	hint, ok := c.Extra.Get("vendorHint")
	require.True(t, ok)
	assert.JSONEq(t, `"syntax"`, string(hint))

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestPromptMessageDecodesContentVariant(t *testing.T) {
	var m PromptMessage
	require.NoError(t, json.Unmarshal([]byte(`{"role":"user","content":{"type":"text","text":"hi"}}`), &m))
	assert.Equal(t, RoleUser, m.Role)
	require.IsType(t, &TextContent{}, m.Content)
	assert.Equal(t, "hi", m.Content.(*TextContent).Text)
}

func TestSamplingMessageDecodesContentVariant(t *testing.T) {
	var m SamplingMessage
	require.NoError(t, json.Unmarshal([]byte(`{"role":"assistant","content":{"type":"image","data":"aGk=","mimeType":"image/png"}}`), &m))
	require.IsType(t, &ImageContent{}, m.Content)

	err := json.Unmarshal([]byte(`{"role":"assistant","content":{"type":"resource","resource":{"uri":"u","text":"t"}}}`), &m)
	require.Error(t, err)
	assert.True(t, mcperrors.IsKind(err, mcperrors.KindUnknownContentVariant))
}
