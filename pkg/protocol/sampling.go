package protocol

import (
	"encoding/json"
	"reflect"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

// SamplingMessage is one message in a sampling conversation.
type SamplingMessage struct {
	Role    Role            `json:"role"`
	Content SamplingContent `json:"content"`
}

func (m *SamplingMessage) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Role    Role            `json:"role"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	if shadow.Content == nil {
		return mcperrors.UnknownContentVariant("SamplingContent", "missing content")
	}
	content, err := ResolveSamplingContent(shadow.Content)
	if err != nil {
		return err
	}
	m.Role = shadow.Role
	m.Content = content
	return nil
}

// ModelHint suggests a model by name.
type ModelHint struct {
	Name  string `json:"name,omitempty"`
	Extra Extras `json:"-"`
}

func (h ModelHint) MarshalJSON() ([]byte, error) {
	type plain ModelHint
	return marshalExtended(plain(h), h.Extra)
}

func (h *ModelHint) UnmarshalJSON(data []byte) error {
	type plain ModelHint
	return unmarshalExtended(data, (*plain)(h), &h.Extra)
}

// ModelPreferences expresses the caller's priorities for model selection.
type ModelPreferences struct {
	Hints                []ModelHint `json:"hints,omitempty"`
	CostPriority         *float64    `json:"costPriority,omitempty"`
	SpeedPriority        *float64    `json:"speedPriority,omitempty"`
	IntelligencePriority *float64    `json:"intelligencePriority,omitempty"`
	Extra                Extras      `json:"-"`
}

func (p ModelPreferences) MarshalJSON() ([]byte, error) {
	type plain ModelPreferences
	return marshalExtended(plain(p), p.Extra)
}

func (p *ModelPreferences) UnmarshalJSON(data []byte) error {
	type plain ModelPreferences
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// CreateMessageParams is the payload of sampling/createMessage.
type CreateMessageParams struct {
	Meta             *RequestMeta               `json:"_meta,omitempty"`
	Messages         []SamplingMessage          `json:"messages"`
	ModelPreferences *ModelPreferences          `json:"modelPreferences,omitempty"`
	SystemPrompt     string                     `json:"systemPrompt,omitempty"`
	IncludeContext   string                     `json:"includeContext,omitempty"`
	Temperature      *float64                   `json:"temperature,omitempty"`
	MaxTokens        int64                      `json:"maxTokens"`
	StopSequences    []string                   `json:"stopSequences,omitempty"`
	Metadata         map[string]json.RawMessage `json:"metadata,omitempty"`
	Extra            Extras                     `json:"-"`
}

func (p CreateMessageParams) MarshalJSON() ([]byte, error) {
	type plain CreateMessageParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *CreateMessageParams) UnmarshalJSON(data []byte) error {
	type plain CreateMessageParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// Validate checks the required fields.
func (p *CreateMessageParams) Validate() error {
	if p.Messages == nil {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "sampling/createMessage requires messages")
	}
	return nil
}

// CreateMessageResult answers sampling/createMessage.
type CreateMessageResult struct {
	Meta       Meta            `json:"_meta,omitempty"`
	Role       Role            `json:"role"`
	Content    SamplingContent `json:"content"`
	Model      string          `json:"model"`
	StopReason string          `json:"stopReason,omitempty"`
	Extra      Extras          `json:"-"`
}

func (r CreateMessageResult) MarshalJSON() ([]byte, error) {
	type plain CreateMessageResult
	return marshalExtended(plain(r), r.Extra)
}

func (r *CreateMessageResult) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Meta       Meta            `json:"_meta"`
		Role       Role            `json:"role"`
		Content    json.RawMessage `json:"content"`
		Model      string          `json:"model"`
		StopReason string          `json:"stopReason"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	if shadow.Content == nil {
		return mcperrors.UnknownContentVariant("SamplingContent", "missing content")
	}
	content, err := ResolveSamplingContent(shadow.Content)
	if err != nil {
		return err
	}
	r.Meta = shadow.Meta
	r.Role = shadow.Role
	r.Content = content
	r.Model = shadow.Model
	r.StopReason = shadow.StopReason
	return collectExtras(data, reflect.TypeOf(*r), &r.Extra)
}
