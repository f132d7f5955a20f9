package protocol

import (
	"encoding/json"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

// Elicitation outcome actions.
const (
	ElicitActionAccept  = "accept"
	ElicitActionDecline = "decline"
	ElicitActionCancel  = "cancel"
)

// ElicitParams is the payload of elicitation/create: a server asking the
// client for structured input matching the requested schema. The schema is
// carried opaque, never enforced.
type ElicitParams struct {
	Meta            *RequestMeta    `json:"_meta,omitempty"`
	Message         string          `json:"message"`
	RequestedSchema json.RawMessage `json:"requestedSchema"`
	Extra           Extras          `json:"-"`
}

func (p ElicitParams) MarshalJSON() ([]byte, error) {
	type plain ElicitParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *ElicitParams) UnmarshalJSON(data []byte) error {
	type plain ElicitParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// Validate checks the required fields.
func (p *ElicitParams) Validate() error {
	if p.Message == "" {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "elicitation/create requires message")
	}
	if len(p.RequestedSchema) == 0 {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "elicitation/create requires requestedSchema")
	}
	return nil
}

// ElicitResult answers elicitation/create.
type ElicitResult struct {
	Meta    Meta                       `json:"_meta,omitempty"`
	Action  string                     `json:"action"`
	Content map[string]json.RawMessage `json:"content,omitempty"`
	Extra   Extras                     `json:"-"`
}

func (r ElicitResult) MarshalJSON() ([]byte, error) {
	type plain ElicitResult
	return marshalExtended(plain(r), r.Extra)
}

func (r *ElicitResult) UnmarshalJSON(data []byte) error {
	type plain ElicitResult
	return unmarshalExtended(data, (*plain)(r), &r.Extra)
}
