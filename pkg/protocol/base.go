package protocol

import (
	"encoding/json"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

// Role identifies the sender or recipient in a conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValidRole reports whether r is one of the protocol roles.
func IsValidRole(r Role) bool {
	return r == RoleUser || r == RoleAssistant
}

// Meta is the reserved "_meta" field carried by most result and
// notification types. It is typed separately from the generic Extras map.
type Meta map[string]json.RawMessage

// RequestMeta is the reserved "_meta" field of request params. The progress
// token, when present, asks the receiver to emit progress notifications for
// this request.
type RequestMeta struct {
	ProgressToken *ProgressToken `json:"progressToken,omitempty"`
}

// Annotations provide optional hints about how an object should be used or
// displayed.
type Annotations struct {
	Audience []Role   `json:"audience,omitempty"`
	Priority *float64 `json:"priority,omitempty"`
	Extra    Extras   `json:"-"`
}

func (a Annotations) MarshalJSON() ([]byte, error) {
	type plain Annotations
	return marshalExtended(plain(a), a.Extra)
}

func (a *Annotations) UnmarshalJSON(data []byte) error {
	type plain Annotations
	return unmarshalExtended(data, (*plain)(a), &a.Extra)
}

// Implementation names an MCP implementation and its version.
type Implementation struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Extra   Extras `json:"-"`
}

func (i Implementation) MarshalJSON() ([]byte, error) {
	type plain Implementation
	return marshalExtended(plain(i), i.Extra)
}

func (i *Implementation) UnmarshalJSON(data []byte) error {
	type plain Implementation
	return unmarshalExtended(data, (*plain)(i), &i.Extra)
}

// NotificationParams is the payload of notifications that carry no declared
// fields beyond _meta. It is the empty-but-valid default substituted when a
// parameter-optional notification arrives without params.
type NotificationParams struct {
	Meta  Meta   `json:"_meta,omitempty"`
	Extra Extras `json:"-"`
}

func (p NotificationParams) MarshalJSON() ([]byte, error) {
	type plain NotificationParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *NotificationParams) UnmarshalJSON(data []byte) error {
	type plain NotificationParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// PingParams is the (parameter-optional) payload of ping requests.
type PingParams struct {
	Meta  *RequestMeta `json:"_meta,omitempty"`
	Extra Extras       `json:"-"`
}

func (p PingParams) MarshalJSON() ([]byte, error) {
	type plain PingParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *PingParams) UnmarshalJSON(data []byte) error {
	type plain PingParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// PaginatedParams is the shared payload of cursor-paginated list requests.
type PaginatedParams struct {
	Meta   *RequestMeta `json:"_meta,omitempty"`
	Cursor Cursor       `json:"cursor,omitempty"`
	Extra  Extras       `json:"-"`
}

func (p PaginatedParams) MarshalJSON() ([]byte, error) {
	type plain PaginatedParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *PaginatedParams) UnmarshalJSON(data []byte) error {
	type plain PaginatedParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// EmptyResult indicates success without data. It has no required fields,
// which is why result aggregation must try it last.
type EmptyResult struct {
	Meta  Meta   `json:"_meta,omitempty"`
	Extra Extras `json:"-"`
}

func (r EmptyResult) MarshalJSON() ([]byte, error) {
	type plain EmptyResult
	return marshalExtended(plain(r), r.Extra)
}

func (r *EmptyResult) UnmarshalJSON(data []byte) error {
	type plain EmptyResult
	return unmarshalExtended(data, (*plain)(r), &r.Extra)
}

// CancelledParams is the payload of notifications/cancelled. RequestID names
// the in-flight request being cancelled.
type CancelledParams struct {
	RequestID RequestID `json:"requestId"`
	Reason    string    `json:"reason,omitempty"`
}

// Validate checks the required fields.
func (p *CancelledParams) Validate() error {
	if p.RequestID.IsZero() {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "cancelled notification requires requestId")
	}
	return nil
}

// ProgressParams is the payload of notifications/progress. The token links
// the notification to the request that asked for progress.
type ProgressParams struct {
	ProgressToken ProgressToken `json:"progressToken"`
	Progress      float64       `json:"progress"`
	Total         *float64      `json:"total,omitempty"`
	Extra         Extras        `json:"-"`
}

func (p ProgressParams) MarshalJSON() ([]byte, error) {
	type plain ProgressParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *ProgressParams) UnmarshalJSON(data []byte) error {
	type plain ProgressParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// Validate checks the required fields.
func (p *ProgressParams) Validate() error {
	if p.ProgressToken.IsZero() {
		return mcperrors.New(mcperrors.KindParamsShapeMismatch, "progress notification requires progressToken")
	}
	return nil
}
