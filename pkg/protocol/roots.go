package protocol

// Root is a directory or file the client exposes to the server.
type Root struct {
	URI   string `json:"uri"`
	Name  string `json:"name,omitempty"`
	Extra Extras `json:"-"`
}

func (r Root) MarshalJSON() ([]byte, error) {
	type plain Root
	return marshalExtended(plain(r), r.Extra)
}

func (r *Root) UnmarshalJSON(data []byte) error {
	type plain Root
	return unmarshalExtended(data, (*plain)(r), &r.Extra)
}

// ListRootsParams is the (parameter-optional) payload of roots/list.
type ListRootsParams struct {
	Meta  *RequestMeta `json:"_meta,omitempty"`
	Extra Extras       `json:"-"`
}

func (p ListRootsParams) MarshalJSON() ([]byte, error) {
	type plain ListRootsParams
	return marshalExtended(plain(p), p.Extra)
}

func (p *ListRootsParams) UnmarshalJSON(data []byte) error {
	type plain ListRootsParams
	return unmarshalExtended(data, (*plain)(p), &p.Extra)
}

// ListRootsResult answers roots/list.
type ListRootsResult struct {
	Meta  Meta   `json:"_meta,omitempty"`
	Roots []Root `json:"roots"`
	Extra Extras `json:"-"`
}

func (r ListRootsResult) MarshalJSON() ([]byte, error) {
	type plain ListRootsResult
	return marshalExtended(plain(r), r.Extra)
}

func (r *ListRootsResult) UnmarshalJSON(data []byte) error {
	type plain ListRootsResult
	return unmarshalExtended(data, (*plain)(r), &r.Extra)
}
