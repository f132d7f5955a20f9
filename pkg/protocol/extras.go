package protocol

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

// Extras holds the unrecognized top-level keys of an extensible record. Keys
// keep their input order so a parse/serialize round-trip reproduces the
// original object. The zero value is ready to use.
//
// Extras is merged with the declared fields only at the serialization
// boundary; the rest of the module never sees it as a dynamic object.
type Extras struct {
	om *orderedmap.OrderedMap[string, json.RawMessage]
}

// Set stores a raw JSON value under key, replacing any previous value.
func (e *Extras) Set(key string, value json.RawMessage) {
	if e.om == nil {
		e.om = orderedmap.New[string, json.RawMessage]()
	}
	e.om.Set(key, value)
}

// Get returns the raw JSON value stored under key.
func (e Extras) Get(key string) (json.RawMessage, bool) {
	if e.om == nil {
		return nil, false
	}
	return e.om.Get(key)
}

// Len returns the number of extra keys.
func (e Extras) Len() int {
	if e.om == nil {
		return 0
	}
	return e.om.Len()
}

// Keys returns the extra keys in input order.
func (e Extras) Keys() []string {
	if e.om == nil {
		return nil
	}
	keys := make([]string, 0, e.om.Len())
	for pair := e.om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// MarshalJSON renders the extras as a JSON object in input order.
func (e Extras) MarshalJSON() ([]byte, error) {
	if e.om == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(e.om)
}

// UnmarshalJSON replaces the extras with the keys of a JSON object.
func (e *Extras) UnmarshalJSON(data []byte) error {
	om := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, om); err != nil {
		return err
	}
	e.om = om
	return nil
}

// declaredKeyCache caches the wire-name sets of extensible record types.
var declaredKeyCache sync.Map // reflect.Type -> map[string]struct{}

// declaredWireKeys returns the set of wire field names a struct type
// declares through its json tags, including fields promoted from anonymous
// embedded structs. Fields tagged "-" do not count as declared.
func declaredWireKeys(t reflect.Type) map[string]struct{} {
	if cached, ok := declaredKeyCache.Load(t); ok {
		return cached.(map[string]struct{})
	}
	keys := make(map[string]struct{})
	collectWireKeys(t, keys)
	declaredKeyCache.Store(t, keys)
	return keys
}

func collectWireKeys(t reflect.Type, keys map[string]struct{}) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" && tag == "-" {
			continue
		}
		if f.Anonymous && name == "" {
			collectWireKeys(f.Type, keys)
			continue
		}
		if name == "" {
			name = f.Name
		}
		keys[name] = struct{}{}
	}
}

// marshalExtended serializes an extensible record: the declared fields of v
// first, then every extra key in input order. An extra key that shadows a
// declared wire name is a FieldCollision.
func marshalExtended(v interface{}, extras Extras) ([]byte, error) {
	declared, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if extras.Len() == 0 {
		return declared, nil
	}
	keys := declaredWireKeys(reflect.TypeOf(v))

	var buf bytes.Buffer
	buf.Grow(len(declared) + 16)
	buf.Write(bytes.TrimSuffix(declared, []byte("}")))
	for pair := extras.om.Oldest(); pair != nil; pair = pair.Next() {
		if _, collides := keys[pair.Key]; collides {
			return nil, mcperrors.FieldCollision(pair.Key)
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(pair.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// unmarshalExtended parses an extensible record: declared fields into v (a
// pointer to struct), every other top-level key into extras.
func unmarshalExtended(data []byte, v interface{}, extras *Extras) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	return collectExtras(data, reflect.TypeOf(v).Elem(), extras)
}

// collectExtras fills extras with every top-level key of data that is not a
// declared wire field of t.
func collectExtras(data []byte, t reflect.Type, extras *Extras) error {
	om := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, om); err != nil {
		return err
	}
	if om.Len() == 0 {
		return nil
	}
	keys := declaredWireKeys(t)
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		if _, declared := keys[pair.Key]; declared {
			continue
		}
		extras.Set(pair.Key, pair.Value)
	}
	return nil
}
