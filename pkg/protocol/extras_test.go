package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcperrors "github.com/ajitpratap0/mcp-schema-go/pkg/errors"
)

func TestExtrasRoundTripPreservesUnknownKeys(t *testing.T) {
	input := `{"name":"demo","version":"1.0","vendor":"acme","build":{"commit":"abc123"}}`

	var impl Implementation
	require.NoError(t, json.Unmarshal([]byte(input), &impl))
	assert.Equal(t, "demo", impl.Name)
	assert.Equal(t, "1.0", impl.Version)

	vendor, ok := impl.Extra.Get("vendor")
	require.True(t, ok)
	assert.JSONEq(t, `"acme"`, string(vendor))
	assert.Equal(t, []string{"vendor", "build"}, impl.Extra.Keys())

	out, err := json.Marshal(impl)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestExtrasPreserveInputOrder(t *testing.T) {
	input := `{"zeta":1,"name":"demo","alpha":2,"version":"1.0","mid":3}`

	var impl Implementation
	require.NoError(t, json.Unmarshal([]byte(input), &impl))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, impl.Extra.Keys())
}

func TestExtrasFieldCollision(t *testing.T) {
	impl := Implementation{Name: "demo", Version: "1.0"}
	impl.Extra.Set("name", json.RawMessage(`"shadow"`))

	_, err := json.Marshal(impl)
	require.Error(t, err)
	assert.True(t, mcperrors.IsKind(err, mcperrors.KindFieldCollision))
}

func TestExtrasOnRecordWithoutDeclaredFields(t *testing.T) {
	var p PingParams
	p.Extra.Set("custom", json.RawMessage(`true`))

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"custom":true}`, string(out))
}

func TestMetaIsDeclaredNotExtra(t *testing.T) {
	input := `{"_meta":{"trace":"t-1"},"extra":"kept"}`

	var p NotificationParams
	require.NoError(t, json.Unmarshal([]byte(input), &p))
	require.Contains(t, p.Meta, "trace")
	assert.JSONEq(t, `"t-1"`, string(p.Meta["trace"]))

	_, ok := p.Extra.Get("_meta")
	assert.False(t, ok)
	_, ok = p.Extra.Get("extra")
	assert.True(t, ok)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestOptionalFieldsOmittedNotNull(t *testing.T) {
	out, err := json.Marshal(Prompt{Name: "greet"})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"greet"}`, string(out))

	out, err = json.Marshal(Resource{URI: "file:///a", Name: "a"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "null")
	assert.NotContains(t, string(out), "description")
}

func TestExtrasZeroValueUsable(t *testing.T) {
	var e Extras
	assert.Equal(t, 0, e.Len())
	assert.Nil(t, e.Keys())
	_, ok := e.Get("missing")
	assert.False(t, ok)

	e.Set("k", json.RawMessage(`1`))
	assert.Equal(t, 1, e.Len())
}
