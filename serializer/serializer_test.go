package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string
	Count int
}

func TestJSONRoundTrip(t *testing.T) {
	s := NewJSON()
	assert.Equal(t, "json", s.Extension())
	assert.False(t, s.Binary())

	in := sample{Name: "widget", Count: 3}
	payload, err := s.Serialize(in)
	require.NoError(t, err)

	var out sample
	require.NoError(t, s.Deserialize(payload, &out))
	assert.Equal(t, in, out)
}

func TestJSONUnsupportedValueFails(t *testing.T) {
	s := NewJSON()
	_, err := s.Serialize(func() {})
	assert.Error(t, err)
}

func TestGobRoundTrip(t *testing.T) {
	s := NewGob()
	assert.Equal(t, "gob", s.Extension())
	assert.True(t, s.Binary())

	in := sample{Name: "widget", Count: 3}
	payload, err := s.Serialize(in)
	require.NoError(t, err)

	var out sample
	require.NoError(t, s.Deserialize(payload, &out))
	assert.Equal(t, in, out)
}

func TestGobRoundTripArbitraryValue(t *testing.T) {
	s := NewGob()
	var in any = map[string]any{"a": 1, "b": "two"}
	payload, err := s.Serialize(&in)
	require.NoError(t, err)

	var out any
	require.NoError(t, s.Deserialize(payload, &out))
	assert.Equal(t, in, out)
}

func TestRegistryLookup(t *testing.T) {
	require.True(t, Registered(JSON))
	require.True(t, Registered(Gob))

	s, err := New(JSON)
	require.NoError(t, err)
	assert.Equal(t, "json", s.Extension())

	_, err = New(Name("yaml"))
	assert.Error(t, err)
}

func TestRegistryDuplicateRegistration(t *testing.T) {
	err := Register(JSON, NewJSON)
	require.ErrorIs(t, err, ErrAlreadyRegistered)
}
