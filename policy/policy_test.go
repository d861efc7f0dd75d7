package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memberView is a trivial View backed by a set, enough for these unit tests
// since the built-in policies never actually call back into it.
type memberView map[string]bool

func (v memberView) Contains(key string) bool { return v[key] }
func (v memberView) Len() int                 { return len(v) }

func TestRegistryBuiltins(t *testing.T) {
	for _, name := range []Name{LRU, LFU, FIFO} {
		require.True(t, Registered(name))
		p, err := New(name)
		require.NoError(t, err)
		require.NotNil(t, p)
	}
}

func TestRegistryUnknownName(t *testing.T) {
	_, err := New(Name("does-not-exist"))
	require.Error(t, err)
}

func TestRegistryDuplicateRegistration(t *testing.T) {
	err := Register(LRU, NewLRU)
	require.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	p := NewLRU()
	v := memberView{"a": true, "b": true, "c": true}

	p.OnAdd(v, "a")
	p.OnAdd(v, "b")
	p.OnAdd(v, "c")
	p.OnAccess(v, "a")

	victim, ok := p.SelectEvictionKey(v)
	require.True(t, ok)
	assert.Equal(t, "b", victim)
}

func TestLRUUpdateCountsAsTouch(t *testing.T) {
	p := NewLRU()
	v := memberView{"a": true, "b": true}
	p.OnAdd(v, "a")
	p.OnAdd(v, "b")
	p.OnUpdate(v, "a")

	victim, ok := p.SelectEvictionKey(v)
	require.True(t, ok)
	assert.Equal(t, "b", victim)
}

func TestFIFOIgnoresReads(t *testing.T) {
	p := NewFIFO()
	v := memberView{"a": true, "b": true, "c": true}

	p.OnAdd(v, "a")
	p.OnAdd(v, "b")
	p.OnAdd(v, "c")
	p.OnAccess(v, "a")
	p.OnAccess(v, "a")

	victim, ok := p.SelectEvictionKey(v)
	require.True(t, ok)
	assert.Equal(t, "a", victim)
}

func TestLFUTieBreaksOnRecency(t *testing.T) {
	p := NewLFU()
	v := memberView{"a": true, "b": true, "c": true}

	p.OnAdd(v, "a")
	p.OnAdd(v, "b")
	p.OnAdd(v, "c")
	p.OnAccess(v, "a")
	p.OnAccess(v, "b")

	victim, ok := p.SelectEvictionKey(v)
	require.True(t, ok)
	assert.Equal(t, "c", victim)
}

func TestLFULowestFrequencyWins(t *testing.T) {
	p := NewLFU()
	v := memberView{"a": true, "b": true}

	p.OnAdd(v, "a")
	p.OnAdd(v, "b")
	p.OnAccess(v, "b")
	p.OnAccess(v, "b")

	victim, ok := p.SelectEvictionKey(v)
	require.True(t, ok)
	assert.Equal(t, "a", victim)
}

func TestOnDeleteRemovesFromAllPolicies(t *testing.T) {
	v := memberView{"a": true}
	for _, p := range []Policy{NewLRU(), NewFIFO(), NewLFU()} {
		p.OnAdd(v, "a")
		p.OnDelete(v, "a")
		_, ok := p.SelectEvictionKey(v)
		assert.False(t, ok)
	}
}

func TestResetClearsBookkeeping(t *testing.T) {
	v := memberView{"a": true}
	for _, p := range []Policy{NewLRU(), NewFIFO(), NewLFU()} {
		p.OnAdd(v, "a")
		p.Reset()
		_, ok := p.SelectEvictionKey(v)
		assert.False(t, ok)
	}
}
