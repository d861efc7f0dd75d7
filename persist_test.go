package kvcache

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvcachelib/kvcache/persistence"
	"github.com/kvcachelib/kvcache/serializer"
)

// failingSerializer always fails to encode, so SaveToDisk can be exercised
// against a Serializer-level failure distinct from a file I/O failure.
type failingSerializer struct{}

func (failingSerializer) Serialize(any) ([]byte, error) {
	return nil, stderrors.New("failingSerializer: refuses to encode")
}

func (failingSerializer) Deserialize([]byte, any) error {
	return stderrors.New("failingSerializer: refuses to decode")
}

func (failingSerializer) Extension() string { return "fail" }
func (failingSerializer) Binary() bool      { return true }

func init() {
	_ = RegisterSerializer("failing-test-serializer", func() serializer.Serializer {
		return failingSerializer{}
	})
}

func TestSaveToDiskSurfacesSerializationError(t *testing.T) {
	dir := t.TempDir()
	c, err := New(Config{MaxSize: 10, StorageDir: dir, Serializer: "failing-test-serializer"})
	require.NoError(t, err)
	t.Cleanup(c.Stop)

	require.NoError(t, c.Set("k", 1, NoExpiry))

	err = c.SaveToDisk("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerialization)
	assert.NotErrorIs(t, err, ErrPersistence)
}

// writeDocument bypasses SaveToDisk to place a document on disk whose
// entries are exactly as given, including already-expired ones — exercises
// LoadFromDisk's own expiry filter rather than SaveToDisk's cleanup pass.
func writeDocument(t *testing.T, dir, filename string, doc persistence.CacheDocument) {
	t.Helper()
	fm := &persistence.FileManager{StorageDir: dir, Filename: filename, Serializer: serializer.NewJSON()}
	require.NoError(t, fm.Save(fm.ResolvePath(""), doc))
}

func TestLoadFromDiskDropsExpiredEntries(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeDocument(t, dir, "cache", persistence.CacheDocument{
		Version: persistence.DocumentVersion,
		Entries: []persistence.EntryDocument{
			{Key: "live", Value: float64(1), CreatedAt: now, LastAccess: now, AccessCount: 1},
			{Key: "stale", Value: float64(2), CreatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(-time.Minute), LastAccess: now.Add(-time.Hour), AccessCount: 1},
		},
	})

	c, err := New(Config{MaxSize: 10, StorageDir: dir})
	require.NoError(t, err)
	t.Cleanup(c.Stop)

	require.NoError(t, c.LoadFromDisk(""))
	assertKeysEqual(t, c, "live")
}

func TestLoadFromDiskPreservesMetadata(t *testing.T) {
	dir := t.TempDir()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	writeDocument(t, dir, "cache", persistence.CacheDocument{
		Version: persistence.DocumentVersion,
		Entries: []persistence.EntryDocument{
			{Key: "k", Value: "v", CreatedAt: created, LastAccess: created, AccessCount: 7},
		},
	})

	c, err := New(Config{MaxSize: 10, StorageDir: dir})
	require.NoError(t, err)
	t.Cleanup(c.Stop)

	require.NoError(t, c.LoadFromDisk(""))

	c.mu.Lock()
	node := c.index["k"].Value.(*entryNode)
	c.mu.Unlock()

	assert.True(t, node.entry.CreatedAt.Equal(created))
	assert.EqualValues(t, 7, node.entry.AccessCount)
}

func TestLoadFromDiskFailsOnCapacityOverflow(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeDocument(t, dir, "cache", persistence.CacheDocument{
		Version: persistence.DocumentVersion,
		Entries: []persistence.EntryDocument{
			{Key: "a", Value: float64(1), CreatedAt: now, LastAccess: now, AccessCount: 1},
			{Key: "b", Value: float64(2), CreatedAt: now, LastAccess: now, AccessCount: 1},
		},
	})

	c, err := New(Config{MaxSize: 1, StorageDir: dir})
	require.NoError(t, err)
	t.Cleanup(c.Stop)

	require.NoError(t, c.Set("existing", 1, NoExpiry))
	err = c.LoadFromDisk("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)

	// the in-memory cache is left untouched on a failed load.
	assertKeysEqual(t, c, "existing")
}

func TestSaveToDiskThenLoadEmptyCache(t *testing.T) {
	dir := t.TempDir()
	c, err := New(Config{MaxSize: 10, StorageDir: dir})
	require.NoError(t, err)
	t.Cleanup(c.Stop)

	require.NoError(t, c.SaveToDisk(""))
	require.NoError(t, c.LoadFromDisk(""))
	assert.Equal(t, 0, c.Size())
}

func TestSaveMetricsToDisk(t *testing.T) {
	dir := t.TempDir()
	c, err := New(Config{MaxSize: 10, MetricsStorageDir: dir})
	require.NoError(t, err)
	t.Cleanup(c.Stop)

	require.NoError(t, c.Set("k", 1, NoExpiry))
	_, _ = c.Get("k")

	require.NoError(t, c.SaveMetricsToDisk(""))
}

func TestLoadFromDiskRejectsUnreadableFile(t *testing.T) {
	c, err := New(Config{MaxSize: 10, StorageDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(c.Stop)

	err = c.LoadFromDisk("/nonexistent/path.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
}
