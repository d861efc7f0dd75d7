// Package persistence implements the FileManager capability: resolving
// snapshot paths, and reading/writing whole-cache and metrics snapshots
// through a pluggable serializer.
package persistence

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/kvcachelib/kvcache/serializer"
)

// timestampLayout is ISO-8601-like, seconds resolution, and filesystem-safe
// (no colons), always rendered in UTC so a filename doesn't depend on the
// host's local zone.
const timestampLayout = "20060102T150405Z"

// ErrPersistence is the sentinel every I/O-level persistence failure wraps
// (missing file, unwritable directory, failed rename).
var ErrPersistence = errors.New("persistence: operation failed")

// ErrSerialization is the sentinel a configured Serializer's own
// Serialize/Deserialize failure wraps, kept distinct from ErrPersistence so
// callers can tell "the document couldn't be encoded" apart from "the file
// couldn't be written".
var ErrSerialization = errors.New("persistence: serialization failed")

// FileManager resolves snapshot paths and performs atomic reads/writes
// through a Serializer.
type FileManager struct {
	StorageDir   string
	Filename     string
	UseTimestamp bool
	Serializer   serializer.Serializer

	// Now is injectable for deterministic tests; defaults to time.Now.
	Now func() time.Time
}

func (fm *FileManager) now() time.Time {
	if fm.Now != nil {
		return fm.Now()
	}
	return time.Now()
}

// ResolvePath returns explicitPath unchanged if non-empty; otherwise it
// composes storageDir/filename[.timestamp].extension.
func (fm *FileManager) ResolvePath(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}

	name := fm.Filename
	if fm.UseTimestamp {
		name += "." + fm.now().UTC().Format(timestampLayout)
	}
	name += "." + fm.Serializer.Extension()

	return filepath.Join(fm.StorageDir, name)
}

// Save marshals doc through the configured serializer and atomically
// replaces path: write to a uniquely-named temp file in the same
// directory, then rename over the target. A partial write never reaches
// the target path.
func (fm *FileManager) Save(path string, doc any) error {
	payload, err := fm.Serializer.Serialize(doc)
	if err != nil {
		return errors.Wrap(ErrSerialization, err.Error())
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(ErrPersistence, "create storage dir %q: %v", dir, err)
	}

	tmpPath := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmpPath, payload, 0o644); err != nil {
		return errors.Wrapf(ErrPersistence, "write temp file %q: %v", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(ErrPersistence, "rename %q to %q: %v", tmpPath, path, err)
	}

	return nil
}

// Load reads path and deserializes it into out.
func (fm *FileManager) Load(path string, out any) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(ErrPersistence, "read %q: %v", path, err)
	}

	if err := fm.Serializer.Deserialize(payload, out); err != nil {
		return errors.Wrapf(ErrSerialization, "decode %q: %v", path, err)
	}

	return nil
}
