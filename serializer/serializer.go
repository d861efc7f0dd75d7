// Package serializer implements the serializer capability: turning a value
// into a storable payload and back. Built-ins cover a textual `json` role
// and a binary "pickle"-equivalent role for arbitrary in-language values.
package serializer

// Serializer is the capability a snapshot writer/reader needs. Deserialize
// writes into out via a pointer, mirroring encoding/json's Unmarshal shape
// so callers decode directly into typed document structs.
type Serializer interface {
	// Serialize turns value into a storable payload.
	Serialize(value any) ([]byte, error)
	// Deserialize decodes payload into out, which must be a pointer.
	Deserialize(payload []byte, out any) error
	// Extension is the filename suffix this serializer expects, without
	// the leading dot (e.g. "json").
	Extension() string
	// Binary reports whether the payload is raw bytes (true) or text
	// suitable for display/diffing (false).
	Binary() bool
}

// Constructor builds a fresh Serializer instance.
type Constructor func() Serializer

// Name identifies a registered serializer.
type Name string

const (
	JSON Name = "json"
	Gob  Name = "gob"
)
