package serializer

import (
	"bytes"
	"encoding/gob"

	"github.com/pkg/errors"
)

func init() {
	// encoding/gob must know every concrete type that ever hides behind an
	// `any` field (our document entries' Value is exactly that). Registering
	// the common primitives up front is the same defensive move
	// agilira-metis takes in its own gob-backed cache.
	gob.Register(int(0))
	gob.Register(int32(0))
	gob.Register(int64(0))
	gob.Register(uint(0))
	gob.Register(uint64(0))
	gob.Register(float32(0))
	gob.Register(float64(0))
	gob.Register(bool(false))
	gob.Register(string(""))
	gob.Register([]byte{})
	gob.Register(map[string]any{})
	gob.Register(map[string]string{})
	gob.Register([]any{})
	gob.Register([]string{})
}

// gobSerializer is this module's binary "pickle"-equivalent: arbitrary
// in-language values, round-tripped through encoding/gob.
type gobSerializer struct{}

// NewGob constructs the gob-backed binary serializer.
func NewGob() Serializer {
	return gobSerializer{}
}

func (gobSerializer) Serialize(value any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return nil, errors.Wrap(err, "serializer: gob encode")
	}
	return buf.Bytes(), nil
}

func (gobSerializer) Deserialize(payload []byte, out any) error {
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(out); err != nil {
		return errors.Wrap(err, "serializer: gob decode")
	}
	return nil
}

func (gobSerializer) Extension() string { return "gob" }

func (gobSerializer) Binary() bool { return true }
