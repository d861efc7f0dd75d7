package serializer

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// jsonSerializer is the built-in textual serializer, restricted to
// JSON-representable values.
type jsonSerializer struct{}

// NewJSON constructs the JSON serializer.
func NewJSON() Serializer {
	return jsonSerializer{}
}

func (jsonSerializer) Serialize(value any) ([]byte, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, "serializer: json marshal")
	}
	return payload, nil
}

func (jsonSerializer) Deserialize(payload []byte, out any) error {
	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrap(err, "serializer: json unmarshal")
	}
	return nil
}

func (jsonSerializer) Extension() string { return "json" }

func (jsonSerializer) Binary() bool { return false }
