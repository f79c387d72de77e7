package codec

import (
	"bytes"
	"encoding/gob"
	"strings"
)

func init() {
	// generic containers are not registered by gob itself
	gob.Register(map[string]any{})
	gob.Register([]any{})
}

// Register makes a custom type known to the Serialize codec.
// It must be called (e.g. in an init function) before values of that type are
// encoded or decoded. See gob.Register for details.
func Register(value any) {
	gob.Register(value)
}

// --------------------------------------------------------------------------
// Serialize codec (gob)
// --------------------------------------------------------------------------

func encodeGob(v any) (string, error) {
	if v == nil {
		return "", rejectf(Serialize, v, "nil cannot be serialized")
	}

	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	// encode through an interface so the concrete type is sent along
	if err := enc.Encode(&v); err != nil {
		return "", rejectf(Serialize, v, err.Error())
	}
	return buf.String(), nil
}

func decodeGob(data string) (any, error) {
	dec := gob.NewDecoder(strings.NewReader(data))

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, malformed(Serialize, data, err)
	}
	return v, nil
}
