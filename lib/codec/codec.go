package codec

import (
	"fmt"
	"github.com/ValentinKolb/ooKV/lib/om"
	"strings"
)

// --------------------------------------------------------------------------
// Wire values
// --------------------------------------------------------------------------

// Wire is a single reply from the store. The zero value is the absent marker.
type Wire struct {
	Data    string // Raw reply (binary safe)
	Present bool   // False if the store had no value
}

// Absent is the marker for a missing value.
var Absent = Wire{}

// Reply wraps a raw reply from the store.
func Reply(data string) Wire {
	return Wire{Data: data, Present: true}
}

// --------------------------------------------------------------------------
// Codec enumeration
// --------------------------------------------------------------------------

// Codec is a reversible mapping between a native value domain and the wire domain.
// The zero value is Generic.
type Codec uint8

const (
	Generic   Codec = iota // integers, floats and strings, heuristic decode
	Int                    // integers
	Float                  // floats (integers are widened)
	String                 // strings
	JSON                   // structured values as JSON text
	Serialize              // arbitrary values in gob encoding
)

// All returns every codec variant.
func All() []Codec {
	return []Codec{Generic, Int, Float, String, JSON, Serialize}
}

// String returns the configuration name of the codec.
func (c Codec) String() string {
	switch c {
	case Generic:
		return "generic"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case JSON:
		return "json"
	case Serialize:
		return "serialize"
	default:
		return fmt.Sprintf("codec(%d)", uint8(c))
	}
}

// Parse returns the codec with the given configuration name.
func Parse(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "generic":
		return Generic, nil
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	case "string", "text":
		return String, nil
	case "json":
		return JSON, nil
	case "serialize", "gob":
		return Serialize, nil
	default:
		return Generic, fmt.Errorf("invalid codec %s (expected one of: generic, int, float, string, json, serialize)", name)
	}
}

// Encode converts a native value into its wire representation.
// Values outside the codec's domain are rejected with an om.ErrEncode error.
func (c Codec) Encode(v any) (string, error) {
	switch c {
	case Generic:
		return encodeGeneric(v)
	case Int:
		return encodeInt(v)
	case Float:
		return encodeFloat(v)
	case String:
		return encodeString(v)
	case JSON:
		return encodeJSON(v)
	case Serialize:
		return encodeGob(v)
	default:
		return "", om.Errorf(om.RetCEncode, "unknown %s", c)
	}
}

// Decode converts a wire value back into its native representation.
// The absent marker always decodes to nil. Replies that cannot be decoded are
// rejected with an om.ErrDecode error.
func (c Codec) Decode(w Wire) (any, error) {
	if !w.Present {
		return nil, nil
	}

	switch c {
	case Generic:
		return decodeGeneric(w.Data), nil
	case Int:
		return decodeInt(w.Data)
	case Float:
		return decodeFloat(w.Data)
	case String:
		return w.Data, nil
	case JSON:
		return decodeJSON(w.Data)
	case Serialize:
		return decodeGob(w.Data)
	default:
		return nil, om.Errorf(om.RetCDecode, "unknown %s", c)
	}
}

// EncodeAll encodes every value in vs. The result can be passed to variadic
// commands directly. The first value that cannot be encoded aborts the call.
func (c Codec) EncodeAll(vs []any) ([]any, error) {
	out := make([]any, len(vs))
	for i, v := range vs {
		wire, err := c.Encode(v)
		if err != nil {
			return nil, err
		}
		out[i] = wire
	}
	return out, nil
}

// DecodeAll decodes a multi-value reply. Every element counts as present.
func (c Codec) DecodeAll(data []string) ([]any, error) {
	out := make([]any, len(data))
	for i, d := range data {
		v, err := c.Decode(Reply(d))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// rejectf creates the encode error for a value outside the codec's domain
func rejectf(c Codec, v any, reason string) error {
	return om.Errorf(om.RetCEncode, "%s codec does not accept %T (%s)", c, v, reason)
}

// malformed creates the decode error for a reply that cannot be decoded
func malformed(c Codec, data string, cause error) error {
	if len(data) > 32 {
		data = data[:32] + "..."
	}
	return om.Errorf(om.RetCDecode, "%s codec cannot decode %q", c, data).WithCause(cause)
}
