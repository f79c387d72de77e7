// Package codec provides the value codecs of the object mapper. A codec
// translates between a native Go value domain and the only representation
// Redis has for scalar values: a (binary safe) string.
//
// The package focuses on:
//   - A closed set of interchangeable codecs selected per key
//   - Reversible encoding: Decode(Encode(v)) equals v for every accepted v
//   - Rejecting values outside a codec's domain before any remote call is made
//
// Key Components:
//
//   - Codec: A closed enumeration of the available codecs. Every variant exposes
//     Encode and Decode; the methods switch over the variant, so there is no way
//     to plug in a codec that the rest of the mapper does not know about.
//
//   - Wire: A reply from the store. The zero value (Absent) is the marker for a
//     missing value and always decodes to nil, for every codec.
//
// Codecs:
//
//   - Generic: Accepts integers, finite floats and strings. Decoding tries an
//     integer parse, then a float parse and falls back to the text. This is a
//     heuristic: the text "3" comes back as the integer 3. Callers that need the
//     exact type back must pick one of the other codecs.
//
//   - Int: Accepts every Go integer kind (widened to int64), decodes strictly.
//
//   - Float: Accepts integers and finite floats (widened to float64), decodes strictly.
//
//   - String: Accepts strings only.
//
//   - JSON: Accepts anything the JSON serializer accepts. Decoding yields nil,
//     bool, string, int64, uint64 (integers above math.MaxInt64), float64,
//     []any and map[string]any. Only values built from these types round-trip
//     exactly. Structs and typed maps or slices come back as map[string]any
//     and []any. Their float fields lose the float/int distinction: a whole
//     number like 2.0 is written as 2 and decodes as int64.
//
//   - Serialize: Accepts any non-nil value gob can encode and restores its
//     concrete type. Custom types must be made known with Register first.
//
// Native numbers are normalized: integers always decode as int64 and floats as
// float64, regardless of the Go kind that was encoded.
//
// Thread Safety:
//
//	All codecs are stateless and safe for concurrent use across goroutines.
//	A codec can be bound to any number of keys at the same time.
//
// Usage:
//
//	wire, err := codec.Int.Encode(42)      // "42"
//	v, err := codec.Int.Decode(codec.Reply(wire)) // int64(42)
//	v, err = codec.Int.Decode(codec.Absent)       // nil
package codec
