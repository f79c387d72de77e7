package codec

import (
	"github.com/goccy/go-json"
	"io"
	"math"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// JSON codec
// --------------------------------------------------------------------------

func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(prepareJSON(v))
	if err != nil {
		return "", rejectf(JSON, v, err.Error())
	}
	return string(b), nil
}

func decodeJSON(data string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, malformed(JSON, data, err)
	}

	// the reply must hold exactly one document
	var trailing any
	if err := dec.Decode(&trailing); err != io.EOF {
		return nil, malformed(JSON, data, err)
	}

	return normalizeJSON(v), nil
}

// prepareJSON replaces floats in generic JSON trees (map[string]any, []any) with
// number literals that keep their decimal point, so 2.0 is written as 2.0 and
// not as 2. Other values are passed to the serializer untouched.
func prepareJSON(v any) any {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return t // let the serializer reject it
		}
		return json.Number(formatFloat(t))
	case float32:
		return prepareJSON(float64(t))
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = prepareJSON(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = prepareJSON(e)
		}
		return out
	default:
		return v
	}
}

// normalizeJSON converts number literals into int64 (if written as an integer),
// uint64 (integers above math.MaxInt64) or float64
func normalizeJSON(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return u
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case []any:
		for i, e := range t {
			t[i] = normalizeJSON(e)
		}
		return t
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeJSON(e)
		}
		return t
	default:
		return v
	}
}
