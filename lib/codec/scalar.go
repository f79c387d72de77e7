package codec

import (
	"math"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Generic codec
// --------------------------------------------------------------------------

func encodeGeneric(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	if i, ok, reason := asInt64(v); ok {
		return strconv.FormatInt(i, 10), nil
	} else if reason != "" {
		return "", rejectf(Generic, v, reason)
	}
	if f, ok := asFloat64(v); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", rejectf(Generic, v, "not a finite number")
		}
		return formatFloat(f), nil
	}
	return "", rejectf(Generic, v, "expected an integer, a float or a string")
}

// decodeGeneric never fails: text that is neither an integer nor a float is returned as is.
// NOTE: the text "3" decodes to int64(3); this ambiguity is inherent to the generic codec.
func decodeGeneric(data string) any {
	if i, err := strconv.ParseInt(data, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(data, 64); err == nil {
		return f
	}
	return data
}

// --------------------------------------------------------------------------
// Int codec
// --------------------------------------------------------------------------

func encodeInt(v any) (string, error) {
	i, ok, reason := asInt64(v)
	if !ok {
		if reason == "" {
			reason = "expected an integer"
		}
		return "", rejectf(Int, v, reason)
	}
	return strconv.FormatInt(i, 10), nil
}

func decodeInt(data string) (any, error) {
	i, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		return nil, malformed(Int, data, err)
	}
	return i, nil
}

// --------------------------------------------------------------------------
// Float codec
// --------------------------------------------------------------------------

func encodeFloat(v any) (string, error) {
	f, ok := asFloat64(v)
	if !ok {
		i, isInt, reason := asInt64(v)
		if !isInt {
			if reason == "" {
				reason = "expected a float or an integer"
			}
			return "", rejectf(Float, v, reason)
		}
		f = float64(i)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", rejectf(Float, v, "not a finite number")
	}
	return formatFloat(f), nil
}

func decodeFloat(data string) (any, error) {
	f, err := strconv.ParseFloat(data, 64)
	if err != nil {
		return nil, malformed(Float, data, err)
	}
	return f, nil
}

// --------------------------------------------------------------------------
// String codec
// --------------------------------------------------------------------------

func encodeString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", rejectf(String, v, "expected a string")
	}
	return s, nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// asInt64 widens every Go integer kind to int64.
// If the value is an integer that does not fit, ok is false and reason is set.
func asInt64(v any) (i int64, ok bool, reason string) {
	switch n := v.(type) {
	case int:
		return int64(n), true, ""
	case int8:
		return int64(n), true, ""
	case int16:
		return int64(n), true, ""
	case int32:
		return int64(n), true, ""
	case int64:
		return n, true, ""
	case uint:
		return fromUint64(uint64(n))
	case uint8:
		return int64(n), true, ""
	case uint16:
		return int64(n), true, ""
	case uint32:
		return int64(n), true, ""
	case uint64:
		return fromUint64(n)
	default:
		return 0, false, ""
	}
}

func fromUint64(n uint64) (int64, bool, string) {
	if n > math.MaxInt64 {
		return 0, false, "integer overflows int64"
	}
	return int64(n), true, ""
}

// asFloat64 widens float32 and float64 to float64
func asFloat64(v any) (float64, bool) {
	switch f := v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	default:
		return 0, false
	}
}

// formatFloat formats f with the shortest representation that parses back to f.
// Integral values keep a decimal point so they are not mistaken for integers.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
