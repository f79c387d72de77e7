package om

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

// TestErrorIs tests that errors match their sentinels by code only
func TestErrorIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"same code", NewError(RetCNotFound, "missing"), ErrNotFound, true},
		{"different code", NewError(RetCNotFound, "missing"), ErrEmpty, false},
		{"encode is a type mismatch", NewError(RetCEncode, "bad value"), ErrTypeMismatch, true},
		{"decode is a type mismatch", NewError(RetCDecode, "bad reply"), ErrTypeMismatch, true},
		{"type mismatch is not an encode error", NewError(RetCTypeMismatch, "list"), ErrEncode, false},
		{"wrapped", fmt.Errorf("outer: %w", NewError(RetCEmpty, "")), ErrEmpty, true},
		{"foreign error", errors.New("boom"), ErrTypeMismatch, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.want)
			}
		})
	}
}

// TestErrorCause tests that the cause of an error is kept and reported
func TestErrorCause(t *testing.T) {
	_, cause := strconv.ParseInt("x", 10, 64)
	err := NewError(RetCDecode, "not an integer").WithCause(cause)

	if !errors.Is(err, cause) {
		t.Errorf("Expected error to unwrap to its cause")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Expected WithCause to keep the code")
	}

	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Errorf("Expected errors.As to find the *strconv.NumError cause")
	}

	if got := NewError(RetCEmpty, "").Error(); got != "ooKV (code Empty): no details" {
		t.Errorf("Unexpected message for empty error: %q", got)
	}
}

// TestRepresentationRoundTrip tests the mapping between TYPE replies and representations
func TestRepresentationRoundTrip(t *testing.T) {
	for _, name := range []string{"none", "string", "list", "set", "zset", "hash", "stream"} {
		repr := ParseRepresentation(name)
		if repr == ReprUnknown {
			t.Errorf("Expected %q to be a known representation", name)
		}
		if repr.String() != name {
			t.Errorf("Expected %q, got %q", name, repr.String())
		}
	}

	if ParseRepresentation("vectorset") != ReprUnknown {
		t.Errorf("Expected unknown TYPE replies to map to ReprUnknown")
	}
	if ReprNone.Exists() {
		t.Errorf("ReprNone must not exist")
	}
	if !ReprHash.Exists() {
		t.Errorf("ReprHash must exist")
	}
}
