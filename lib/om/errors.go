package om

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCUnknown      RetCode = iota // 0: Unspecified failure (only used by the zero value).
	RetCTypeMismatch                // 1: The key holds a different representation than the operation requires.
	RetCEncode                      // 2: The codec rejected a value outside its domain.
	RetCDecode                      // 3: The codec could not decode a reply from the store.
	RetCNotFound                    // 4: The operation requires a key, member or field that does not exist.
	RetCEmpty                       // 5: The operation requires an element but the collection is empty.
	RetCOutOfRange                  // 6: An index lies outside the collection.
	RetCInvalidValue                // 7: The caller violated a precondition of the operation.
)

// String returns the name of the return code.
func (c RetCode) String() string {
	switch c {
	case RetCTypeMismatch:
		return "TypeMismatch"
	case RetCEncode:
		return "EncodeError"
	case RetCDecode:
		return "DecodeError"
	case RetCNotFound:
		return "NotFound"
	case RetCEmpty:
		return "Empty"
	case RetCOutOfRange:
		return "OutOfRange"
	case RetCInvalidValue:
		return "InvalidValue"
	default:
		return "Unknown"
	}
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is the error type returned by the object mapper.
// It wraps a return code (of type RetCode), a message and an optional cause.
type Error struct {
	Code  RetCode // The return code
	Msg   string  // The error message.
	cause error
}

// Sentinels for errors.Is. Only the Code is compared.
var (
	ErrTypeMismatch = &Error{Code: RetCTypeMismatch}
	ErrEncode       = &Error{Code: RetCEncode}
	ErrDecode       = &Error{Code: RetCDecode}
	ErrNotFound     = &Error{Code: RetCNotFound}
	ErrEmpty        = &Error{Code: RetCEmpty}
	ErrOutOfRange   = &Error{Code: RetCOutOfRange}
	ErrInvalidValue = &Error{Code: RetCInvalidValue}
)

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// Errorf creates a new Error with the given code and a formatted message.
func Errorf(code RetCode, format string, args ...interface{}) *Error {
	return NewError(code, fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the error that unwraps to cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{
		Code:  e.Code,
		Msg:   e.Msg,
		cause: cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "no details"
	}
	if e.cause != nil {
		return fmt.Sprintf("ooKV (code %s): %s: %v", e.Code, msg, e.cause)
	}
	return fmt.Sprintf("ooKV (code %s): %s", e.Code, msg)
}

// Unwrap returns the cause of the error (if any).
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether the error matches target.
// Two errors match if their codes are equal. Encode and decode errors also
// match ErrTypeMismatch since a codec failure is a type error of the value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code == e.Code {
		return true
	}
	return t.Code == RetCTypeMismatch && (e.Code == RetCEncode || e.Code == RetCDecode)
}
