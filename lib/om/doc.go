// Package om holds the vocabulary shared by every layer of the object mapper:
// the structured error type returned by codecs, keys and collections, and the
// enumeration of remote representations a Redis key can hold.
//
// The package focuses on:
//   - A single error type (Error) with a return code (RetCode) so callers can
//     branch on the kind of failure with errors.Is instead of string matching
//   - A closed enumeration (Representation) of the shapes a remote key can take
//
// Key Components:
//
//   - Error / RetCode: Every failure produced by the mapper itself is an *Error.
//     Encode and decode failures are reported as type mismatches as well, so
//     errors.Is(err, ErrTypeMismatch) holds for all three codes, while
//     errors.Is(err, ErrEncode) only matches codec encode failures.
//
//   - Representation: The shape of a remote key (none, string, list, set, zset,
//     hash). It is always read fresh from the store and never cached.
//
// Errors that do not originate in the mapper (network failures, timeouts,
// unexpected server replies) are never wrapped into an *Error; they are
// returned to the caller unchanged.
package om
