// Package key implements the key handle every collection type of the object
// mapper is built on, together with the two mechanisms that keep a key's
// logical type stable: the representation guard and the translation boundary.
//
// The package focuses on:
//   - Binding a remote key name to a shared client and a codec (Key)
//   - Operations common to every representation (TTL, expire, persist, delete)
//   - Refusing writes that would silently change a key's representation (guard)
//   - Mapping the driver's "wrong kind of value" replies to om.ErrTypeMismatch
//
// Key Components:
//
//   - Key: Identity (name), the bound client (not owned, shared by all keys) and
//     the bound codec. Two keys are equal if their names are equal. A Key never
//     caches anything: every call is a live round trip to the store.
//
//   - Guard: Representation reads the TYPE of the key, RequireRepresentationOrNone
//     fails with om.ErrTypeMismatch if the key exists with a different
//     representation. Absent keys always pass, the first write establishes the
//     representation. The check and the following write are two separate round
//     trips, a concurrent writer can change the key in between. This race is
//     accepted; the mapper does not use transactions.
//
//   - Translation boundary: Translate and Result wrap every remote call of the
//     collection types. Server replies signalling a representation conflict
//     (WRONGTYPE, or a numeric command run against non numeric text) become
//     om.ErrTypeMismatch. Everything else, including redis.Nil and network
//     errors, passes through unchanged.
//
// Usage Example:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	k := key.New("session:42", client, key.WithCodec(codec.JSON))
//
//	if err := k.Expire(ctx, time.Hour); errors.Is(err, om.ErrNotFound) {
//	  // the key does not exist (yet)
//	}
//
// Thread Safety:
//
//	Keys are immutable after construction and safe for concurrent use, provided
//	the client is (all go-redis clients are).
package key
