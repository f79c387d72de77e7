// Package collection provides typed wrappers for the remote data types of the
// store: String, Counter, List, Deque, Set, SortedSet and Dict (hash).
//
// Every wrapper embeds a *key.Key, so the common key operations (TTL, Expire,
// Persist, Delete, Exists, Representation) are available on each of them by
// delegation. Values are encoded and decoded through the codec bound to the
// key, every remote call passes the translation boundary of the key package.
//
// Error Semantics:
//
//   - Get style operations return nil (not an error) if the key or element is
//     absent. Operations that need an element return om.ErrNotFound,
//     om.ErrEmpty or om.ErrOutOfRange instead.
//   - Operating on a key that holds another representation fails with
//     om.ErrTypeMismatch and leaves the remote value unchanged.
//   - Values outside the domain of the bound codec fail with om.ErrEncode
//     before anything is sent to the store.
//   - Network and connection errors are returned unchanged.
//
// Representation Mapping:
//
//	String, Counter -> string
//	List, Deque     -> list
//	Set             -> set
//	SortedSet       -> zset
//	Dict            -> hash
//
// Only String.Set and String.SetNX (and their Counter forms) need the
// representation guard explicitly. SET silently replaces a value of any type
// and SETNX reports a key of another type as "already set". All other writes
// are rejected by the store itself and translated.
//
// Usage Example:
//
//	visits := collection.NewCounter("visits", client)
//	n, err := visits.Incr(ctx, 1)
//
//	queue := collection.NewList("jobs", client, key.WithCodec(codec.JSON))
//	_, err = queue.RPush(ctx, map[string]any{"id": 1})
//	job, err := queue.BLPop(ctx, 5*time.Second) // nil on timeout
package collection
