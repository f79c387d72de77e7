package key

import (
	"context"
	"fmt"
	"github.com/ValentinKolb/ooKV/lib/codec"
	"github.com/ValentinKolb/ooKV/lib/om"
	"github.com/redis/go-redis/v9"
	"time"
)

// Key is a named, typed binding to a remote key.
type Key struct {
	name   string
	client redis.Cmdable
	codec  codec.Codec
}

// Option configures a Key at construction time
type Option func(*Key)

// WithCodec binds a codec to the key (default: codec.Generic)
func WithCodec(c codec.Codec) Option {
	return func(k *Key) {
		k.codec = c
	}
}

// New creates a new key handle. Nothing is sent to the store: the remote key
// comes into existence with the first write. The client must not be nil and
// is shared, the key does not close it.
func New(name string, client redis.Cmdable, opts ...Option) *Key {
	k := &Key{
		name:   name,
		client: client,
		codec:  codec.Generic,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// --------------------------------------------------------------------------
// Accessors
// --------------------------------------------------------------------------

// Name returns the name of the remote key.
func (k *Key) Name() string {
	return k.name
}

// Client returns the client the key is bound to.
func (k *Key) Client() redis.Cmdable {
	return k.client
}

// Codec returns the codec the key is bound to.
func (k *Key) Codec() codec.Codec {
	return k.codec
}

// Equal reports whether both keys refer to the same remote key.
// Only the names are compared, never the client or the codec.
func (k *Key) Equal(other *Key) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.name == other.name
}

// String implements fmt.Stringer
func (k *Key) String() string {
	return fmt.Sprintf("Key '%s' (%s codec)", k.name, k.codec)
}

// --------------------------------------------------------------------------
// Common key operations
// --------------------------------------------------------------------------

// Exists reports whether the key exists.
func (k *Key) Exists(ctx context.Context) (bool, error) {
	n, err := k.client.Exists(ctx, k.name).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (k *Key) Delete(ctx context.Context) error {
	return k.client.Del(ctx, k.name).Err()
}

// TTL returns the remaining time to live of the key.
// The boolean is false if the key does not exist or has no expiry.
func (k *Key) TTL(ctx context.Context) (time.Duration, bool, error) {
	ttl, err := k.client.TTL(ctx, k.name).Result()
	if err != nil {
		return 0, false, err
	}
	// -1 (no expiry) and -2 (no key) are passed through as raw durations
	if ttl < 0 {
		return 0, false, nil
	}
	return ttl, true, nil
}

// Expire sets (or refreshes) the time to live of the key.
// It fails with om.ErrNotFound if the key does not exist.
func (k *Key) Expire(ctx context.Context, ttl time.Duration) error {
	ok, err := k.client.Expire(ctx, k.name, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return k.notFound()
	}
	return nil
}

// ExpireAt lets the key expire at the given point in time.
// It fails with om.ErrNotFound if the key does not exist.
func (k *Key) ExpireAt(ctx context.Context, at time.Time) error {
	ok, err := k.client.ExpireAt(ctx, k.name, at).Result()
	if err != nil {
		return err
	}
	if !ok {
		return k.notFound()
	}
	return nil
}

// Persist removes the time to live of the key.
// It fails with om.ErrNotFound if the key does not exist and does nothing if
// the key exists without an expiry.
func (k *Key) Persist(ctx context.Context) error {
	ok, err := k.client.Persist(ctx, k.name).Result()
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	// PERSIST replies 0 for both "no key" and "no expiry"
	exists, err := k.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return k.notFound()
	}
	return nil
}

// --------------------------------------------------------------------------
// Codec helpers (used by the collection types)
// --------------------------------------------------------------------------

// Encode encodes a value with the bound codec.
func (k *Key) Encode(v any) (string, error) {
	return k.codec.Encode(v)
}

// EncodeAll encodes several values with the bound codec.
func (k *Key) EncodeAll(vs []any) ([]any, error) {
	return k.codec.EncodeAll(vs)
}

// Decode decodes the result of a single value command with the bound codec.
// redis.Nil decodes to nil, other errors are translated (see Translate).
func (k *Key) Decode(data string, err error) (any, error) {
	w, err := Wire(data, err)
	if err != nil {
		return nil, err
	}
	return k.codec.Decode(w)
}

// DecodeAll decodes the result of a multi value command with the bound codec.
func (k *Key) DecodeAll(data []string, err error) ([]any, error) {
	if err != nil {
		return nil, Translate(err)
	}
	return k.codec.DecodeAll(data)
}

func (k *Key) notFound() error {
	return om.Errorf(om.RetCNotFound, "key %q does not exist", k.name)
}
