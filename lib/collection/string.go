package collection

import (
	"context"
	"github.com/ValentinKolb/ooKV/lib/codec"
	"github.com/ValentinKolb/ooKV/lib/key"
	"github.com/ValentinKolb/ooKV/lib/om"
	"github.com/redis/go-redis/v9"
	"time"
)

// String is a key holding a single value.
type String struct {
	*key.Key
}

// NewString creates a new String wrapper for the given key name.
func NewString(name string, client redis.Cmdable, opts ...key.Option) *String {
	return &String{key.New(name, client, opts...)}
}

// SetOption modifies a single String.Set call
type SetOption func(*setOptions)

type setOptions struct {
	preserve bool
	expire   time.Duration
}

// Preserve makes Set fail with om.ErrInvalidValue instead of overwriting an
// existing value.
func Preserve() SetOption {
	return func(o *setOptions) {
		o.preserve = true
	}
}

// WithExpire lets the key expire after d. Non positive durations are ignored.
func WithExpire(d time.Duration) SetOption {
	return func(o *setOptions) {
		if d > 0 {
			o.expire = d
		}
	}
}

// Get returns the value of the key or nil if the key does not exist.
func (s *String) Get(ctx context.Context) (any, error) {
	return s.Decode(s.Client().Get(ctx, s.Name()).Result())
}

// Set stores v. Unlike the store's SET command it refuses to overwrite a key
// holding another representation (om.ErrTypeMismatch).
func (s *String) Set(ctx context.Context, v any, opts ...SetOption) error {
	o := setOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := s.Encode(v)
	if err != nil {
		return err
	}

	if err := s.RequireRepresentationOrNone(ctx, om.ReprString); err != nil {
		return err
	}

	if o.preserve {
		ok, err := key.Result(s.Client().SetNX(ctx, s.Name(), data, o.expire).Result())
		if err != nil {
			return err
		}
		if !ok {
			return om.Errorf(om.RetCInvalidValue, "key %q already holds a value", s.Name())
		}
		return nil
	}

	return key.Translate(s.Client().Set(ctx, s.Name(), data, o.expire).Err())
}

// SetNX stores v only if the key does not exist and reports whether it did.
// A key of another representation fails with om.ErrTypeMismatch.
func (s *String) SetNX(ctx context.Context, v any) (bool, error) {
	data, err := s.Encode(v)
	if err != nil {
		return false, err
	}
	if err := s.RequireRepresentationOrNone(ctx, om.ReprString); err != nil {
		return false, err
	}
	return key.Result(s.Client().SetNX(ctx, s.Name(), data, 0).Result())
}

// GetSet stores v and returns the previous value (nil if there was none).
func (s *String) GetSet(ctx context.Context, v any) (any, error) {
	data, err := s.Encode(v)
	if err != nil {
		return nil, err
	}
	return s.Decode(s.Client().GetSet(ctx, s.Name(), data).Result())
}

// --------------------------------------------------------------------------
// Counter
// --------------------------------------------------------------------------

// Counter is a String holding an integer that can be changed atomically.
type Counter struct {
	*String
}

// NewCounter creates a new Counter. The codec defaults to codec.Int.
func NewCounter(name string, client redis.Cmdable, opts ...key.Option) *Counter {
	opts = append([]key.Option{key.WithCodec(codec.Int)}, opts...)
	return &Counter{NewString(name, client, opts...)}
}

// Incr adds n to the counter and returns the new value.
// An absent counter starts at zero.
func (c *Counter) Incr(ctx context.Context, n int64) (int64, error) {
	return key.Result(c.Client().IncrBy(ctx, c.Name(), n).Result())
}

// Decr subtracts n from the counter and returns the new value.
func (c *Counter) Decr(ctx context.Context, n int64) (int64, error) {
	return key.Result(c.Client().DecrBy(ctx, c.Name(), n).Result())
}
