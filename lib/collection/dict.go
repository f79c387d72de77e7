package collection

import (
	"context"
	"errors"
	"github.com/ValentinKolb/ooKV/lib/codec"
	"github.com/ValentinKolb/ooKV/lib/key"
	"github.com/ValentinKolb/ooKV/lib/om"
	"github.com/redis/go-redis/v9"
)

// Dict is a key holding a hash: a map from string fields to values.
// Only the values pass the bound codec, fields are stored as given.
type Dict struct {
	*key.Key
}

// NewDict creates a new Dict wrapper for the given key name.
func NewDict(name string, client redis.Cmdable, opts ...key.Option) *Dict {
	return &Dict{key.New(name, client, opts...)}
}

// Set stores v under field.
func (d *Dict) Set(ctx context.Context, field string, v any) error {
	data, err := d.Encode(v)
	if err != nil {
		return err
	}
	return key.Translate(d.Client().HSet(ctx, d.Name(), field, data).Err())
}

// Get returns the value stored under field.
// It fails with om.ErrNotFound if the field does not exist.
func (d *Dict) Get(ctx context.Context, field string) (any, error) {
	data, err := d.Client().HGet(ctx, d.Name(), field).Result()
	if errors.Is(err, redis.Nil) {
		return nil, d.noField(field)
	}
	if err != nil {
		return nil, key.Translate(err)
	}
	return d.Codec().Decode(codec.Reply(data))
}

// Delete removes field. It fails with om.ErrNotFound if the field does not
// exist. Use Clear to delete the whole key.
func (d *Dict) Delete(ctx context.Context, field string) error {
	n, err := key.Result(d.Client().HDel(ctx, d.Name(), field).Result())
	if err != nil {
		return err
	}
	if n == 0 {
		return d.noField(field)
	}
	return nil
}

// Clear removes all fields (and therefore the key).
func (d *Dict) Clear(ctx context.Context) error {
	return d.Key.Delete(ctx)
}

// Contains reports whether field exists.
func (d *Dict) Contains(ctx context.Context, field string) (bool, error) {
	return key.Result(d.Client().HExists(ctx, d.Name(), field).Result())
}

// Keys returns every field in no particular order.
func (d *Dict) Keys(ctx context.Context) ([]string, error) {
	return key.Result(d.Client().HKeys(ctx, d.Name()).Result())
}

// Len returns the number of fields.
func (d *Dict) Len(ctx context.Context) (int64, error) {
	return key.Result(d.Client().HLen(ctx, d.Name()).Result())
}

// Items returns every field with its value.
func (d *Dict) Items(ctx context.Context) (map[string]any, error) {
	all, err := key.Result(d.Client().HGetAll(ctx, d.Name()).Result())
	if err != nil {
		return nil, err
	}

	items := make(map[string]any, len(all))
	for field, data := range all {
		v, err := d.Codec().Decode(codec.Reply(data))
		if err != nil {
			return nil, err
		}
		items[field] = v
	}
	return items, nil
}

// Incr adds n to the integer stored under field and returns the new value.
// A missing field starts at zero.
func (d *Dict) Incr(ctx context.Context, field string, n int64) (int64, error) {
	return key.Result(d.Client().HIncrBy(ctx, d.Name(), field, n).Result())
}

// Decr subtracts n from the integer stored under field.
func (d *Dict) Decr(ctx context.Context, field string, n int64) (int64, error) {
	return d.Incr(ctx, field, -n)
}

func (d *Dict) noField(field string) error {
	return om.Errorf(om.RetCNotFound, "field %q does not exist in hash %q", field, d.Name())
}
