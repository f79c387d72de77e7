package collection

import (
	"context"
	"errors"
	"github.com/ValentinKolb/ooKV/lib/key"
	"github.com/ValentinKolb/ooKV/lib/om"
	"github.com/redis/go-redis/v9"
	"time"
)

// List is a key holding a list of values. Indices are zero based, negative
// indices count from the end of the list (-1 is the last element).
type List struct {
	*key.Key
}

// NewList creates a new List wrapper for the given key name.
func NewList(name string, client redis.Cmdable, opts ...key.Option) *List {
	return &List{key.New(name, client, opts...)}
}

// --------------------------------------------------------------------------
// Read operations
// --------------------------------------------------------------------------

// Len returns the number of elements (0 for an absent key).
func (l *List) Len(ctx context.Context) (int64, error) {
	return key.Result(l.Client().LLen(ctx, l.Name()).Result())
}

// Index returns the element at index i.
func (l *List) Index(ctx context.Context, i int64) (any, error) {
	w, err := key.Wire(l.Client().LIndex(ctx, l.Name(), i).Result())
	if err != nil {
		return nil, err
	}
	if !w.Present {
		return nil, l.outOfRange(i)
	}
	return l.Codec().Decode(w)
}

// Range returns the elements from start to stop (both inclusive).
func (l *List) Range(ctx context.Context, start, stop int64) ([]any, error) {
	return l.DecodeAll(l.Client().LRange(ctx, l.Name(), start, stop).Result())
}

// All returns every element of the list.
func (l *List) All(ctx context.Context) ([]any, error) {
	return l.Range(ctx, 0, -1)
}

// --------------------------------------------------------------------------
// Write operations
// --------------------------------------------------------------------------

// SetIndex replaces the element at index i.
func (l *List) SetIndex(ctx context.Context, i int64, v any) error {
	data, err := l.Encode(v)
	if err != nil {
		return err
	}

	n, err := l.Len(ctx)
	if err != nil {
		return err
	}
	if i >= n || i < -n {
		return l.outOfRange(i)
	}

	return key.Translate(l.Client().LSet(ctx, l.Name(), i, data).Err())
}

// Trim removes every element outside start to stop (both inclusive).
func (l *List) Trim(ctx context.Context, start, stop int64) error {
	return key.Translate(l.Client().LTrim(ctx, l.Name(), start, stop).Err())
}

// Clear removes all elements (and therefore the key).
func (l *List) Clear(ctx context.Context) error {
	return l.Delete(ctx)
}

// Remove removes every element equal to v and returns how many were removed.
func (l *List) Remove(ctx context.Context, v any) (int64, error) {
	data, err := l.Encode(v)
	if err != nil {
		return 0, err
	}
	return key.Result(l.Client().LRem(ctx, l.Name(), 0, data).Result())
}

// LPush inserts the values at the head of the list and returns the new length.
// The values are inserted one after the other, so the last value ends up first.
func (l *List) LPush(ctx context.Context, vs ...any) (int64, error) {
	if len(vs) == 0 {
		return l.Len(ctx)
	}
	data, err := l.EncodeAll(vs)
	if err != nil {
		return 0, err
	}
	return key.Result(l.Client().LPush(ctx, l.Name(), data...).Result())
}

// RPush appends the values to the tail of the list and returns the new length.
func (l *List) RPush(ctx context.Context, vs ...any) (int64, error) {
	if len(vs) == 0 {
		return l.Len(ctx)
	}
	data, err := l.EncodeAll(vs)
	if err != nil {
		return 0, err
	}
	return key.Result(l.Client().RPush(ctx, l.Name(), data...).Result())
}

// --------------------------------------------------------------------------
// Pop operations
// --------------------------------------------------------------------------

// LPop removes and returns the first element (om.ErrEmpty if there is none).
func (l *List) LPop(ctx context.Context) (any, error) {
	return l.pop(l.Client().LPop(ctx, l.Name()).Result())
}

// RPop removes and returns the last element (om.ErrEmpty if there is none).
func (l *List) RPop(ctx context.Context) (any, error) {
	return l.pop(l.Client().RPop(ctx, l.Name()).Result())
}

// BLPop is the blocking version of LPop. It waits at most timeout for an
// element and returns nil if none arrived. A timeout of 0 blocks forever.
func (l *List) BLPop(ctx context.Context, timeout time.Duration) (any, error) {
	return l.blockingPop(l.Client().BLPop(ctx, timeout, l.Name()).Result())
}

// BRPop is the blocking version of RPop (see BLPop).
func (l *List) BRPop(ctx context.Context, timeout time.Duration) (any, error) {
	return l.blockingPop(l.Client().BRPop(ctx, timeout, l.Name()).Result())
}

// RPopLPush removes the last element and pushes it to the head of the list
// named destination. It returns the element or nil if the list is empty.
func (l *List) RPopLPush(ctx context.Context, destination string) (any, error) {
	return l.Decode(l.Client().RPopLPush(ctx, l.Name(), destination).Result())
}

// BRPopLPush is the blocking version of RPopLPush. It returns nil on timeout.
func (l *List) BRPopLPush(ctx context.Context, destination string, timeout time.Duration) (any, error) {
	return l.Decode(l.Client().BRPopLPush(ctx, l.Name(), destination, timeout).Result())
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func (l *List) pop(data string, err error) (any, error) {
	w, err := key.Wire(data, err)
	if err != nil {
		return nil, err
	}
	if !w.Present {
		return nil, om.Errorf(om.RetCEmpty, "list %q is empty", l.Name())
	}
	return l.Codec().Decode(w)
}

// blockingPop decodes a [key, value] reply
func (l *List) blockingPop(reply []string, err error) (any, error) {
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, key.Translate(err)
	}
	if len(reply) != 2 {
		return nil, om.Errorf(om.RetCDecode, "unexpected reply with %d elements", len(reply))
	}
	return l.Decode(reply[1], nil)
}

func (l *List) outOfRange(i int64) error {
	return om.Errorf(om.RetCOutOfRange, "index %d out of range for list %q", i, l.Name())
}
