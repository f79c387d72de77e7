package collection

import (
	"context"
	"github.com/ValentinKolb/ooKV/lib/codec"
	"github.com/ValentinKolb/ooKV/lib/key"
	"github.com/redis/go-redis/v9"
	"math"
	"reflect"
	"time"
)

// Deque is a double ended queue stored as a list. The right end is the tail.
type Deque struct {
	list *List
	*key.Key
}

// NewDeque creates a new Deque wrapper for the given key name.
func NewDeque(name string, client redis.Cmdable, opts ...key.Option) *Deque {
	l := NewList(name, client, opts...)
	return &Deque{list: l, Key: l.Key}
}

// Append adds v to the right end.
func (d *Deque) Append(ctx context.Context, v any) error {
	_, err := d.list.RPush(ctx, v)
	return err
}

// AppendLeft adds v to the left end.
func (d *Deque) AppendLeft(ctx context.Context, v any) error {
	_, err := d.list.LPush(ctx, v)
	return err
}

// Extend appends every value to the right end, in order.
func (d *Deque) Extend(ctx context.Context, vs ...any) error {
	_, err := d.list.RPush(ctx, vs...)
	return err
}

// ExtendLeft adds every value to the left end, one after the other. The
// values therefore end up in reverse order.
func (d *Deque) ExtendLeft(ctx context.Context, vs ...any) error {
	_, err := d.list.LPush(ctx, vs...)
	return err
}

// Len returns the number of elements.
func (d *Deque) Len(ctx context.Context) (int64, error) {
	return d.list.Len(ctx)
}

// Items returns every element from left to right.
func (d *Deque) Items(ctx context.Context) ([]any, error) {
	return d.list.All(ctx)
}

// Index returns the element at index i (see List.Index).
func (d *Deque) Index(ctx context.Context, i int64) (any, error) {
	return d.list.Index(ctx, i)
}

// Count returns the number of elements equal to v. Elements are compared
// after decoding, numbers by value (3 matches a stored 3.0).
func (d *Deque) Count(ctx context.Context, v any) (int, error) {
	data, err := d.Encode(v)
	if err != nil {
		return 0, err
	}
	want, err := d.Codec().Decode(codec.Reply(data))
	if err != nil {
		return 0, err
	}
	items, err := d.list.All(ctx)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, item := range items {
		if equalValues(item, want) {
			n++
		}
	}
	return n, nil
}

// Clear removes all elements.
func (d *Deque) Clear(ctx context.Context) error {
	return d.list.Clear(ctx)
}

// Pop removes and returns the rightmost element (om.ErrEmpty if there is none).
func (d *Deque) Pop(ctx context.Context) (any, error) {
	return d.list.RPop(ctx)
}

// PopLeft removes and returns the leftmost element (om.ErrEmpty if there is none).
func (d *Deque) PopLeft(ctx context.Context) (any, error) {
	return d.list.LPop(ctx)
}

// BlockPop waits at most timeout for a rightmost element, nil on timeout.
func (d *Deque) BlockPop(ctx context.Context, timeout time.Duration) (any, error) {
	return d.list.BRPop(ctx, timeout)
}

// BlockPopLeft waits at most timeout for a leftmost element, nil on timeout.
func (d *Deque) BlockPopLeft(ctx context.Context, timeout time.Duration) (any, error) {
	return d.list.BLPop(ctx, timeout)
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// equalValues compares two decoded values. Numbers are equal if they have the
// same value regardless of their type, everything else is compared deeply.
func equalValues(a, b any) bool {
	switch x := a.(type) {
	case int64:
		switch y := b.(type) {
		case int64:
			return x == y
		case uint64:
			return x >= 0 && uint64(x) == y
		case float64:
			return floatEqualsInt(y, x)
		}
	case uint64:
		switch y := b.(type) {
		case int64:
			return y >= 0 && uint64(y) == x
		case uint64:
			return x == y
		case float64:
			return y >= 0 && y < math.Exp2(64) && y == math.Trunc(y) && uint64(y) == x
		}
	case float64:
		switch y := b.(type) {
		case int64:
			return floatEqualsInt(x, y)
		case uint64:
			return equalValues(y, x)
		case float64:
			return x == y
		}
	}
	return reflect.DeepEqual(a, b)
}

// floatEqualsInt reports whether f is exactly the integer i
func floatEqualsInt(f float64, i int64) bool {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.Exp2(63) {
		return false
	}
	return int64(f) == i
}
