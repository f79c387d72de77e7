package collection

import (
	"context"
	"github.com/ValentinKolb/ooKV/lib/codec"
	"github.com/ValentinKolb/ooKV/lib/key"
	"github.com/ValentinKolb/ooKV/lib/om"
	"testing"
	"time"
)

func TestStringGetSet(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	s := NewString("greeting", client)

	// absent key decodes to nil
	v, err := s.Get(ctx)
	expectNoErr(t, err)
	expectEqual(t, v, nil)

	expectNoErr(t, s.Set(ctx, "hello"))
	mr.CheckGet(t, "greeting", "hello")

	v, err = s.Get(ctx)
	expectNoErr(t, err)
	expectEqual(t, v, "hello")

	old, err := s.GetSet(ctx, 42)
	expectNoErr(t, err)
	expectEqual(t, old, "hello")

	v, err = s.Get(ctx)
	expectNoErr(t, err)
	expectEqual(t, v, int64(42))

	old, err = NewString("missing", client).GetSet(ctx, "x")
	expectNoErr(t, err)
	expectEqual(t, old, nil)
}

func TestStringSetOptions(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	t.Run("expire", func(t *testing.T) {
		s := NewString("volatile", client)
		expectNoErr(t, s.Set(ctx, "x", WithExpire(time.Minute)))
		if got := mr.TTL("volatile"); got != time.Minute {
			t.Errorf("ttl = %v, want %v", got, time.Minute)
		}
	})

	t.Run("preserve on absent key", func(t *testing.T) {
		s := NewString("fresh", client)
		expectNoErr(t, s.Set(ctx, "first", Preserve()))
		mr.CheckGet(t, "fresh", "first")
	})

	t.Run("preserve on existing key", func(t *testing.T) {
		s := NewString("fresh", client)
		expectErr(t, s.Set(ctx, "second", Preserve()), om.ErrInvalidValue)
		mr.CheckGet(t, "fresh", "first")
	})

	t.Run("setnx", func(t *testing.T) {
		s := NewString("once", client)
		ok, err := s.SetNX(ctx, 1)
		expectNoErr(t, err)
		expectEqual(t, ok, true)

		ok, err = s.SetNX(ctx, 2)
		expectNoErr(t, err)
		expectEqual(t, ok, false)
		mr.CheckGet(t, "once", "1")
	})
}

// TestStringGuard checks that Set and SetNX never replace a value of another representation
func TestStringGuard(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	_, _ = mr.Push("k", "a", "b")

	s := NewString("k", client)
	expectErr(t, s.Set(ctx, "text"), om.ErrTypeMismatch)
	mr.CheckList(t, "k", "a", "b")

	_, err := s.Get(ctx)
	expectErr(t, err, om.ErrTypeMismatch)

	_, err = s.GetSet(ctx, "text")
	expectErr(t, err, om.ErrTypeMismatch)
	mr.CheckList(t, "k", "a", "b")

	ok, err := s.SetNX(ctx, "text")
	expectErr(t, err, om.ErrTypeMismatch)
	expectEqual(t, ok, false)
	mr.CheckList(t, "k", "a", "b")
}

func TestStringEncodeRejection(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	s := NewString("n", client, key.WithCodec(codec.Int))
	expectErr(t, s.Set(ctx, 3.14), om.ErrEncode)
	if mr.Exists("n") {
		t.Errorf("rejected value reached the store")
	}
}

func TestCounter(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	c := NewCounter("visits", client)
	if c.Codec() != codec.Int {
		t.Errorf("codec = %v, want %v", c.Codec(), codec.Int)
	}

	v, err := c.Get(ctx)
	expectNoErr(t, err)
	expectEqual(t, v, nil)

	n, err := c.Incr(ctx, 1)
	expectNoErr(t, err)
	expectEqual(t, n, int64(1))

	n, err = c.Incr(ctx, 10)
	expectNoErr(t, err)
	expectEqual(t, n, int64(11))

	n, err = c.Decr(ctx, 5)
	expectNoErr(t, err)
	expectEqual(t, n, int64(6))

	v, err = c.Get(ctx)
	expectNoErr(t, err)
	expectEqual(t, v, int64(6))

	expectNoErr(t, c.Set(ctx, 100))
	mr.CheckGet(t, "visits", "100")

	expectErr(t, c.Set(ctx, "abc"), om.ErrEncode)

	t.Run("non numeric value", func(t *testing.T) {
		_ = mr.Set("text", "abc")
		_, err := NewCounter("text", client).Incr(ctx, 1)
		expectErr(t, err, om.ErrTypeMismatch)
	})

	t.Run("wrong representation", func(t *testing.T) {
		_, _ = mr.SetAdd("set", "a")
		_, err := NewCounter("set", client).Decr(ctx, 1)
		expectErr(t, err, om.ErrTypeMismatch)
	})
}
