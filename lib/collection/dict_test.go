package collection

import (
	"context"
	"github.com/ValentinKolb/ooKV/lib/codec"
	"github.com/ValentinKolb/ooKV/lib/key"
	"github.com/ValentinKolb/ooKV/lib/om"
	"sort"
	"testing"
)

func TestDict(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	d := NewDict("user", client, key.WithCodec(codec.JSON))

	expectNoErr(t, d.Set(ctx, "name", "alice"))
	expectNoErr(t, d.Set(ctx, "tags", []any{"a", "b"}))
	if got := mr.HGet("user", "name"); got != `"alice"` {
		t.Errorf("stored %q, want %q", got, `"alice"`)
	}

	v, err := d.Get(ctx, "name")
	expectNoErr(t, err)
	expectEqual(t, v, "alice")

	_, err = d.Get(ctx, "missing")
	expectErr(t, err, om.ErrNotFound)

	ok, err := d.Contains(ctx, "tags")
	expectNoErr(t, err)
	expectEqual(t, ok, true)

	n, err := d.Len(ctx)
	expectNoErr(t, err)
	expectEqual(t, n, int64(2))

	keys, err := d.Keys(ctx)
	expectNoErr(t, err)
	sort.Strings(keys)
	expectEqual(t, keys, []string{"name", "tags"})

	items, err := d.Items(ctx)
	expectNoErr(t, err)
	expectEqual(t, items, map[string]any{"name": "alice", "tags": []any{"a", "b"}})

	expectNoErr(t, d.Delete(ctx, "tags"))
	expectErr(t, d.Delete(ctx, "tags"), om.ErrNotFound)

	expectNoErr(t, d.Clear(ctx))
	if mr.Exists("user") {
		t.Errorf("hash still exists after Clear()")
	}
}

func TestDictIncr(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	d := NewDict("stats", client, key.WithCodec(codec.Int))

	n, err := d.Incr(ctx, "hits", 5)
	expectNoErr(t, err)
	expectEqual(t, n, int64(5))

	n, err = d.Decr(ctx, "hits", 2)
	expectNoErr(t, err)
	expectEqual(t, n, int64(3))

	v, err := d.Get(ctx, "hits")
	expectNoErr(t, err)
	expectEqual(t, v, int64(3))

	mr.HSet("stats", "name", "abc")
	_, err = d.Incr(ctx, "name", 1)
	expectErr(t, err, om.ErrTypeMismatch)
}

// TestDictOnList checks that hash field operations on a list fail with the same
// error as the representation guard
func TestDictOnList(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	_, _ = mr.Push("k", "a")
	d := NewDict("k", client)

	_, err := d.Get(ctx, "f")
	expectErr(t, err, om.ErrTypeMismatch)
	expectErr(t, d.Set(ctx, "f", "v"), om.ErrTypeMismatch)
	_, err = d.Keys(ctx)
	expectErr(t, err, om.ErrTypeMismatch)
	_, err = d.Items(ctx)
	expectErr(t, err, om.ErrTypeMismatch)

	// same kind as the guard path of String.Set
	guardErr := NewString("k", client).Set(ctx, "x")
	expectErr(t, guardErr, om.ErrTypeMismatch)

	mr.CheckList(t, "k", "a")
}
