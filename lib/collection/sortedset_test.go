package collection

import (
	"context"
	"github.com/ValentinKolb/ooKV/lib/om"
	"math"
	"testing"
)

func TestSortedSet(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	z := NewSortedSet("z", client)
	expectNoErr(t, z.Set(ctx, "bob", 20))
	expectNoErr(t, z.Set(ctx, "alice", 10))
	expectNoErr(t, z.Set(ctx, "carol", 30))

	n, err := z.Len(ctx)
	expectNoErr(t, err)
	expectEqual(t, n, int64(3))

	all, err := z.All(ctx)
	expectNoErr(t, err)
	expectEqual(t, all, []Member{{"alice", 10}, {"bob", 20}, {"carol", 30}})

	t.Run("at", func(t *testing.T) {
		m, err := z.At(ctx, -1)
		expectNoErr(t, err)
		expectEqual(t, m, Member{"carol", 30})

		_, err = z.At(ctx, 3)
		expectErr(t, err, om.ErrOutOfRange)
	})

	t.Run("lookup", func(t *testing.T) {
		ok, err := z.Contains(ctx, "bob")
		expectNoErr(t, err)
		expectEqual(t, ok, true)

		ok, err = z.Contains(ctx, "dave")
		expectNoErr(t, err)
		expectEqual(t, ok, false)

		rank, err := z.Rank(ctx, "bob")
		expectNoErr(t, err)
		expectEqual(t, rank, int64(1))

		rank, err = z.ReverseRank(ctx, "alice")
		expectNoErr(t, err)
		expectEqual(t, rank, int64(2))

		score, err := z.Score(ctx, "carol")
		expectNoErr(t, err)
		expectEqual(t, score, float64(30))

		_, err = z.Rank(ctx, "dave")
		expectErr(t, err, om.ErrNotFound)
		_, err = z.ReverseRank(ctx, "dave")
		expectErr(t, err, om.ErrNotFound)
		_, err = z.Score(ctx, "dave")
		expectErr(t, err, om.ErrNotFound)
	})

	t.Run("incr", func(t *testing.T) {
		score, err := z.Incr(ctx, "alice", 25)
		expectNoErr(t, err)
		expectEqual(t, score, float64(35))

		score, err = z.Decr(ctx, "alice", 0.5)
		expectNoErr(t, err)
		expectEqual(t, score, 34.5)

		rank, _ := z.Rank(ctx, "alice")
		expectEqual(t, rank, int64(2))
	})

	t.Run("remove", func(t *testing.T) {
		expectNoErr(t, z.Remove(ctx, "bob"))
		expectErr(t, z.Remove(ctx, "bob"), om.ErrNotFound)
		expectNoErr(t, z.Discard(ctx, "bob"))

		// carol (30), alice (34.5)
		expectNoErr(t, z.RemoveAt(ctx, 0))
		expectErr(t, z.RemoveAt(ctx, 5), om.ErrOutOfRange)

		if ok, _ := z.Contains(ctx, "carol"); ok {
			t.Errorf("carol is still a member")
		}

		expectNoErr(t, z.Set(ctx, "erin", 1))
		removed, err := z.RemoveRange(ctx, 0, -1)
		expectNoErr(t, err)
		expectEqual(t, removed, int64(2))
		if mr.Exists("z") {
			t.Errorf("sorted set still exists")
		}
	})
}

func TestSortedSetWrongRepresentation(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	_, _ = mr.SetAdd("s", "a")
	z := NewSortedSet("s", client)

	expectErr(t, z.Set(ctx, "a", 1), om.ErrTypeMismatch)
	_, err := z.Score(ctx, "a")
	expectErr(t, err, om.ErrTypeMismatch)
	_, err = z.Rank(ctx, "a")
	expectErr(t, err, om.ErrTypeMismatch)
	_, err = z.All(ctx)
	expectErr(t, err, om.ErrTypeMismatch)

	if ok, _ := mr.IsMember("s", "a"); !ok {
		t.Errorf("set was modified")
	}
}

func TestSortedSetInvalidScore(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	z := NewSortedSet("z", client)
	expectNoErr(t, z.Set(ctx, "a", 1))

	expectErr(t, z.Set(ctx, "b", math.NaN()), om.ErrInvalidValue)
	_, err := z.Incr(ctx, "a", math.NaN())
	expectErr(t, err, om.ErrInvalidValue)
	_, err = z.Decr(ctx, "a", math.NaN())
	expectErr(t, err, om.ErrInvalidValue)

	members, err := mr.ZMembers("z")
	expectNoErr(t, err)
	expectEqual(t, members, []string{"a"})
	score, err := z.Score(ctx, "a")
	expectNoErr(t, err)
	expectEqual(t, score, 1.0)
}
