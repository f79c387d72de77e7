package collection

import (
	"context"
	"errors"
	"fmt"
	"github.com/ValentinKolb/ooKV/lib/codec"
	"github.com/ValentinKolb/ooKV/lib/key"
	"github.com/ValentinKolb/ooKV/lib/om"
	"github.com/redis/go-redis/v9"
	"math"
)

// Member is a single element of a sorted set.
type Member struct {
	Value any
	Score float64
}

// SortedSet is a key holding a set of distinct values, each with a score.
// Members are ordered by score (ascending), ties by their encoded form.
type SortedSet struct {
	*key.Key
}

// NewSortedSet creates a new SortedSet wrapper for the given key name.
func NewSortedSet(name string, client redis.Cmdable, opts ...key.Option) *SortedSet {
	return &SortedSet{key.New(name, client, opts...)}
}

// --------------------------------------------------------------------------
// Read operations
// --------------------------------------------------------------------------

// Len returns the number of members.
func (z *SortedSet) Len(ctx context.Context) (int64, error) {
	return key.Result(z.Client().ZCard(ctx, z.Name()).Result())
}

// Contains reports whether v is a member.
func (z *SortedSet) Contains(ctx context.Context, v any) (bool, error) {
	_, ok, err := z.score(ctx, v)
	return ok, err
}

// At returns the member with the given rank (negative ranks count from the end).
func (z *SortedSet) At(ctx context.Context, index int64) (Member, error) {
	members, err := z.Range(ctx, index, index)
	if err != nil {
		return Member{}, err
	}
	if len(members) == 0 {
		return Member{}, om.Errorf(om.RetCOutOfRange, "index %d out of range for sorted set %q", index, z.Name())
	}
	return members[0], nil
}

// Range returns the members ranked start to stop (both inclusive).
func (z *SortedSet) Range(ctx context.Context, start, stop int64) ([]Member, error) {
	items, err := key.Result(z.Client().ZRangeWithScores(ctx, z.Name(), start, stop).Result())
	if err != nil {
		return nil, err
	}

	members := make([]Member, len(items))
	for i, item := range items {
		v, err := z.Codec().Decode(codec.Reply(fmt.Sprint(item.Member)))
		if err != nil {
			return nil, err
		}
		members[i] = Member{Value: v, Score: item.Score}
	}
	return members, nil
}

// All returns every member in rank order.
func (z *SortedSet) All(ctx context.Context) ([]Member, error) {
	return z.Range(ctx, 0, -1)
}

// Rank returns the rank of v (0 for the lowest score).
// It fails with om.ErrNotFound if v is not a member.
func (z *SortedSet) Rank(ctx context.Context, v any) (int64, error) {
	data, err := z.Encode(v)
	if err != nil {
		return 0, err
	}
	return z.rank(z.Client().ZRank(ctx, z.Name(), data).Result())
}

// ReverseRank returns the rank of v counted from the highest score.
func (z *SortedSet) ReverseRank(ctx context.Context, v any) (int64, error) {
	data, err := z.Encode(v)
	if err != nil {
		return 0, err
	}
	return z.rank(z.Client().ZRevRank(ctx, z.Name(), data).Result())
}

// Score returns the score of v. It fails with om.ErrNotFound if v is not a member.
func (z *SortedSet) Score(ctx context.Context, v any) (float64, error) {
	score, ok, err := z.score(ctx, v)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, z.notMember()
	}
	return score, nil
}

// --------------------------------------------------------------------------
// Write operations
// --------------------------------------------------------------------------

// Set adds v with the given score, or updates the score if v is a member.
func (z *SortedSet) Set(ctx context.Context, v any, score float64) error {
	if err := checkScore(score); err != nil {
		return err
	}
	data, err := z.Encode(v)
	if err != nil {
		return err
	}
	return key.Translate(z.Client().ZAdd(ctx, z.Name(), redis.Z{Score: score, Member: data}).Err())
}

// Incr adds by to the score of v and returns the new score.
// A missing member is added with score by.
func (z *SortedSet) Incr(ctx context.Context, v any, by float64) (float64, error) {
	if err := checkScore(by); err != nil {
		return 0, err
	}
	data, err := z.Encode(v)
	if err != nil {
		return 0, err
	}
	return key.Result(z.Client().ZIncrBy(ctx, z.Name(), by, data).Result())
}

// checkScore rejects NaN, the server refuses it as a score. Infinities are valid.
func checkScore(score float64) error {
	if math.IsNaN(score) {
		return om.NewError(om.RetCInvalidValue, "score must be a number")
	}
	return nil
}

// Decr subtracts by from the score of v and returns the new score.
func (z *SortedSet) Decr(ctx context.Context, v any, by float64) (float64, error) {
	return z.Incr(ctx, v, -by)
}

// Remove removes v. It fails with om.ErrNotFound if v is not a member.
func (z *SortedSet) Remove(ctx context.Context, v any) error {
	n, err := z.zrem(ctx, v)
	if err != nil {
		return err
	}
	if n == 0 {
		return z.notMember()
	}
	return nil
}

// Discard removes v if it is a member.
func (z *SortedSet) Discard(ctx context.Context, v any) error {
	_, err := z.zrem(ctx, v)
	return err
}

// RemoveAt removes the member with the given rank.
func (z *SortedSet) RemoveAt(ctx context.Context, index int64) error {
	n, err := z.RemoveRange(ctx, index, index)
	if err != nil {
		return err
	}
	if n == 0 {
		return om.Errorf(om.RetCOutOfRange, "index %d out of range for sorted set %q", index, z.Name())
	}
	return nil
}

// RemoveRange removes the members ranked start to stop (both inclusive) and
// returns how many were removed.
func (z *SortedSet) RemoveRange(ctx context.Context, start, stop int64) (int64, error) {
	return key.Result(z.Client().ZRemRangeByRank(ctx, z.Name(), start, stop).Result())
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func (z *SortedSet) score(ctx context.Context, v any) (float64, bool, error) {
	data, err := z.Encode(v)
	if err != nil {
		return 0, false, err
	}
	score, err := z.Client().ZScore(ctx, z.Name(), data).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, key.Translate(err)
	}
	return score, true, nil
}

func (z *SortedSet) rank(rank int64, err error) (int64, error) {
	if errors.Is(err, redis.Nil) {
		return 0, z.notMember()
	}
	return key.Result(rank, err)
}

func (z *SortedSet) zrem(ctx context.Context, v any) (int64, error) {
	data, err := z.Encode(v)
	if err != nil {
		return 0, err
	}
	return key.Result(z.Client().ZRem(ctx, z.Name(), data).Result())
}

func (z *SortedSet) notMember() error {
	return om.Errorf(om.RetCNotFound, "value is not a member of sorted set %q", z.Name())
}
