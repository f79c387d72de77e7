package collection

import (
	"context"
	"github.com/ValentinKolb/ooKV/lib/key"
	"github.com/ValentinKolb/ooKV/lib/om"
	"github.com/redis/go-redis/v9"
)

// Set is a key holding an unordered set of distinct values. Membership is
// decided on the encoded form, so two values are equal if the bound codec
// encodes them identically.
type Set struct {
	*key.Key
}

// NewSet creates a new Set wrapper for the given key name.
func NewSet(name string, client redis.Cmdable, opts ...key.Option) *Set {
	return &Set{key.New(name, client, opts...)}
}

// --------------------------------------------------------------------------
// Members
// --------------------------------------------------------------------------

// Len returns the number of members.
func (s *Set) Len(ctx context.Context) (int64, error) {
	return key.Result(s.Client().SCard(ctx, s.Name()).Result())
}

// Members returns every member in no particular order.
func (s *Set) Members(ctx context.Context) ([]any, error) {
	return s.DecodeAll(s.Client().SMembers(ctx, s.Name()).Result())
}

// Contains reports whether v is a member.
func (s *Set) Contains(ctx context.Context, v any) (bool, error) {
	data, err := s.Encode(v)
	if err != nil {
		return false, err
	}
	return key.Result(s.Client().SIsMember(ctx, s.Name(), data).Result())
}

// Add adds the values and returns how many of them were not yet members.
func (s *Set) Add(ctx context.Context, vs ...any) (int64, error) {
	if len(vs) == 0 {
		return 0, nil
	}
	data, err := s.EncodeAll(vs)
	if err != nil {
		return 0, err
	}
	return key.Result(s.Client().SAdd(ctx, s.Name(), data...).Result())
}

// Remove removes v. It fails with om.ErrNotFound if v is not a member.
func (s *Set) Remove(ctx context.Context, v any) error {
	n, err := s.srem(ctx, v)
	if err != nil {
		return err
	}
	if n == 0 {
		return om.Errorf(om.RetCNotFound, "value is not a member of set %q", s.Name())
	}
	return nil
}

// Discard removes v if it is a member.
func (s *Set) Discard(ctx context.Context, v any) error {
	_, err := s.srem(ctx, v)
	return err
}

// Pop removes and returns a random member (om.ErrEmpty if there is none).
func (s *Set) Pop(ctx context.Context) (any, error) {
	w, err := key.Wire(s.Client().SPop(ctx, s.Name()).Result())
	if err != nil {
		return nil, err
	}
	if !w.Present {
		return nil, om.Errorf(om.RetCEmpty, "set %q is empty", s.Name())
	}
	return s.Codec().Decode(w)
}

// Random returns a random member without removing it (nil if the set is empty).
func (s *Set) Random(ctx context.Context) (any, error) {
	return s.Decode(s.Client().SRandMember(ctx, s.Name()).Result())
}

// Move moves v from this set to destination. It fails with om.ErrNotFound if
// v is not a member.
func (s *Set) Move(ctx context.Context, destination *Set, v any) error {
	data, err := s.Encode(v)
	if err != nil {
		return err
	}
	ok, err := key.Result(s.Client().SMove(ctx, s.Name(), destination.Name(), data).Result())
	if err != nil {
		return err
	}
	if !ok {
		return om.Errorf(om.RetCNotFound, "value is not a member of set %q", s.Name())
	}
	return nil
}

// --------------------------------------------------------------------------
// In place set algebra
// --------------------------------------------------------------------------

// UnionStore adds every member of other to this set.
func (s *Set) UnionStore(ctx context.Context, other *Set) error {
	if err := s.guardStore(ctx, other); err != nil {
		return err
	}
	return key.Translate(s.Client().SUnionStore(ctx, s.Name(), s.Name(), other.Name()).Err())
}

// InterStore removes every member that is not a member of other.
func (s *Set) InterStore(ctx context.Context, other *Set) error {
	if err := s.guardStore(ctx, other); err != nil {
		return err
	}
	return key.Translate(s.Client().SInterStore(ctx, s.Name(), s.Name(), other.Name()).Err())
}

// DiffStore removes every member that is also a member of other.
func (s *Set) DiffStore(ctx context.Context, other *Set) error {
	if err := s.guardStore(ctx, other); err != nil {
		return err
	}
	return key.Translate(s.Client().SDiffStore(ctx, s.Name(), s.Name(), other.Name()).Err())
}

// --------------------------------------------------------------------------
// Set algebra
// --------------------------------------------------------------------------

// Union returns the members of this set or other.
func (s *Set) Union(ctx context.Context, other *Set) ([]any, error) {
	return s.DecodeAll(s.Client().SUnion(ctx, s.Name(), other.Name()).Result())
}

// Intersection returns the members of both this set and other.
func (s *Set) Intersection(ctx context.Context, other *Set) ([]any, error) {
	return s.DecodeAll(s.Client().SInter(ctx, s.Name(), other.Name()).Result())
}

// Difference returns the members of this set that are not members of other.
func (s *Set) Difference(ctx context.Context, other *Set) ([]any, error) {
	return s.DecodeAll(s.Client().SDiff(ctx, s.Name(), other.Name()).Result())
}

// SymmetricDifference returns the members of exactly one of the two sets.
func (s *Set) SymmetricDifference(ctx context.Context, other *Set) ([]any, error) {
	left, err := key.Result(s.Client().SDiff(ctx, s.Name(), other.Name()).Result())
	if err != nil {
		return nil, err
	}
	right, err := key.Result(s.Client().SDiff(ctx, other.Name(), s.Name()).Result())
	if err != nil {
		return nil, err
	}
	return s.DecodeAll(append(left, right...), nil)
}

// IsDisjoint reports whether the two sets have no members in common.
func (s *Set) IsDisjoint(ctx context.Context, other *Set) (bool, error) {
	common, err := key.Result(s.Client().SInter(ctx, s.Name(), other.Name()).Result())
	return len(common) == 0 && err == nil, err
}

// IsSubset reports whether every member of this set is a member of other.
func (s *Set) IsSubset(ctx context.Context, other *Set) (bool, error) {
	rest, err := key.Result(s.Client().SDiff(ctx, s.Name(), other.Name()).Result())
	return len(rest) == 0 && err == nil, err
}

// IsSuperset reports whether every member of other is a member of this set.
func (s *Set) IsSuperset(ctx context.Context, other *Set) (bool, error) {
	return other.IsSubset(ctx, s)
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func (s *Set) srem(ctx context.Context, v any) (int64, error) {
	data, err := s.Encode(v)
	if err != nil {
		return 0, err
	}
	return key.Result(s.Client().SRem(ctx, s.Name(), data).Result())
}

// guardStore checks both operands of a *Store operation, the store commands
// replace the destination regardless of its type.
func (s *Set) guardStore(ctx context.Context, other *Set) error {
	if err := s.RequireRepresentationOrNone(ctx, om.ReprSet); err != nil {
		return err
	}
	return other.RequireRepresentationOrNone(ctx, om.ReprSet)
}
