package key

import (
	"context"
	"errors"
	"github.com/ValentinKolb/ooKV/lib/codec"
	"github.com/ValentinKolb/ooKV/lib/om"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"testing"
	"time"
)

// newTestClient starts an in-process store and returns a client connected to it
func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return mr, client
}

func TestNew(t *testing.T) {
	_, client := newTestClient(t)

	k := New("a", client)
	if k.Name() != "a" {
		t.Errorf("Name() = %q, want %q", k.Name(), "a")
	}
	if k.Codec() != codec.Generic {
		t.Errorf("default codec = %v, want %v", k.Codec(), codec.Generic)
	}
	if k.Client() != client {
		t.Errorf("Client() does not return the bound client")
	}

	k = New("a", client, WithCodec(codec.JSON))
	if k.Codec() != codec.JSON {
		t.Errorf("codec = %v, want %v", k.Codec(), codec.JSON)
	}
}

func TestEqual(t *testing.T) {
	_, client := newTestClient(t)
	_, other := newTestClient(t)

	tests := []struct {
		name string
		a, b *Key
		want bool
	}{
		{"same name", New("a", client), New("a", client), true},
		{"same name, different codec", New("a", client, WithCodec(codec.Int)), New("a", client, WithCodec(codec.JSON)), true},
		{"same name, different client", New("a", client), New("a", other), true},
		{"different name", New("a", client), New("b", client), false},
		{"nil", New("a", client), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRepresentation(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	_ = mr.Set("str", "x")
	_, _ = mr.Push("list", "x")
	_, _ = mr.SetAdd("set", "x")
	_, _ = mr.ZAdd("zset", 1, "x")
	mr.HSet("hash", "f", "x")

	tests := []struct {
		name string
		want om.Representation
	}{
		{"missing", om.ReprNone},
		{"str", om.ReprString},
		{"list", om.ReprList},
		{"set", om.ReprSet},
		{"zset", om.ReprSortedSet},
		{"hash", om.ReprHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.name, client).Representation(ctx)
			if err != nil {
				t.Fatalf("Representation() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Representation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequireRepresentationOrNone(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	_, _ = mr.Push("list", "x")

	t.Run("absent key passes", func(t *testing.T) {
		if err := New("missing", client).RequireRepresentationOrNone(ctx, om.ReprSet); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("matching representation passes", func(t *testing.T) {
		if err := New("list", client).RequireRepresentationOrNone(ctx, om.ReprList); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("other representation fails", func(t *testing.T) {
		err := New("list", client).RequireRepresentationOrNone(ctx, om.ReprSet)
		if !errors.Is(err, om.ErrTypeMismatch) {
			t.Errorf("error = %v, want %v", err, om.ErrTypeMismatch)
		}
		if got, _ := mr.List("list"); len(got) != 1 || got[0] != "x" {
			t.Errorf("list was modified: %v", got)
		}
	})
}

func TestExistsAndDelete(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	_ = mr.Set("a", "1")
	k := New("a", client)

	if ok, err := k.Exists(ctx); err != nil || !ok {
		t.Fatalf("Exists() = %v, %v, want true", ok, err)
	}
	if err := k.Delete(ctx); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if mr.Exists("a") {
		t.Errorf("key still exists after Delete()")
	}
	if ok, err := k.Exists(ctx); err != nil || ok {
		t.Errorf("Exists() = %v, %v, want false", ok, err)
	}

	// deleting an absent key is not an error
	if err := k.Delete(ctx); err != nil {
		t.Errorf("Delete() on absent key error = %v", err)
	}
}

func TestTTL(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	_ = mr.Set("plain", "1")
	_ = mr.Set("volatile", "1")
	mr.SetTTL("volatile", time.Minute)

	tests := []struct {
		name   string
		wantOk bool
		want   time.Duration
	}{
		{"missing", false, 0},
		{"plain", false, 0},
		{"volatile", true, time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ttl, ok, err := New(tt.name, client).TTL(ctx)
			if err != nil {
				t.Fatalf("TTL() error = %v", err)
			}
			if ok != tt.wantOk || ttl != tt.want {
				t.Errorf("TTL() = %v, %v, want %v, %v", ttl, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestExpire(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	t.Run("absent key", func(t *testing.T) {
		err := New("missing", client).Expire(ctx, time.Minute)
		if !errors.Is(err, om.ErrNotFound) {
			t.Errorf("error = %v, want %v", err, om.ErrNotFound)
		}
		if mr.Exists("missing") {
			t.Errorf("Expire() created the key")
		}
	})

	t.Run("existing key", func(t *testing.T) {
		_ = mr.Set("a", "1")
		k := New("a", client)
		if err := k.Expire(ctx, time.Minute); err != nil {
			t.Fatalf("Expire() error = %v", err)
		}
		if got := mr.TTL("a"); got != time.Minute {
			t.Errorf("ttl = %v, want %v", got, time.Minute)
		}

		mr.FastForward(2 * time.Minute)
		if ok, _ := k.Exists(ctx); ok {
			t.Errorf("key still exists after expiry")
		}
	})

	t.Run("expire at", func(t *testing.T) {
		_ = mr.Set("b", "1")
		k := New("b", client)
		if err := k.ExpireAt(ctx, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("ExpireAt() error = %v", err)
		}
		if _, ok, _ := k.TTL(ctx); !ok {
			t.Errorf("ExpireAt() did not set a ttl")
		}
		if err := New("missing", client).ExpireAt(ctx, time.Now().Add(time.Hour)); !errors.Is(err, om.ErrNotFound) {
			t.Errorf("ExpireAt() on absent key error = %v, want %v", err, om.ErrNotFound)
		}
	})
}

func TestPersist(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	t.Run("clears ttl", func(t *testing.T) {
		_ = mr.Set("a", "1")
		mr.SetTTL("a", time.Minute)
		k := New("a", client)
		if err := k.Persist(ctx); err != nil {
			t.Fatalf("Persist() error = %v", err)
		}
		if _, ok, _ := k.TTL(ctx); ok {
			t.Errorf("ttl still set after Persist()")
		}
	})

	t.Run("no ttl is a no-op", func(t *testing.T) {
		_ = mr.Set("b", "1")
		if err := New("b", client).Persist(ctx); err != nil {
			t.Errorf("Persist() error = %v", err)
		}
	})

	t.Run("absent key", func(t *testing.T) {
		if err := New("missing", client).Persist(ctx); !errors.Is(err, om.ErrNotFound) {
			t.Errorf("error = %v, want %v", err, om.ErrNotFound)
		}
	})
}

func TestDecode(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	_ = mr.Set("n", "42")
	k := New("n", client, WithCodec(codec.Int))

	v, err := k.Decode(client.Get(ctx, "n").Result())
	if err != nil || v != int64(42) {
		t.Errorf("Decode() = %v, %v, want 42", v, err)
	}

	v, err = k.Decode(client.Get(ctx, "missing").Result())
	if err != nil || v != nil {
		t.Errorf("Decode() on absent key = %v, %v, want nil, nil", v, err)
	}

	vs, err := k.DecodeAll([]string{"1", "-2"}, nil)
	if err != nil || len(vs) != 2 || vs[0] != int64(1) || vs[1] != int64(-2) {
		t.Errorf("DecodeAll() = %v, %v", vs, err)
	}

	_, err = k.DecodeAll(client.LRange(ctx, "n", 0, -1).Result())
	if !errors.Is(err, om.ErrTypeMismatch) {
		t.Errorf("DecodeAll() error = %v, want %v", err, om.ErrTypeMismatch)
	}
}
