package key

import (
	"context"
	"errors"
	"github.com/ValentinKolb/ooKV/lib/codec"
	"github.com/ValentinKolb/ooKV/lib/om"
	"github.com/redis/go-redis/v9"
	"testing"
)

func TestTranslate(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	_, _ = mr.Push("list", "x")
	_ = mr.Set("text", "abc")
	mr.HSet("hash", "f", "abc")

	t.Run("wrong type", func(t *testing.T) {
		err := Translate(client.HGet(ctx, "list", "f").Err())
		if !errors.Is(err, om.ErrTypeMismatch) {
			t.Errorf("error = %v, want %v", err, om.ErrTypeMismatch)
		}
	})

	t.Run("increment non integer", func(t *testing.T) {
		err := Translate(client.IncrBy(ctx, "text", 1).Err())
		if !errors.Is(err, om.ErrTypeMismatch) {
			t.Errorf("error = %v, want %v", err, om.ErrTypeMismatch)
		}
	})

	t.Run("increment non float", func(t *testing.T) {
		err := Translate(client.IncrByFloat(ctx, "text", 1.5).Err())
		if !errors.Is(err, om.ErrTypeMismatch) {
			t.Errorf("error = %v, want %v", err, om.ErrTypeMismatch)
		}
	})

	t.Run("increment non integer hash field", func(t *testing.T) {
		err := Translate(client.HIncrBy(ctx, "hash", "f", 1).Err())
		if !errors.Is(err, om.ErrTypeMismatch) {
			t.Errorf("error = %v, want %v", err, om.ErrTypeMismatch)
		}
	})

	t.Run("nil passes through", func(t *testing.T) {
		err := Translate(client.Get(ctx, "missing").Err())
		if !errors.Is(err, redis.Nil) {
			t.Errorf("error = %v, want %v", err, redis.Nil)
		}
	})

	t.Run("other server errors pass through", func(t *testing.T) {
		orig := client.Do(ctx, "NOSUCHCOMMAND").Err()
		if orig == nil {
			t.Fatal("expected an error for an unknown command")
		}
		if err := Translate(orig); err != orig {
			t.Errorf("error = %v, want %v", err, orig)
		}
	})

	t.Run("foreign errors pass through", func(t *testing.T) {
		orig := errors.New("connection refused")
		if err := Translate(orig); err != orig {
			t.Errorf("error = %v, want %v", err, orig)
		}
	})

	t.Run("nil error", func(t *testing.T) {
		if err := Translate(nil); err != nil {
			t.Errorf("error = %v, want nil", err)
		}
	})
}

func TestResult(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	_, _ = mr.Push("list", "a", "b")

	n, err := Result(client.LLen(ctx, "list").Result())
	if err != nil || n != 2 {
		t.Errorf("Result() = %v, %v, want 2, nil", n, err)
	}

	_, err = Result(client.SCard(ctx, "list").Result())
	if !errors.Is(err, om.ErrTypeMismatch) {
		t.Errorf("error = %v, want %v", err, om.ErrTypeMismatch)
	}
}

func TestWire(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	_ = mr.Set("a", "")

	w, err := Wire(client.Get(ctx, "a").Result())
	if err != nil || w != codec.Reply("") {
		t.Errorf("Wire() = %+v, %v, want empty reply", w, err)
	}

	w, err = Wire(client.Get(ctx, "missing").Result())
	if err != nil || w != codec.Absent {
		t.Errorf("Wire() = %+v, %v, want absent", w, err)
	}
}
