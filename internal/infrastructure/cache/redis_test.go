package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRedis_UnavailableIsNoop(t *testing.T) {
	r := &Redis{ttl: time.Minute}
	ctx := context.Background()

	var out []string
	hit, err := r.GetJSON(ctx, "jobs:active", &out)
	if err != nil || hit {
		t.Fatalf("expected miss without error, got hit=%v err=%v", hit, err)
	}
	if err := r.SetJSON(ctx, "jobs:active", []string{"a"}, 0); err != nil {
		t.Fatalf("SetJSON on unavailable cache: %v", err)
	}
	if err := r.Delete(ctx, "jobs:active"); err != nil {
		t.Fatalf("Delete on unavailable cache: %v", err)
	}
	if err := r.Ping(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close on unavailable cache: %v", err)
	}
}

func TestRedis_NilReceiver(t *testing.T) {
	var r *Redis
	if hit, err := r.GetJSON(context.Background(), "k", new(int)); hit || err != nil {
		t.Fatalf("nil cache must miss quietly")
	}
}
