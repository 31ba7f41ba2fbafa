package cache

import (
	"context"
	"testing"
	"time"

	"github.com/randevuapp/booking-api/internal/config"
	"github.com/randevuapp/booking-api/internal/timezone"
)

func TestNewClient_DisabledWithoutURL(t *testing.T) {
	if c := NewClient(&config.Config{}); c != nil {
		t.Fatal("expected nil client when REDIS_URL is unset")
	}
	if c := NewClient(&config.Config{RedisURL: "://bad"}); c != nil {
		t.Fatal("expected nil client for an unparsable REDIS_URL")
	}
}

func TestAvailability_NoopWithoutClient(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	a := NewAvailability(nil)

	if _, ok := a.Get(ctx, day); ok {
		t.Fatal("disabled cache reported a hit")
	}

	// Set/Invalidate must be safe no-ops
	a.Set(ctx, day, []string{"09:00"})
	a.Invalidate(ctx, day)

	if _, ok := a.Get(ctx, day); ok {
		t.Fatal("disabled cache stored a value")
	}

	// nil receiver is also tolerated: handlers never check
	var none *Availability
	if _, ok := none.Get(ctx, day); ok {
		t.Fatal("nil cache reported a hit")
	}
	none.Set(ctx, day, nil)
	none.Invalidate(ctx, day)
}

func TestAvailability_KeyNormalizesToBusinessTimezone(t *testing.T) {
	a := NewAvailability(nil)

	// A 01:00 Istanbul appointment arrives over the wire as UTC of the
	// previous calendar day; both must resolve to the Istanbul day.
	utc := time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC)
	local := time.Date(2025, 6, 2, 0, 0, 0, 0, timezone.Location())

	if got, want := a.key(utc), "slots:2025-06-02"; got != want {
		t.Fatalf("key(%v) = %q, want %q", utc, got, want)
	}
	if a.key(utc) != a.key(local) {
		t.Fatalf("UTC and Istanbul keys diverge: %q vs %q", a.key(utc), a.key(local))
	}
}
