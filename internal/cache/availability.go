package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/randevuapp/booking-api/internal/config"
	"github.com/randevuapp/booking-api/internal/timezone"
)

// NewClient returns nil when REDIS_URL is unset; the API then runs
// without caching and every availability call hits the database.
func NewClient(cfg *config.Config) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, cache disabled: %v", err)
		return nil
	}

	return redis.NewClient(opt)
}

// Availability caches the computed slot list of a single day. The TTL
// is short because availability is stale the instant it is returned
// anyway; writes for the day invalidate the entry early.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(rdb *redis.Client) *Availability {
	return &Availability{
		rdb: rdb,
		ttl: 60 * time.Second,
	}
}

// key normalizes the date to the business timezone so that a write
// carrying a UTC timestamp invalidates the same entry the Istanbul-day
// lookup reads.
func (a *Availability) key(date time.Time) string {
	return "slots:" + date.In(timezone.Location()).Format("2006-01-02")
}

func (a *Availability) Get(ctx context.Context, date time.Time) ([]string, bool) {
	if a == nil || a.rdb == nil {
		return nil, false
	}

	raw, err := a.rdb.Get(ctx, a.key(date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (a *Availability) Set(ctx context.Context, date time.Time, slots []string) {
	if a == nil || a.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := a.rdb.Set(ctx, a.key(date), raw, a.ttl).Err(); err != nil {
		log.Printf("availability cache set failed: %v", err)
	}
}

// Invalidate drops the cached slots of the day an appointment was
// written for.
func (a *Availability) Invalidate(ctx context.Context, date time.Time) {
	if a == nil || a.rdb == nil {
		return
	}

	if err := a.rdb.Del(ctx, a.key(date)).Err(); err != nil {
		log.Printf("availability cache invalidate failed: %v", err)
	}
}
