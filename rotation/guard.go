package rotation

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TickGuard lets at most one tick run per nominal fire time.
type TickGuard interface {
	Acquire(ctx context.Context, fireTime time.Time) (bool, error)
}

// LocalGuard deduplicates ticks within one process.
type LocalGuard struct {
	mu   sync.Mutex
	last time.Time
}

func (g *LocalGuard) Acquire(_ context.Context, fireTime time.Time) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !fireTime.After(g.last) {
		return false, nil
	}
	g.last = fireTime
	return true, nil
}

// RedisGuard deduplicates ticks across replicas sharing one Redis.
type RedisGuard struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisGuard(client redis.Cmdable, prefix string) *RedisGuard {
	return &RedisGuard{
		client: client,
		prefix: prefix,
		ttl:    48 * time.Hour,
	}
}

func (g *RedisGuard) Acquire(ctx context.Context, fireTime time.Time) (bool, error) {
	return g.client.SetNX(ctx, g.key(fireTime), time.Now().Unix(), g.ttl).Result()
}

func (g *RedisGuard) key(fireTime time.Time) string {
	return g.prefix + "rotation:tick:" + fireTime.UTC().Format("2006-01-02T15:04")
}
