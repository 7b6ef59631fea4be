package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const analyticsKey = "alumniconnect:analytics:snapshot"

// AnalyticsCache keeps the computed analytics snapshot in Redis with a
// TTL so repeated dashboard loads skip the full-table scans. It is an
// optimization only; callers must fall back to computing on a miss.
type AnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalyticsCache connects to Redis and verifies the connection.
func NewAnalyticsCache(addr, password string, db int, ttl time.Duration) (*AnalyticsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &AnalyticsCache{client: client, ttl: ttl}, nil
}

// Get loads the cached snapshot into dest. The bool reports a hit.
func (c *AnalyticsCache) Get(ctx context.Context, dest any) (bool, error) {
	data, err := c.client.Get(ctx, analyticsKey).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores the snapshot with the configured TTL.
func (c *AnalyticsCache) Set(ctx context.Context, snapshot any) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, analyticsKey, data, c.ttl).Err()
}

// Invalidate drops the cached snapshot.
func (c *AnalyticsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, analyticsKey).Err()
}

// Close releases the Redis connection.
func (c *AnalyticsCache) Close() error {
	return c.client.Close()
}
