package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "volunteer-hub:session:"

// RedisRegistry keeps session stores as JSON snapshots in Redis, so session
// data survives process restarts the way out-of-process session storage does.
// Stores must be written back with Save after mutating requests.
type RedisRegistry struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisRegistry builds a registry over an existing client. Snapshots
// expire after ttl of inactivity; ttl <= 0 disables expiry.
func NewRedisRegistry(client *redis.Client, ttl time.Duration) *RedisRegistry {
	return &RedisRegistry{client: client, ttl: ttl, now: time.Now}
}

// Get loads the session snapshot, seeding and persisting a fresh store when
// none exists yet.
func (r *RedisRegistry) Get(ctx context.Context, sessionID string) (*Store, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		st := New(Seed(r.now()))
		if err := r.Save(ctx, sessionID, st); err != nil {
			return nil, err
		}
		return st, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	var t Tables
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return New(t), nil
}

// Save serializes the store snapshot back to Redis.
func (r *RedisRegistry) Save(ctx context.Context, sessionID string, st *Store) error {
	raw, err := json.Marshal(st.Snapshot())
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sessionID, err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+sessionID, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("store session %s: %w", sessionID, err)
	}
	return nil
}
