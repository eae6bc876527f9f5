package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/1Percent-hub/ScholarHub/pkg/errors"
	pkgredis "github.com/1Percent-hub/ScholarHub/pkg/redis"
)

const redisKeyPrefix = "session:"

// RedisStore keeps each session as a JSON value under "session:<id>" with a
// TTL, so idle sessions expire on their own. Every Put refreshes the TTL.
type RedisStore struct {
	client *pkgredis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing Redis client. A zero ttl means sessions
// never expire.
func NewRedisStore(client *pkgredis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get fetches and decodes the session for id.
func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+id)
	if err != nil {
		if pkgredis.IsNilError(err) {
			return nil, errors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("fetching session %s: %w", id, err)
	}
	var s Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("decoding session %s: %w", id, err)
	}
	return &s, nil
}

// Put encodes and stores the session, refreshing its TTL.
func (r *RedisStore) Put(ctx context.Context, id string, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", id, err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+id, data, r.ttl); err != nil {
		return fmt.Errorf("storing session %s: %w", id, err)
	}
	return nil
}

// Delete removes the session for id.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+id); err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}
	return nil
}
