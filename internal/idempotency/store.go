// Package idempotency replays the stored response of a request whose
// Idempotency-Key has been seen before.
package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idempotency:"

// pendingTTL bounds how long an in-flight reservation blocks the key when the
// process dies before completing it.
const pendingTTL = 30 * time.Second

type state string

const (
	statePending   state = "pending"
	stateCompleted state = "completed"
)

// Record is what is stored per key.
type Record struct {
	State       state  `json:"state"`
	Fingerprint string `json:"fingerprint"`
	Status      int    `json:"status,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Body        []byte `json:"body,omitempty"`
}

// RedisStore keeps idempotency records in Redis.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Reserve marks key as in flight. It returns the existing record and false
// when the key is already taken.
func (s *RedisStore) Reserve(ctx context.Context, key, fingerprint string) (*Record, bool, error) {
	pending, err := json.Marshal(Record{State: statePending, Fingerprint: fingerprint})
	if err != nil {
		return nil, false, fmt.Errorf("marshal idempotency record: %w", err)
	}
	ok, err := s.client.SetNX(ctx, keyPrefix+key, pending, pendingTTL).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redis setnx: %w", err)
	}
	if ok {
		return nil, true, nil
	}

	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		// Expired between SETNX and GET; treat as in flight so the caller retries.
		return &Record{State: statePending, Fingerprint: fingerprint}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, false, fmt.Errorf("unmarshal idempotency record: %w", err)
	}
	return &rec, false, nil
}

// Complete stores the final response for key.
func (s *RedisStore) Complete(ctx context.Context, key string, rec Record) error {
	rec.State = stateCompleted
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal idempotency record: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Release drops the reservation so the request can be retried.
func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}
