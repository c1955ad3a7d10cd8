package otp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps OTP entries in Redis so verification survives restarts
// and works across replicas. Expiry is delegated to Redis TTLs.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore builds a Store backed by the given Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func otpKey(phone string) string {
	return "otp:" + phone
}

func (s *RedisStore) Get(phone string) (Entry, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := s.client.Get(ctx, otpKey(phone)).Result()
	if err == redis.Nil {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to fetch otp entry: %w", err)
	}
	var e Entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return Entry{}, false, fmt.Errorf("failed to decode otp entry: %w", err)
	}
	return e, true, nil
}

func (s *RedisStore) Put(phone string, e Entry, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode otp entry: %w", err)
	}
	if err := s.client.Set(ctx, otpKey(phone), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store otp entry: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(phone string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.client.Del(ctx, otpKey(phone)).Err(); err != nil {
		return fmt.Errorf("failed to delete otp entry: %w", err)
	}
	return nil
}

// Sweep is a no-op: Redis expires entries via the TTL set on Put.
func (s *RedisStore) Sweep(time.Duration) error { return nil }
