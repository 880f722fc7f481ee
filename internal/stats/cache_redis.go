// Copyright (c) 2026 Foodieblog. All rights reserved.

package stats

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// # Redis Cache

// RedisCache implements [Cache] with JSON payloads in Redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache constructs the concrete aggregate cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get loads a cached aggregate into target. A missing key is not an error.
func (cache *RedisCache) Get(context context.Context, key string, target any) (bool, error) {
	payload, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(payload, target); err != nil {
		// A corrupt entry reads as a miss; the TTL will retire it.
		return false, nil
	}

	return true, nil
}

// Set stores an aggregate under key for ttl.
func (cache *RedisCache) Set(context context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cache.client.Set(context, key, payload, ttl).Err()
}
