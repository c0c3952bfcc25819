// Package cache wraps redis for static reference data. Balances and limits
// are never cached: every core call re-reads the store, which stays the sole
// source of truth.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"paydesk/internal/models"

	"github.com/redis/go-redis/v9"
)

const bankDirectoryKey = "banks:all"

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

// Get unmarshals the cached value into dest and reports whether the key was
// present.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// CacheBanks stores the bank directory. Banks are static reference data, the
// one thing safe to serve from cache here.
func (s *CacheService) CacheBanks(ctx context.Context, banks []models.Bank) error {
	return s.Set(ctx, bankDirectoryKey, banks)
}

func (s *CacheService) GetBanks(ctx context.Context) ([]models.Bank, bool, error) {
	var banks []models.Bank
	found, err := s.Get(ctx, bankDirectoryKey, &banks)
	if err != nil || !found {
		return nil, false, err
	}
	return banks, true, nil
}

func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// FlushAll flushes all keys from the cache
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
