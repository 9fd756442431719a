/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package lock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reenboog/touchid/internal/system/config"
	"github.com/reenboog/touchid/internal/system/log"
)

// scanBatchSize is the COUNT hint passed to SCAN when walking the lock keys.
const scanBatchSize = 500

// redisClientInterface is the subset of the redis client used by the lock store.
type redisClientInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// redisLockValue is the JSON value stored under a lock key.
type redisLockValue struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
}

// redisLockStore keeps the lock table in redis, one key per lock.
// Expiry is delegated to redis key expiration.
type redisLockStore struct {
	client    redisClientInterface
	keyPrefix string
}

// newRedisLockStore connects to redis and returns a lock store on top of it.
func newRedisLockStore(ctx context.Context, redisConfig config.RedisConfig) (*redisLockStore, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RedisLockStore"))

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:       []string{redisConfig.Address},
		Username:    redisConfig.Username,
		Password:    redisConfig.Password,
		DB:          redisConfig.DB,
		DialTimeout: time.Duration(redisConfig.DialTimeout) * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		if closeErr := client.Close(); closeErr != nil {
			logger.Error("Failed to close redis client", log.Error(closeErr))
		}
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", redisConfig.Address, err)
	}

	logger.Info("Connected to redis", log.String("address", redisConfig.Address), log.Int("db", redisConfig.DB))
	return newRedisLockStoreWithClient(client, redisConfig.KeyPrefix), nil
}

// newRedisLockStoreWithClient creates a lock store on an existing redis client.
func newRedisLockStoreWithClient(client redisClientInterface, keyPrefix string) *redisLockStore {
	return &redisLockStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Put stores the record under the id, replacing any existing record and its expiry.
func (s *redisLockStore) Put(ctx context.Context, id string, record lockRecord) error {
	value, err := json.Marshal(redisLockValue{Token: record.Token, ExpiresAt: record.expiresAtMillis()})
	if err != nil {
		return fmt.Errorf("failed to encode lock: %w", err)
	}

	var expiration time.Duration
	if !record.ExpiresAt.IsZero() {
		expiration = time.Until(record.ExpiresAt)
		if expiration <= 0 {
			// Already expired: drop any previous value so the id reads as absent.
			return s.client.Del(ctx, s.key(id)).Err()
		}
	}

	if err := s.client.Set(ctx, s.key(id), value, expiration).Err(); err != nil {
		return fmt.Errorf("failed to store lock: %w", err)
	}
	return nil
}

// Take atomically removes and returns the record held under the id using GETDEL.
func (s *redisLockStore) Take(ctx context.Context, id string) (lockRecord, error) {
	value, err := s.client.GetDel(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return lockRecord{}, errLockNotFound
		}
		return lockRecord{}, fmt.Errorf("failed to take lock: %w", err)
	}

	var stored redisLockValue
	if err := json.Unmarshal(value, &stored); err != nil {
		return lockRecord{}, fmt.Errorf("failed to decode lock: %w", err)
	}
	return lockRecord{Token: stored.Token, ExpiresAt: expiryFromMillis(stored.ExpiresAt)}, nil
}

// Purge removes every lock key.
func (s *redisLockStore) Purge(ctx context.Context) (int64, error) {
	var removed int64
	err := s.scanKeys(ctx, func(keys []string) error {
		deleted, err := s.client.Del(ctx, keys...).Result()
		if err != nil {
			return err
		}
		removed += deleted
		return nil
	})
	if err != nil {
		return removed, fmt.Errorf("failed to purge locks: %w", err)
	}
	return removed, nil
}

// Count returns the number of lock keys. Expired keys are already gone.
func (s *redisLockStore) Count(ctx context.Context, _ time.Time) (int64, error) {
	var count int64
	err := s.scanKeys(ctx, func(keys []string) error {
		count += int64(len(keys))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count locks: %w", err)
	}
	return count, nil
}

// DeleteExpired is a no-op; redis expires the lock keys itself.
func (s *redisLockStore) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

// Ping verifies redis is reachable.
func (s *redisLockStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (s *redisLockStore) Close() error {
	return s.client.Close()
}

// key returns the redis key of the lock id.
func (s *redisLockStore) key(id string) string {
	return s.keyPrefix + id
}

// scanKeys walks every lock key in batches and calls fn for each non-empty batch.
func (s *redisLockStore) scanKeys(ctx context.Context, fn func(keys []string) error) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.keyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := fn(keys); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
