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
	"fmt"
	"time"

	"github.com/reenboog/touchid/internal/system/config"
	"github.com/reenboog/touchid/internal/system/database/provider"
)

// lockStoreInterface defines the storage operations of the lock table.
type lockStoreInterface interface {
	// Put stores the record under the id, replacing any existing record.
	Put(ctx context.Context, id string, record lockRecord) error
	// Take atomically removes and returns the record held under the id.
	// It returns errLockNotFound when there is none.
	Take(ctx context.Context, id string) (lockRecord, error)
	// Purge removes every record and returns how many were removed.
	Purge(ctx context.Context) (int64, error)
	// Count returns the number of records that have not expired at the given instant.
	Count(ctx context.Context, now time.Time) (int64, error)
	// DeleteExpired removes the records that have expired at the given instant.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
	// Close releases the resources held by the store.
	Close() error
}

// newLockStore creates the lock store selected in the configuration.
func newLockStore(ctx context.Context, cfg config.Config) (lockStoreInterface, error) {
	switch cfg.Lock.Store {
	case "", config.LockStoreInMemory:
		return newMemoryLockStore(), nil
	case config.LockStoreSQLite, config.LockStorePostgres:
		return newDBLockStore(ctx, provider.GetDBProvider())
	case config.LockStoreRedis:
		return newRedisLockStore(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("unsupported lock store: %s", cfg.Lock.Store)
	}
}
