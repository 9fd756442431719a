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
	"strconv"
	"time"

	"github.com/reenboog/touchid/internal/system/database/client"
	"github.com/reenboog/touchid/internal/system/database/provider"
)

// dbLockStore keeps the lock table in the runtime SQL database.
type dbLockStore struct {
	dbProvider provider.DBProviderInterface
}

// newDBLockStore creates a lock store on the runtime database and makes sure the lock table exists.
func newDBLockStore(ctx context.Context, dbProvider provider.DBProviderInterface) (*dbLockStore, error) {
	store := &dbLockStore{dbProvider: dbProvider}

	dbClient, err := store.getDBClient()
	if err != nil {
		return nil, err
	}
	if _, err := dbClient.Execute(ctx, queryCreateLockTable); err != nil {
		return nil, fmt.Errorf("failed to create lock table: %w", err)
	}

	return store, nil
}

// Put stores the record under the id, replacing any existing record.
func (s *dbLockStore) Put(ctx context.Context, id string, record lockRecord) error {
	dbClient, err := s.getDBClient()
	if err != nil {
		return err
	}

	if _, err := dbClient.Execute(ctx, queryUpsertLock, id, record.Token, record.expiresAtMillis()); err != nil {
		return fmt.Errorf("failed to store lock: %w", err)
	}
	return nil
}

// Take atomically removes and returns the record held under the id.
func (s *dbLockStore) Take(ctx context.Context, id string) (lockRecord, error) {
	dbClient, err := s.getDBClient()
	if err != nil {
		return lockRecord{}, err
	}

	results, err := dbClient.Query(ctx, queryTakeLock, id)
	if err != nil {
		return lockRecord{}, fmt.Errorf("failed to take lock: %w", err)
	}
	if len(results) == 0 {
		return lockRecord{}, errLockNotFound
	}

	return buildLockRecordFromResultRow(results[0])
}

// Purge removes every record.
func (s *dbLockStore) Purge(ctx context.Context) (int64, error) {
	dbClient, err := s.getDBClient()
	if err != nil {
		return 0, err
	}

	removed, err := dbClient.Execute(ctx, queryPurgeLocks)
	if err != nil {
		return 0, fmt.Errorf("failed to purge locks: %w", err)
	}
	return removed, nil
}

// Count returns the number of records that have not expired.
func (s *dbLockStore) Count(ctx context.Context, now time.Time) (int64, error) {
	dbClient, err := s.getDBClient()
	if err != nil {
		return 0, err
	}

	results, err := dbClient.Query(ctx, queryCountActiveLocks, now.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to count locks: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return parseInt64(results[0]["lock_count"])
}

// DeleteExpired removes the records that have expired.
func (s *dbLockStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	dbClient, err := s.getDBClient()
	if err != nil {
		return 0, err
	}

	removed, err := dbClient.Execute(ctx, queryDeleteExpiredLocks, now.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired locks: %w", err)
	}
	return removed, nil
}

// Ping verifies the runtime database is reachable.
func (s *dbLockStore) Ping(ctx context.Context) error {
	dbClient, err := s.getDBClient()
	if err != nil {
		return err
	}
	return dbClient.Ping(ctx)
}

// Close closes the runtime database connections.
func (s *dbLockStore) Close() error {
	return s.dbProvider.Close()
}

// getDBClient returns the runtime database client.
func (s *dbLockStore) getDBClient() (client.DBClientInterface, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.RuntimeDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	return dbClient, nil
}

// buildLockRecordFromResultRow builds a lock record from a TOKEN, EXPIRES_AT result row.
func buildLockRecordFromResultRow(row map[string]interface{}) (lockRecord, error) {
	var token string
	switch value := row["token"].(type) {
	case string:
		token = value
	case []byte:
		token = string(value)
	default:
		return lockRecord{}, fmt.Errorf("failed to parse token as string: %T", row["token"])
	}

	expiresAt, err := parseInt64(row["expires_at"])
	if err != nil {
		return lockRecord{}, err
	}

	return lockRecord{Token: token, ExpiresAt: expiryFromMillis(expiresAt)}, nil
}

// parseInt64 converts an integer column value returned by the drivers to int64.
func parseInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("failed to parse integer column value: %T", value)
	}
}
