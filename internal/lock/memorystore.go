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
	"sync"
	"time"
)

// memoryLockStore keeps the lock table in process memory.
type memoryLockStore struct {
	locks map[string]lockRecord
	mu    sync.RWMutex
}

// newMemoryLockStore creates an empty in-memory lock store.
func newMemoryLockStore() *memoryLockStore {
	return &memoryLockStore{
		locks: make(map[string]lockRecord),
	}
}

// Put stores the record under the id, replacing any existing record.
func (s *memoryLockStore) Put(_ context.Context, id string, record lockRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locks[id] = record
	return nil
}

// Take atomically removes and returns the record held under the id.
func (s *memoryLockStore) Take(_ context.Context, id string) (lockRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.locks[id]
	if !exists {
		return lockRecord{}, errLockNotFound
	}
	delete(s.locks, id)
	return record, nil
}

// Purge removes every record.
func (s *memoryLockStore) Purge(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := int64(len(s.locks))
	s.locks = make(map[string]lockRecord)
	return removed, nil
}

// Count returns the number of records that have not expired.
func (s *memoryLockStore) Count(_ context.Context, now time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, record := range s.locks {
		if !record.isExpired(now) {
			count++
		}
	}
	return count, nil
}

// DeleteExpired removes the records that have expired.
func (s *memoryLockStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, record := range s.locks {
		if record.isExpired(now) {
			delete(s.locks, id)
			removed++
		}
	}
	return removed, nil
}

// Ping always succeeds for the in-memory store.
func (s *memoryLockStore) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store.
func (s *memoryLockStore) Close() error {
	return nil
}
