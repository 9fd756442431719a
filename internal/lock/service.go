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
	"errors"
	"time"
	"unicode/utf8"

	"github.com/reenboog/touchid/internal/system/error/serviceerror"
	"github.com/reenboog/touchid/internal/system/log"
	"github.com/reenboog/touchid/internal/system/metrics"
)

const serviceLoggerComponentName = "LockService"

// Operation names recorded in the lock operation metrics.
const (
	operationLock   = "lock"
	operationUnlock = "unlock"
	operationPurge  = "purge"
	operationSweep  = "sweep"
)

// LockServiceInterface defines the operations of the lock table.
type LockServiceInterface interface {
	Lock(ctx context.Context, id, token string) *serviceerror.ServiceError
	Unlock(ctx context.Context, id string) (*Lock, *serviceerror.ServiceError)
	Purge(ctx context.Context) *serviceerror.ServiceError
	RemoveExpired(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CheckHealth(ctx context.Context) error
	Close() error
}

// lockService is the default implementation of LockServiceInterface.
type lockService struct {
	store   lockStoreInterface
	ttl     time.Duration
	now     func() time.Time
	sweeper *expiredLockSweeper
}

// newLockService creates a lock service on the given store. A zero ttl keeps locks until redeemed.
func newLockService(store lockStoreInterface, ttl time.Duration) *lockService {
	return &lockService{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Lock stores the token under the id, replacing any token already held there.
func (ls *lockService) Lock(ctx context.Context, id, token string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if svcErr := validateLockID(id); svcErr != nil {
		return svcErr
	}

	record := lockRecord{Token: token}
	if ls.ttl > 0 {
		record.ExpiresAt = ls.now().Add(ls.ttl)
	}

	if err := ls.store.Put(ctx, id, record); err != nil {
		logger.Error("Failed to store lock", log.String(log.LoggerKeyLockID, log.MaskString(id)), log.Error(err))
		metrics.GetMetrics().RecordLockOperation(operationLock, metrics.ResultError)
		return &ErrorInternalServerError
	}

	metrics.GetMetrics().RecordLockOperation(operationLock, metrics.ResultSuccess)
	if logger.IsDebugEnabled() {
		logger.Debug("Lock stored", log.String(log.LoggerKeyLockID, log.MaskString(id)),
			log.Bool("expiring", !record.ExpiresAt.IsZero()))
	}
	return nil
}

// Unlock removes the lock held under the id and returns its token.
// A lock can be unlocked only once; later attempts get ErrorLockNotFound.
func (ls *lockService) Unlock(ctx context.Context, id string) (*Lock, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if svcErr := validateLockID(id); svcErr != nil {
		return nil, svcErr
	}

	record, err := ls.store.Take(ctx, id)
	if err != nil {
		if errors.Is(err, errLockNotFound) {
			metrics.GetMetrics().RecordLockOperation(operationUnlock, metrics.ResultNotFound)
			logger.Debug("No lock found", log.String(log.LoggerKeyLockID, log.MaskString(id)))
			return nil, &ErrorLockNotFound
		}
		logger.Error("Failed to take lock", log.String(log.LoggerKeyLockID, log.MaskString(id)), log.Error(err))
		metrics.GetMetrics().RecordLockOperation(operationUnlock, metrics.ResultError)
		return nil, &ErrorInternalServerError
	}

	if record.isExpired(ls.now()) {
		metrics.GetMetrics().RecordLockOperation(operationUnlock, metrics.ResultNotFound)
		logger.Debug("Lock expired", log.String(log.LoggerKeyLockID, log.MaskString(id)))
		return nil, &ErrorLockNotFound
	}

	metrics.GetMetrics().RecordLockOperation(operationUnlock, metrics.ResultSuccess)
	logger.Debug("Lock released", log.String(log.LoggerKeyLockID, log.MaskString(id)))
	return &Lock{Token: record.Token}, nil
}

// Purge removes every lock.
func (ls *lockService) Purge(ctx context.Context) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	removed, err := ls.store.Purge(ctx)
	if err != nil {
		logger.Error("Failed to purge locks", log.Error(err))
		metrics.GetMetrics().RecordLockOperation(operationPurge, metrics.ResultError)
		return &ErrorInternalServerError
	}

	metrics.GetMetrics().RecordLockOperation(operationPurge, metrics.ResultSuccess)
	logger.Info("Purged locks", log.Int64("count", removed))
	return nil
}

// RemoveExpired deletes the locks whose lifetime has passed.
func (ls *lockService) RemoveExpired(ctx context.Context) (int64, error) {
	removed, err := ls.store.DeleteExpired(ctx, ls.now())
	if err != nil {
		metrics.GetMetrics().RecordLockOperation(operationSweep, metrics.ResultError)
		return 0, err
	}
	metrics.GetMetrics().RecordLockOperation(operationSweep, metrics.ResultSuccess)
	return removed, nil
}

// CountActive returns the number of locks currently held.
func (ls *lockService) CountActive(ctx context.Context) (int64, error) {
	return ls.store.Count(ctx, ls.now())
}

// CheckHealth verifies the lock store is reachable.
func (ls *lockService) CheckHealth(ctx context.Context) error {
	return ls.store.Ping(ctx)
}

// Close stops the expired lock sweeper and releases the store.
func (ls *lockService) Close() error {
	if ls.sweeper != nil {
		ls.sweeper.stop()
	}
	return ls.store.Close()
}

// validateLockID checks the lock id is usable by every store.
// The length limit counts characters, as the LOCK_ID column does.
func validateLockID(id string) *serviceerror.ServiceError {
	if id == "" || !utf8.ValidString(id) || utf8.RuneCountInString(id) > maxLockIDLength {
		return &ErrorInvalidLockID
	}
	return nil
}
