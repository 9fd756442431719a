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
	"net/http"
	"time"

	"github.com/reenboog/touchid/internal/system/config"
	"github.com/reenboog/touchid/internal/system/log"
	"github.com/reenboog/touchid/internal/system/metrics"
	"github.com/reenboog/touchid/internal/system/middleware"
)

// Initialize creates the lock store selected in the configuration, the lock service on top of it,
// and registers the lock routes.
func Initialize(ctx context.Context, mux *http.ServeMux) (LockServiceInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LockInitializer"))
	cfg := config.GetServerRuntime().Config

	store, err := newLockStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	lockService := newLockService(store, time.Duration(cfg.Lock.TTL)*time.Second)
	if cfg.Lock.TTL > 0 {
		sweeper, err := newExpiredLockSweeper(cfg.Lock.CleanupSchedule, lockService.RemoveExpired)
		if err != nil {
			if closeErr := store.Close(); closeErr != nil {
				logger.Error("Failed to close lock store", log.Error(closeErr))
			}
			return nil, err
		}
		sweeper.start()
		lockService.sweeper = sweeper
	}

	metrics.GetMetrics().SetActiveLocksSource(lockService.CountActive)

	registerRoutes(mux, newLockHandler(lockService))
	logger.Info("Lock service initialized", log.String("store", cfg.Lock.Store), log.Int64("ttl", cfg.Lock.TTL))
	return lockService, nil
}

// registerRoutes registers the lock operations, each with its preflight route.
func registerRoutes(mux *http.ServeMux, lockHandler *lockHandler) {
	policy := middleware.CORSPolicy{
		Methods:          []string{http.MethodPost},
		Headers:          []string{"Content-Type", log.RequestIDHeaderName},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	}

	policy.Handle(mux, "POST /lock/{id}", lockHandler.HandleLockRequest)
	policy.Handle(mux, "POST /unlock/{id}", lockHandler.HandleUnlockRequest)
	policy.Handle(mux, "POST /purge", lockHandler.HandlePurgeRequest)
}
