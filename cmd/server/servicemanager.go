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

package main

import (
	"context"
	"net/http"

	"github.com/reenboog/touchid/internal/lock"
	"github.com/reenboog/touchid/internal/system/config"
	healthcheck "github.com/reenboog/touchid/internal/system/healthcheck/service"
	"github.com/reenboog/touchid/internal/system/services"
)

// lockStoreServiceName is the name the lock store is reported under in the readiness check.
const lockStoreServiceName = "LockStore"

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(ctx context.Context, mux *http.ServeMux, cfg *config.Config) (lock.LockServiceInterface, error) {
	lockService, err := lock.Initialize(ctx, mux)
	if err != nil {
		return nil, err
	}

	// Register the health service.
	healthcheck.GetHealthCheckService().RegisterChecker(lockStoreServiceName, lockService)
	services.NewHealthCheckService(mux)

	// Register the metrics service.
	if cfg.Metrics.Enabled {
		services.NewMetricsService(mux, cfg.Metrics.Path)
	}

	return lockService, nil
}
