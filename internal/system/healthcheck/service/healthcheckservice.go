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

// Package service provides health check-related business logic and operations.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/reenboog/touchid/internal/system/healthcheck/model"
	"github.com/reenboog/touchid/internal/system/log"
)

// checkTimeout bounds a single dependency check.
const checkTimeout = 5 * time.Second

var (
	instance *HealthCheckService
	once     sync.Once
)

// HealthCheckerInterface is implemented by dependencies that take part in the readiness check.
type HealthCheckerInterface interface {
	CheckHealth(ctx context.Context) error
}

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	RegisterChecker(serviceName string, checker HealthCheckerInterface)
	CheckReadiness(ctx context.Context) model.ServerStatus
}

type namedChecker struct {
	serviceName string
	checker     HealthCheckerInterface
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct {
	mu       sync.RWMutex
	checkers []namedChecker
}

// GetHealthCheckService returns a singleton instance of HealthCheckService.
func GetHealthCheckService() HealthCheckServiceInterface {
	once.Do(func() {
		instance = &HealthCheckService{}
	})
	return instance
}

// RegisterChecker adds a dependency to the readiness check. Registering a name again replaces its checker.
func (hcs *HealthCheckService) RegisterChecker(serviceName string, checker HealthCheckerInterface) {
	hcs.mu.Lock()
	defer hcs.mu.Unlock()

	for i := range hcs.checkers {
		if hcs.checkers[i].serviceName == serviceName {
			hcs.checkers[i].checker = checker
			return
		}
	}
	hcs.checkers = append(hcs.checkers, namedChecker{serviceName: serviceName, checker: checker})
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *HealthCheckService) CheckReadiness(ctx context.Context) model.ServerStatus {
	hcs.mu.RLock()
	checkers := make([]namedChecker, len(hcs.checkers))
	copy(checkers, hcs.checkers)
	hcs.mu.RUnlock()

	status := model.StatusUp
	serviceStatus := make([]model.ServiceStatus, 0, len(checkers))
	for _, c := range checkers {
		s := hcs.checkServiceStatus(ctx, c)
		if s == model.StatusDown {
			status = model.StatusDown
		}
		serviceStatus = append(serviceStatus, model.ServiceStatus{
			ServiceName: c.serviceName,
			Status:      s,
		})
	}

	return model.ServerStatus{
		Status:        status,
		ServiceStatus: serviceStatus,
	}
}

// checkServiceStatus runs a single checker under the check timeout.
func (hcs *HealthCheckService) checkServiceStatus(ctx context.Context, c namedChecker) model.Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	if err := c.checker.CheckHealth(checkCtx); err != nil {
		logger.Error("Health check failed", log.String("service", c.serviceName), log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}
