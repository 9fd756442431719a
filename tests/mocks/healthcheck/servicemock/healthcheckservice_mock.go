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

// Package servicemock provides a testify mock of the health check service.
package servicemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/reenboog/touchid/internal/system/healthcheck/model"
	"github.com/reenboog/touchid/internal/system/healthcheck/service"
)

// HealthCheckServiceInterfaceMock is a mock implementation of service.HealthCheckServiceInterface.
type HealthCheckServiceInterfaceMock struct {
	mock.Mock
}

// NewHealthCheckServiceInterfaceMock creates a new mock and registers a cleanup that asserts its expectations.
func NewHealthCheckServiceInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *HealthCheckServiceInterfaceMock {
	m := &HealthCheckServiceInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// RegisterChecker provides a mock function with the given fields: serviceName, checker.
func (_m *HealthCheckServiceInterfaceMock) RegisterChecker(serviceName string,
	checker service.HealthCheckerInterface) {
	_m.Called(serviceName, checker)
}

// CheckReadiness provides a mock function with the given fields: ctx.
func (_m *HealthCheckServiceInterfaceMock) CheckReadiness(ctx context.Context) model.ServerStatus {
	ret := _m.Called(ctx)
	return ret.Get(0).(model.ServerStatus)
}
