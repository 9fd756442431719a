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

package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/reenboog/touchid/internal/system/healthcheck/model"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

type HealthCheckServiceTestSuite struct {
	suite.Suite
	service HealthCheckServiceInterface
}

func TestHealthCheckServiceSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckServiceTestSuite))
}

func (suite *HealthCheckServiceTestSuite) SetupTest() {
	instance = nil
	once = sync.Once{}
	suite.service = GetHealthCheckService()
}

func (suite *HealthCheckServiceTestSuite) TestSingleton() {
	assert.Same(suite.T(), suite.service, GetHealthCheckService())
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadiness() {
	up := checkerFunc(func(context.Context) error { return nil })
	down := checkerFunc(func(context.Context) error { return errors.New("unreachable") })

	testCases := []struct {
		name           string
		checkers       map[string]HealthCheckerInterface
		order          []string
		expectedStatus model.Status
	}{
		{
			name:           "NoCheckers",
			expectedStatus: model.StatusUp,
		},
		{
			name:           "AllUp",
			checkers:       map[string]HealthCheckerInterface{"LockStore": up, "Cache": up},
			order:          []string{"LockStore", "Cache"},
			expectedStatus: model.StatusUp,
		},
		{
			name:           "OneDown",
			checkers:       map[string]HealthCheckerInterface{"LockStore": down, "Cache": up},
			order:          []string{"LockStore", "Cache"},
			expectedStatus: model.StatusDown,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			svc := &HealthCheckService{}
			for _, name := range tc.order {
				svc.RegisterChecker(name, tc.checkers[name])
			}

			status := svc.CheckReadiness(context.Background())

			assert.Equal(suite.T(), tc.expectedStatus, status.Status)
			assert.Len(suite.T(), status.ServiceStatus, len(tc.order))
			for i, name := range tc.order {
				assert.Equal(suite.T(), name, status.ServiceStatus[i].ServiceName)
			}
		})
	}
}

func (suite *HealthCheckServiceTestSuite) TestRegisterCheckerReplacesByName() {
	suite.service.RegisterChecker("LockStore", checkerFunc(func(context.Context) error {
		return errors.New("down")
	}))
	suite.service.RegisterChecker("LockStore", checkerFunc(func(context.Context) error { return nil }))

	status := suite.service.CheckReadiness(context.Background())

	assert.Equal(suite.T(), model.StatusUp, status.Status)
	assert.Equal(suite.T(), []model.ServiceStatus{{ServiceName: "LockStore", Status: model.StatusUp}},
		status.ServiceStatus)
}

func (suite *HealthCheckServiceTestSuite) TestCheckerReceivesDeadline() {
	suite.service.RegisterChecker("LockStore", checkerFunc(func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			return errors.New("missing deadline")
		}
		return nil
	}))

	status := suite.service.CheckReadiness(context.Background())

	assert.Equal(suite.T(), model.StatusUp, status.Status)
}
