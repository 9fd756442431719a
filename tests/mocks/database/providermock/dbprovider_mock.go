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

// Package providermock provides a testify mock of the database provider.
package providermock

import (
	"github.com/stretchr/testify/mock"

	"github.com/reenboog/touchid/internal/system/database/client"
)

// DBProviderInterfaceMock is a mock implementation of provider.DBProviderInterface.
type DBProviderInterfaceMock struct {
	mock.Mock
}

// NewDBProviderInterfaceMock creates a new mock and registers a cleanup that asserts its expectations.
func NewDBProviderInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *DBProviderInterfaceMock {
	m := &DBProviderInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// GetDBClient provides a mock function with the given fields: dbName.
func (_m *DBProviderInterfaceMock) GetDBClient(dbName string) (client.DBClientInterface, error) {
	ret := _m.Called(dbName)

	var r0 client.DBClientInterface
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(client.DBClientInterface)
	}

	return r0, ret.Error(1)
}

// Close provides a mock function with no fields.
func (_m *DBProviderInterfaceMock) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}
