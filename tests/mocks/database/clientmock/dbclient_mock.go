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

// Package clientmock provides a testify mock of the database client.
package clientmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/reenboog/touchid/internal/system/database/model"
)

// DBClientInterfaceMock is a mock implementation of client.DBClientInterface.
type DBClientInterfaceMock struct {
	mock.Mock
}

// NewDBClientInterfaceMock creates a new mock and registers a cleanup that asserts its expectations.
func NewDBClientInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *DBClientInterfaceMock {
	m := &DBClientInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Query provides a mock function with the given fields: ctx, query, args.
func (_m *DBClientInterfaceMock) Query(ctx context.Context, query model.DBQuery,
	args ...interface{}) ([]map[string]interface{}, error) {
	callArgs := append([]interface{}{ctx, query}, args...)
	ret := _m.Called(callArgs...)

	var r0 []map[string]interface{}
	if rf, ok := ret.Get(0).(func(context.Context, model.DBQuery, ...interface{}) []map[string]interface{}); ok {
		r0 = rf(ctx, query, args...)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]map[string]interface{})
	}

	return r0, ret.Error(1)
}

// Execute provides a mock function with the given fields: ctx, query, args.
func (_m *DBClientInterfaceMock) Execute(ctx context.Context, query model.DBQuery,
	args ...interface{}) (int64, error) {
	callArgs := append([]interface{}{ctx, query}, args...)
	ret := _m.Called(callArgs...)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, model.DBQuery, ...interface{}) int64); ok {
		r0 = rf(ctx, query, args...)
	} else {
		r0 = ret.Get(0).(int64)
	}

	return r0, ret.Error(1)
}

// Ping provides a mock function with the given fields: ctx.
func (_m *DBClientInterfaceMock) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// Close provides a mock function with no fields.
func (_m *DBClientInterfaceMock) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}
