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

	"github.com/stretchr/testify/mock"

	"github.com/reenboog/touchid/internal/system/error/serviceerror"
)

// lockServiceInterfaceMock is a testify mock of LockServiceInterface.
type lockServiceInterfaceMock struct {
	mock.Mock
}

func newLockServiceInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *lockServiceInterfaceMock {
	m := &lockServiceInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *lockServiceInterfaceMock) Lock(ctx context.Context, id, token string) *serviceerror.ServiceError {
	ret := _m.Called(ctx, id, token)
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(*serviceerror.ServiceError)
}

func (_m *lockServiceInterfaceMock) Unlock(ctx context.Context, id string) (*Lock, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, id)
	var r0 *Lock
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Lock)
	}
	var r1 *serviceerror.ServiceError
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*serviceerror.ServiceError)
	}
	return r0, r1
}

func (_m *lockServiceInterfaceMock) Purge(ctx context.Context) *serviceerror.ServiceError {
	ret := _m.Called(ctx)
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(*serviceerror.ServiceError)
}

func (_m *lockServiceInterfaceMock) RemoveExpired(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *lockServiceInterfaceMock) CountActive(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *lockServiceInterfaceMock) CheckHealth(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func (_m *lockServiceInterfaceMock) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}
