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
	"time"

	"github.com/stretchr/testify/mock"
)

// lockStoreInterfaceMock is a testify mock of lockStoreInterface.
type lockStoreInterfaceMock struct {
	mock.Mock
}

func newLockStoreInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *lockStoreInterfaceMock {
	m := &lockStoreInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *lockStoreInterfaceMock) Put(ctx context.Context, id string, record lockRecord) error {
	ret := _m.Called(ctx, id, record)
	return ret.Error(0)
}

func (_m *lockStoreInterfaceMock) Take(ctx context.Context, id string) (lockRecord, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(lockRecord), ret.Error(1)
}

func (_m *lockStoreInterfaceMock) Purge(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *lockStoreInterfaceMock) Count(ctx context.Context, now time.Time) (int64, error) {
	ret := _m.Called(ctx, now)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *lockStoreInterfaceMock) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	ret := _m.Called(ctx, now)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *lockStoreInterfaceMock) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func (_m *lockStoreInterfaceMock) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}
