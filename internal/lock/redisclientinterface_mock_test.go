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

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// redisClientInterfaceMock is a testify mock of redisClientInterface.
type redisClientInterfaceMock struct {
	mock.Mock
}

func newRedisClientInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *redisClientInterfaceMock {
	m := &redisClientInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *redisClientInterfaceMock) Set(ctx context.Context, key string, value interface{},
	expiration time.Duration) *redis.StatusCmd {
	ret := _m.Called(ctx, key, value, expiration)
	return ret.Get(0).(*redis.StatusCmd)
}

func (_m *redisClientInterfaceMock) GetDel(ctx context.Context, key string) *redis.StringCmd {
	ret := _m.Called(ctx, key)
	return ret.Get(0).(*redis.StringCmd)
}

func (_m *redisClientInterfaceMock) Scan(ctx context.Context, cursor uint64, match string,
	count int64) *redis.ScanCmd {
	ret := _m.Called(ctx, cursor, match, count)
	return ret.Get(0).(*redis.ScanCmd)
}

func (_m *redisClientInterfaceMock) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := []interface{}{ctx}
	for _, key := range keys {
		args = append(args, key)
	}
	ret := _m.Called(args...)
	return ret.Get(0).(*redis.IntCmd)
}

func (_m *redisClientInterfaceMock) Ping(ctx context.Context) *redis.StatusCmd {
	ret := _m.Called(ctx)
	return ret.Get(0).(*redis.StatusCmd)
}

func (_m *redisClientInterfaceMock) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}
