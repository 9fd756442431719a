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

// Package lock provides the lock table: tokens parked under an id and redeemed exactly once.
package lock

import "time"

// maxLockIDLength is the longest lock id accepted. It matches the width of the LOCK_ID column.
const maxLockIDLength = 255

// Lock is the token held under a lock id.
type Lock struct {
	Token string `json:"token"`
}

// LockRequest is the request body of a lock operation.
type LockRequest struct {
	Token *string `json:"token"`
}

// lockRecord is a lock as kept by the stores, with its optional expiry.
type lockRecord struct {
	Token string
	// ExpiresAt is zero for locks that never expire.
	ExpiresAt time.Time
}

// isExpired reports whether the record has expired at the given instant.
func (r lockRecord) isExpired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}

// expiresAtMillis returns the expiry as unix milliseconds, zero meaning no expiry.
func (r lockRecord) expiresAtMillis() int64 {
	if r.ExpiresAt.IsZero() {
		return 0
	}
	return r.ExpiresAt.UnixMilli()
}

// expiryFromMillis converts unix milliseconds back to an expiry instant.
func expiryFromMillis(millis int64) time.Time {
	if millis <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(millis)
}
