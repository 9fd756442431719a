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

import "github.com/reenboog/touchid/internal/system/database/model"

var (
	// queryCreateLockTable creates the lock table when it does not exist.
	queryCreateLockTable = model.DBQuery{
		ID: "LCQ-LOCK-01",
		Query: "CREATE TABLE IF NOT EXISTS TOUCHID_LOCK (" +
			"LOCK_ID VARCHAR(255) PRIMARY KEY, " +
			"TOKEN TEXT NOT NULL, " +
			"EXPIRES_AT BIGINT NOT NULL DEFAULT 0)",
	}
	// queryUpsertLock stores a lock, replacing the token and expiry of an existing one.
	queryUpsertLock = model.DBQuery{
		ID: "LCQ-LOCK-02",
		PostgresQuery: "INSERT INTO TOUCHID_LOCK (LOCK_ID, TOKEN, EXPIRES_AT) VALUES ($1, $2, $3) " +
			"ON CONFLICT (LOCK_ID) DO UPDATE SET TOKEN = EXCLUDED.TOKEN, EXPIRES_AT = EXCLUDED.EXPIRES_AT",
		SQLiteQuery: "INSERT INTO TOUCHID_LOCK (LOCK_ID, TOKEN, EXPIRES_AT) VALUES (?, ?, ?) " +
			"ON CONFLICT (LOCK_ID) DO UPDATE SET TOKEN = EXCLUDED.TOKEN, EXPIRES_AT = EXCLUDED.EXPIRES_AT",
	}
	// queryTakeLock removes a lock and returns it in a single statement.
	queryTakeLock = model.DBQuery{
		ID:            "LCQ-LOCK-03",
		PostgresQuery: "DELETE FROM TOUCHID_LOCK WHERE LOCK_ID = $1 RETURNING TOKEN, EXPIRES_AT",
		SQLiteQuery:   "DELETE FROM TOUCHID_LOCK WHERE LOCK_ID = ? RETURNING TOKEN, EXPIRES_AT",
	}
	// queryPurgeLocks removes every lock.
	queryPurgeLocks = model.DBQuery{
		ID:    "LCQ-LOCK-04",
		Query: "DELETE FROM TOUCHID_LOCK",
	}
	// queryCountActiveLocks counts the locks that have not expired.
	queryCountActiveLocks = model.DBQuery{
		ID:            "LCQ-LOCK-05",
		PostgresQuery: "SELECT COUNT(*) AS LOCK_COUNT FROM TOUCHID_LOCK WHERE EXPIRES_AT = 0 OR EXPIRES_AT > $1",
		SQLiteQuery:   "SELECT COUNT(*) AS LOCK_COUNT FROM TOUCHID_LOCK WHERE EXPIRES_AT = 0 OR EXPIRES_AT > ?",
	}
	// queryDeleteExpiredLocks removes the locks that have expired.
	queryDeleteExpiredLocks = model.DBQuery{
		ID:            "LCQ-LOCK-06",
		PostgresQuery: "DELETE FROM TOUCHID_LOCK WHERE EXPIRES_AT > 0 AND EXPIRES_AT <= $1",
		SQLiteQuery:   "DELETE FROM TOUCHID_LOCK WHERE EXPIRES_AT > 0 AND EXPIRES_AT <= ?",
	}
)
