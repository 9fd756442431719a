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

package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/reenboog/touchid/internal/system/log"
)

// RequestIDHandler makes sure every request carries a correlation ID in the X-Request-ID header.
// A caller supplied ID is kept; otherwise a random UUID is assigned. The ID is echoed in the response.
func RequestIDHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(log.RequestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set(log.RequestIDHeaderName, requestID)
		}
		w.Header().Set(log.RequestIDHeaderName, requestID)
		next.ServeHTTP(w, r)
	})
}
