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

// Package utils provides utility functions for server wide operations.
package utils

import (
	"net/url"
	"strings"
)

// MatchOrigin returns the configured origin that the request origin is equal to, or an empty string.
// Origins are compared on scheme, host and port only; default ports are implied and case is ignored.
func MatchOrigin(allowedOrigins []string, requestOrigin string) string {
	requested, ok := canonicalOrigin(requestOrigin)
	if !ok {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if candidate, ok := canonicalOrigin(allowed); ok && candidate == requested {
			return allowed
		}
	}
	return ""
}

// canonicalOrigin reduces an origin to lower-case "scheme://host:port".
func canonicalOrigin(origin string) (string, bool) {
	u, err := url.Parse(strings.TrimSuffix(strings.TrimSpace(origin), "/"))
	if err != nil || u.Host == "" || u.User != nil || (u.Path != "" && u.Path != "/") ||
		u.RawQuery != "" || u.Fragment != "" {
		return "", false
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", false
	}
	port := u.Port()
	if port == "" {
		port = "80"
		if scheme == "https" {
			port = "443"
		}
	}
	return scheme + "://" + strings.ToLower(u.Hostname()) + ":" + port, true
}
