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

// Package middleware provides HTTP middleware functions for request processing.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/reenboog/touchid/internal/system/config"
	"github.com/reenboog/touchid/internal/system/log"
	"github.com/reenboog/touchid/internal/system/utils"
)

// CORSPolicy describes the cross-origin access granted to a group of routes.
// Allowed origins always come from the server configuration.
type CORSPolicy struct {
	Methods          []string
	Headers          []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// Handle registers handler under pattern ("METHOD /path") and a preflight route answering
// OPTIONS on the same path with 204. A path may be registered through Handle only once.
func (p CORSPolicy) Handle(mux *http.ServeMux, pattern string, handler http.HandlerFunc) {
	_, path, ok := strings.Cut(pattern, " ")
	if !ok {
		path = pattern
	}
	mux.HandleFunc(pattern, p.Wrap(handler))
	mux.HandleFunc(http.MethodOptions+" "+path, p.Wrap(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

// Wrap returns handler with the policy's CORS response headers applied.
func (p CORSPolicy) Wrap(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.writeHeaders(w, r)
		handler(w, r)
	}
}

func (p CORSPolicy) writeHeaders(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return
	}
	h := w.Header()
	h.Add("Vary", "Origin")

	allowed := utils.MatchOrigin(config.GetServerRuntime().Config.CORS.AllowedOrigins, origin)
	if allowed == "" {
		log.GetLogger().Debug("Cross-origin request from an unlisted origin",
			log.String(log.LoggerKeyComponentName, "CORSMiddleware"), log.String("origin", origin))
		return
	}

	h.Set("Access-Control-Allow-Origin", origin)
	if len(p.Methods) > 0 {
		h.Set("Access-Control-Allow-Methods", strings.Join(p.Methods, ", "))
	}
	if len(p.Headers) > 0 {
		h.Set("Access-Control-Allow-Headers", strings.Join(p.Headers, ", "))
	}
	if p.AllowCredentials {
		h.Set("Access-Control-Allow-Credentials", "true")
	}
	if r.Method == http.MethodOptions && p.MaxAge > 0 {
		h.Set("Access-Control-Max-Age", strconv.Itoa(int(p.MaxAge.Seconds())))
	}
}
