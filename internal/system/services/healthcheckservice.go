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

package services

import (
	"net/http"

	"github.com/reenboog/touchid/internal/system/healthcheck/handler"
	"github.com/reenboog/touchid/internal/system/middleware"
)

// HealthCheckService serves the liveness and readiness endpoints used by orchestrators.
type HealthCheckService struct {
	endpoints *handler.HealthCheckHandler
}

// NewHealthCheckService creates the health check service and registers its routes on mux.
func NewHealthCheckService(mux *http.ServeMux) ServiceInterface {
	svc := &HealthCheckService{endpoints: handler.NewHealthCheckHandler()}
	svc.RegisterRoutes(mux)
	return svc
}

// RegisterRoutes registers the health endpoints and their preflight routes.
func (h *HealthCheckService) RegisterRoutes(mux *http.ServeMux) {
	policy := middleware.CORSPolicy{
		Methods:          []string{http.MethodGet},
		Headers:          []string{"Content-Type"},
		AllowCredentials: true,
	}
	policy.Handle(mux, "GET /health/liveness", h.endpoints.HandleLivenessRequest)
	policy.Handle(mux, "GET /health/readiness", h.endpoints.HandleReadinessRequest)
}
