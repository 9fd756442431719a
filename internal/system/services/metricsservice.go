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

	"github.com/reenboog/touchid/internal/system/metrics"
)

// MetricsService exposes the Prometheus metrics of the server.
type MetricsService struct {
	path    string
	metrics *metrics.Metrics
}

// NewMetricsService creates a new instance of MetricsService serving the metrics on the given path.
func NewMetricsService(mux *http.ServeMux, path string) ServiceInterface {
	instance := &MetricsService{
		path:    path,
		metrics: metrics.GetMetrics(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the MetricsService.
func (m *MetricsService) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET "+m.path, m.metrics.HTTPHandler())
}
