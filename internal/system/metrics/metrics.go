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

// Package metrics exposes the Prometheus collectors of the server.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reenboog/touchid/internal/system/log"
)

const (
	namespace = "touchid"
	// unmatchedRoute labels requests that did not match any registered pattern.
	unmatchedRoute = "unmatched"
	// collectTimeout bounds the store lookups made while serving a scrape.
	collectTimeout = 2 * time.Second
)

// Operation results recorded by RecordLockOperation.
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// ActiveLocksFunc returns the number of locks currently held.
type ActiveLocksFunc func(ctx context.Context) (int64, error)

var (
	instance *Metrics
	once     sync.Once
)

// Metrics holds all the collectors of the server.
type Metrics struct {
	registry          *prometheus.Registry
	lockOperations    *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	activeLocksDesc   *prometheus.Desc
	activeLocksMutex  sync.RWMutex
	activeLocksSource ActiveLocksFunc
}

// GetMetrics returns the singleton metrics instance.
func GetMetrics() *Metrics {
	once.Do(func() {
		instance = newMetrics()
	})
	return instance
}

func newMetrics() *Metrics {
	metrics := &Metrics{
		registry: prometheus.NewRegistry(),
		lockOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lock_operations_total",
				Help:      "Total number of lock operations by operation and result.",
			}, []string{"operation", "result"}),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Histogram of HTTP request latencies.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"method", "route", "code"}),
		activeLocksDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "active_locks"),
			"Number of locks currently held.",
			nil, nil),
	}
	metrics.registry.MustRegister(metrics)
	return metrics
}

// SetActiveLocksSource registers the function evaluated for the active locks gauge at scrape time.
func (metrics *Metrics) SetActiveLocksSource(source ActiveLocksFunc) {
	metrics.activeLocksMutex.Lock()
	defer metrics.activeLocksMutex.Unlock()
	metrics.activeLocksSource = source
}

// RecordLockOperation counts one lock operation with its result.
func (metrics *Metrics) RecordLockOperation(operation, result string) {
	metrics.lockOperations.WithLabelValues(operation, result).Inc()
}

// ObserveRequest records the latency of one HTTP request.
func (metrics *Metrics) ObserveRequest(method, route string, statusCode int, elapsed time.Duration) {
	if route == "" {
		route = unmatchedRoute
	}
	metrics.requestDuration.WithLabelValues(method, route, strconv.Itoa(statusCode)).Observe(elapsed.Seconds())
}

// Registry returns the registry the collectors are registered with.
func (metrics *Metrics) Registry() *prometheus.Registry {
	return metrics.registry
}

// HTTPHandler returns the handler serving the metrics in the Prometheus exposition format.
func (metrics *Metrics) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(metrics.registry, promhttp.HandlerOpts{})
}

// Describe implements the method in prometheus Collector.
func (metrics *Metrics) Describe(ch chan<- *prometheus.Desc) {
	metrics.lockOperations.Describe(ch)
	metrics.requestDuration.Describe(ch)
	ch <- metrics.activeLocksDesc
}

// Collect implements the method in prometheus Collector.
func (metrics *Metrics) Collect(ch chan<- prometheus.Metric) {
	metrics.lockOperations.Collect(ch)
	metrics.requestDuration.Collect(ch)
	metrics.collectActiveLocks(ch)
}

// collectActiveLocks evaluates the active locks source, if one is registered.
func (metrics *Metrics) collectActiveLocks(ch chan<- prometheus.Metric) {
	metrics.activeLocksMutex.RLock()
	source := metrics.activeLocksSource
	metrics.activeLocksMutex.RUnlock()
	if source == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	count, err := source(ctx)
	if err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Metrics")).
			Warn("Failed to count active locks", log.Error(err))
		return
	}
	ch <- prometheus.MustNewConstMetric(metrics.activeLocksDesc, prometheus.GaugeValue, float64(count))
}
