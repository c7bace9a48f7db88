/*
Copyright 2024 The KodeRover Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "snapin"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	Metrics = prometheus.NewRegistry()

	FunctionEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "function_events_total",
			Help:      "Number of events handled by each function",
		},
		[]string{"function", "result"},
	)

	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_total",
			Help:      "Number of requests",
		},
		[]string{"method", "handler", "status"},
	)

	ResponseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "response_time_seconds",
			Help:      "The API response time in seconds",
			Buckets:   prometheus.LinearBuckets(0.2, 0.2, 10),
		},
		[]string{"method", "handler", "status"},
	)
)

func init() {
	Metrics.MustRegister(FunctionEvents, RequestTotal, ResponseTime)
}

func RegisterRequest(startTime int64, method, handler string, status int) {
	RequestTotal.WithLabelValues(method, handler, fmt.Sprintf("%d", status)).Inc()
	ResponseTime.WithLabelValues(method, handler, fmt.Sprintf("%d", status)).Observe(float64(time.Now().UnixMilli()-startTime) / 1000)
}

func RegisterFunctionEvent(function string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	FunctionEvents.WithLabelValues(function, result).Inc()
}

// Handler serves the snapin registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Metrics, promhttp.HandlerOpts{})
}
