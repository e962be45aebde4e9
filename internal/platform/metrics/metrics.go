// Package metrics defines the Prometheus instruments exported by the
// task service. All instruments are registered with the default
// registry and exposed through the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal tracks the total number of HTTP requests served,
	// partitioned by method, route pattern, and response status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nexa_http_requests_total",
			Help: "Total number of HTTP requests served by the task API",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency per method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nexa_http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// TasksCreatedTotal tracks the number of task records created,
	// partitioned by task type. Types are an open contract, so this
	// label is unbounded only to the extent callers invent new types.
	TasksCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nexa_tasks_created_total",
			Help: "Total number of task records created, by task type",
		},
		[]string{"task_type"},
	)
)
