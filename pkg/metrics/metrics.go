// Package metrics provides Prometheus metrics for the policy designer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DesignOperationsTotal tracks design operations by outcome
	DesignOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insurance_designer",
			Subsystem: "design",
			Name:      "operations_total",
			Help:      "Total number of policy design operations by outcome",
		},
		[]string{"outcome"},
	)

	// DesignItemFailuresTotal tracks skipped best-effort writes
	DesignItemFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insurance_designer",
			Subsystem: "design",
			Name:      "item_failures_total",
			Help:      "Total number of best-effort record writes that were skipped",
		},
		[]string{"object_kind"},
	)

	// QueryOperationsTotal tracks read-path operations
	QueryOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insurance_designer",
			Subsystem: "query",
			Name:      "operations_total",
			Help:      "Total number of policy read operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// RecordGatewayDuration tracks record store round trips
	RecordGatewayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "insurance_designer",
			Subsystem: "record_gateway",
			Name:      "request_duration_seconds",
			Help:      "Duration of record store calls by operation and object kind",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "object_kind"},
	)
)
