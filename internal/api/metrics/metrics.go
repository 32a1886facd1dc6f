// Package metrics defines and registers all custom Prometheus metrics for the
// task marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// The promauto vars register with the default registry at init time; the
// echoprometheus middleware exposes them together with the HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskmarket"

// TasksCreatedTotal counts successfully created tasks.
var TasksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks successfully created.",
	},
)

// TasksAssignedTotal counts successful assignments, including repeats on an
// already-assigned task.
var TasksAssignedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_assigned_total",
		Help:      "Total number of successful task assignments.",
	},
)

// TaskRejectionsTotal counts rejected operations.
// Labels:
//   - operation: "create" or "assign"
//   - reason: short description of the rejection (e.g. "profile_incomplete",
//     "user_not_found", "task_not_found", "bad_input")
var TaskRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_rejections_total",
		Help:      "Total number of rejected task operations, by operation and reason.",
	},
	[]string{"operation", "reason"},
)

// TaskCacheTotal counts task view cache lookups by result ("hit" or "miss").
var TaskCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_cache_total",
		Help:      "Total number of task view cache lookups, by result.",
	},
	[]string{"result"},
)

// DeadlineParseFailuresTotal counts creations whose deadline string did not
// parse and was stored as the invalid sentinel.
var DeadlineParseFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deadline_parse_failures_total",
		Help:      "Total number of tasks created with an unparseable deadline.",
	},
)
