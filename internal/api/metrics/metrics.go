// Package metrics defines and registers all custom Prometheus metrics for
// the planning API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "planning"

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UpdatesTotal counts successful planning cell mutations.
// Labels:
//   - kind: "status" or "note"
//   - status: the day status written (e.g. "work")
var UpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updates_total",
		Help:      "Total number of planning cell updates, by kind and resulting status.",
	},
	[]string{"kind", "status"},
)

// PermissionDeniedTotal counts mutations rejected by the authorization
// rules. Label:
//   - operation: the denied operation (e.g. "set_status")
var PermissionDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_denied_total",
		Help:      "Total number of planning mutations denied by authorization.",
	},
	[]string{"operation"},
)

// ExportsTotal counts generated export artifacts.
// Label:
//   - format: "excel" or "pdf"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of month exports generated, by format.",
	},
	[]string{"format"},
)
