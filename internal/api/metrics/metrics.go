// Package metrics defines and registers all custom Prometheus metrics for
// the travel API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travel"

// LoginsTotal counts session tokens issued via /auth/login.
var LoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of session tokens issued.",
	},
)

// AuthRejectionsTotal counts requests rejected by the auth chain.
// Label:
//   - reason: "missing_cookie", "invalid_token", or "not_admin"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// StoreWritesTotal counts mutating store operations issued by handlers.
// Labels:
//   - collection: "users", "banner", "latestPlan", "them", "gallery"
//   - op: "insert", "update", "delete"
var StoreWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_writes_total",
		Help:      "Total number of mutating document-store operations, by collection and operation.",
	},
	[]string{"collection", "op"},
)
