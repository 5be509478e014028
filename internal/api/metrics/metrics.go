// Package metrics defines the custom Prometheus metrics for the accounts
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry via promauto at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// SignupsTotal counts account-creation attempts.
// Label:
//   - result: "success" or "failed"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts requests the access guard turned away.
// Label:
//   - reason: "missing_header", "invalid_token", "user_gone", "stale_token"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of guarded requests rejected, by reason.",
	},
	[]string{"reason"},
)

// ListOpsTotal counts favorites/watch-list mutations.
// Labels:
//   - list: "favorites" or "watchlist"
//   - op: "add" or "remove"
//   - result: "success" or "failed"
var ListOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_ops_total",
		Help:      "Total number of movie-list mutations, by list, op and result.",
	},
	[]string{"list", "op", "result"},
)
