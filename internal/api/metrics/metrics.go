// Package metrics defines and registers all custom Prometheus metrics for
// the travel booking API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travel"

// RegistrationsTotal counts registration attempts.
// Labels:
//   - result: "success", "duplicate", "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts authorization denials on role-restricted
// operations.
// Labels:
//   - operation: short name of the denied operation (e.g. "create_destination")
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of authorization denials, by operation.",
	},
	[]string{"operation"},
)

// BookingsCreatedTotal counts successfully created bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// CatalogCacheTotal counts destination-catalog cache lookups.
// Labels:
//   - result: "hit" or "miss"
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of destination cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
