// Package metrics defines and registers all custom Prometheus metrics for
// the LensLease marketplace API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lenslease"

// SignupsTotal counts successful signups.
// Label:
//   - role: "client" or "photographer"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created through signup, by role.",
	},
	[]string{"role"},
)

// AuthFailuresTotal counts failed login attempts.
// Label:
//   - reason: "not_found", "pending", "rejected", "bad_credential"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// BookingsCreatedTotal counts newly created bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created by clients.",
	},
)

// BookingActionsTotal counts booking actions applied by photographers.
// Label:
//   - action: "accept", "reject" or "complete"
var BookingActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_actions_total",
		Help:      "Total number of booking actions applied, by action.",
	},
	[]string{"action"},
)

// SignupDecisionsTotal counts admin decisions on photographer signups.
// Label:
//   - decision: "approved" or "rejected"
var SignupDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signup_decisions_total",
		Help:      "Total number of admin decisions on pending photographer signups.",
	},
	[]string{"decision"},
)

// AccountsDeletedTotal counts admin account deletions.
var AccountsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_deleted_total",
		Help:      "Total number of accounts deleted by an administrator.",
	},
)
