// Package metrics defines and registers all custom Prometheus metrics for
// the RICHCHOI hotel API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "richchoi"

// ── Checkout metrics ──────────────────────────────────────────────────────────

// BookingsStartedTotal counts checkout attempts opened.
// Label:
//   - kind: "room" or "service"
var BookingsStartedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_started_total",
		Help:      "Total number of checkout attempts opened, by booking kind.",
	},
	[]string{"kind"},
)

// BookingsClosedTotal counts checkout attempts reaching a terminal state.
// Labels:
//   - kind:   "room" or "service"
//   - status: "confirmed" or "cancelled"
var BookingsClosedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_closed_total",
		Help:      "Total number of checkout attempts closed, by kind and terminal status.",
	},
	[]string{"kind", "status"},
)

// ── Inventory metrics ─────────────────────────────────────────────────────────

// RoomsManagedTotal counts admin mutations of the room collection.
// Label:
//   - action: "create", "update", "delete", "toggle"
var RoomsManagedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rooms_managed_total",
		Help:      "Total number of admin room inventory mutations, by action.",
	},
	[]string{"action"},
)

// ── Concierge metrics ─────────────────────────────────────────────────────────

// ConciergeRequestsTotal counts chat relay round trips.
// Label:
//   - outcome: "reply", "offline", "busy", "unclear"
var ConciergeRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "concierge_requests_total",
		Help:      "Total number of concierge chat requests, by outcome.",
	},
	[]string{"outcome"},
)

// ConciergeDuration measures the chat relay round trip end-to-end.
var ConciergeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "concierge_duration_seconds",
		Help:      "Duration of concierge relay round trips.",
		Buckets:   prometheus.DefBuckets,
	},
)
