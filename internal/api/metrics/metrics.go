// Package metrics defines and registers all custom Prometheus metrics for the
// orders API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation (promauto) and exposed on /metrics next to the echoprometheus
// request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orders"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - flow: "register" or "login"
//   - result: "success", "rejected" (business-rule failure) or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by flow and result.",
	},
	[]string{"flow", "result"},
)

// ── Business-rule metrics ─────────────────────────────────────────────────────

// BusinessRuleRejectionsTotal counts requests rejected by a business rule.
// Label:
//   - rule: "duplicate_email", "invalid_credentials", "referenced_entity_not_found",
//     "dependency_conflict", "invalid_amount", "idempotency_key_reused" or "other"
var BusinessRuleRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "business_rule_rejections_total",
		Help:      "Total number of requests rejected by a business rule.",
	},
	[]string{"rule"},
)

// ── Entity metrics ────────────────────────────────────────────────────────────

var ClientsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of clients created.",
	},
)

var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created (replays excluded).",
	},
)

// IdempotentReplaysTotal counts order creations answered from a previous
// request with the same Idempotency-Key.
var IdempotentReplaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of order creations served as idempotent replays.",
	},
)
