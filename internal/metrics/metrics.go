// Package metrics exposes the portal's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campussync_logins_total",
		Help: "Login attempts by role and outcome.",
	}, []string{"role", "outcome"})

	actions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campussync_actions_total",
		Help: "Routed portal actions by role, action and outcome.",
	}, []string{"role", "action", "outcome"})
)

// LoginAttempt records one login attempt.
func LoginAttempt(role, outcome string) {
	logins.WithLabelValues(role, outcome).Inc()
}

// ActionHandled records one routed action.
func ActionHandled(role, action, outcome string) {
	actions.WithLabelValues(role, action, outcome).Inc()
}
