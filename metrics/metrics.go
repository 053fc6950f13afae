package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Relay and decision counters. Every no-anchor and transport failure is
// counted here so systemic correlation failures are visible to operators
// even though they are invisible to end users.
var (
	RelayOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bebetter_relay_outcomes_total",
		Help: "Relay attempts by outcome.",
	}, []string{"outcome"})

	Decisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bebetter_decisions_total",
		Help: "Reviewer decisions by outcome.",
	}, []string{"outcome"})

	GatewayErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bebetter_gateway_errors_total",
		Help: "Messaging gateway call failures by operation.",
	}, []string{"op"})

	Submissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bebetter_submissions_total",
		Help: "Social post submissions created.",
	})
)
