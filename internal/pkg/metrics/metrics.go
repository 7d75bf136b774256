// Package metrics exposes Prometheus counters for the job lifecycle.
// Counters are registered on the default registry and served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobsPosted counts jobs successfully posted to the board.
	JobsPosted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "haul_jobs_posted_total",
		Help: "Number of jobs posted to the board.",
	})

	// JobsAccepted counts successful mover assignments.
	JobsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "haul_jobs_accepted_total",
		Help: "Number of jobs accepted by a mover.",
	})

	// JobsSettled counts completed settlements, capture included.
	JobsSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "haul_jobs_settled_total",
		Help: "Number of jobs settled and paid out.",
	})

	// SettlementFailures counts failed capture attempts. Retried by the
	// settlement sweep, so a single job can fail more than once.
	SettlementFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "haul_settlement_failures_total",
		Help: "Number of failed hold capture attempts.",
	})

	// ConflictsReported counts reported conflicts.
	ConflictsReported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "haul_conflicts_reported_total",
		Help: "Number of conflicts reported between posters and movers.",
	})
)
