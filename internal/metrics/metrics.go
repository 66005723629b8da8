// Package metrics exposes Prometheus counters for the episode diary.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EpisodesRecorded counts successfully stored episodes.
	EpisodesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aura_episodes_recorded_total",
		Help: "Number of migraine episodes recorded.",
	})

	// EpisodesDeleted counts episode deletions requested by users.
	EpisodesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aura_episodes_deleted_total",
		Help: "Number of migraine episodes deleted.",
	})

	// ReportsComposed counts generated text reports by period filter.
	ReportsComposed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aura_reports_composed_total",
		Help: "Number of text reports composed, labeled by period filter.",
	}, []string{"period"})
)
