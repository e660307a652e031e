// README: Prometheus counters for itinerary generation outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GenerationRuns counts finished pipeline runs by terminal status.
	GenerationRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripforge_generation_runs_total",
		Help: "Itinerary generation runs by terminal status (completed/failed/stale).",
	}, []string{"status"})

	// StageDataSource counts which data source each acquisition stage ended up using.
	StageDataSource = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripforge_stage_data_source_total",
		Help: "Acquisition stage outcomes by data source (live-provider/synthesized/fallback/skipped).",
	}, []string{"stage", "source"})

	// GenerationDuration observes wall-clock time of full pipeline runs.
	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tripforge_generation_duration_seconds",
		Help:    "Duration of itinerary generation runs.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})
)
