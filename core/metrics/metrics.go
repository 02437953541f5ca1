// Package metrics exposes Prometheus instruments for metadata resolution.
//
// Instruments register on the default registry at init. The start command
// serves them at /metrics when server.metrics_enabled is set.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ResolutionsTotal counts episode resolutions by the path that produced them.
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metadata_resolutions_total",
			Help: "Total number of episode metadata resolutions by path",
		},
		[]string{"path"},
	)

	// ContextBuildsTotal counts title context builds by outcome.
	ContextBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metadata_context_builds_total",
			Help: "Total number of title context builds by outcome",
		},
		[]string{"outcome"},
	)

	// ContextBuildDuration tracks how long title context builds take.
	ContextBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "metadata_context_build_duration_seconds",
			Help:    "Duration of title context builds in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	// ArtworkLookupsTotal counts artwork existence checks by result.
	ArtworkLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metadata_artwork_lookups_total",
			Help: "Total number of artwork existence checks by result",
		},
		[]string{"result"},
	)
)

// RecordResolution counts one resolution on the named path.
func RecordResolution(path string) {
	ResolutionsTotal.WithLabelValues(path).Inc()
}

// RecordContextBuild records a build outcome and its duration.
func RecordContextBuild(d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	ContextBuildsTotal.WithLabelValues(outcome).Inc()
	ContextBuildDuration.Observe(d.Seconds())
}

// RecordArtworkLookup counts one artwork check. err takes precedence over found.
func RecordArtworkLookup(found bool, err error) {
	switch {
	case err != nil:
		ArtworkLookupsTotal.WithLabelValues("error").Inc()
	case found:
		ArtworkLookupsTotal.WithLabelValues("found").Inc()
	default:
		ArtworkLookupsTotal.WithLabelValues("missing").Inc()
	}
}
