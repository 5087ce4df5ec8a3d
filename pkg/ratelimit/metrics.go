package ratelimit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// decisionsTotal counts rate limit checks by outcome.
	decisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratelimit_decisions_total",
			Help: "Total rate limit decisions by result",
		},
		[]string{"result"}, // result: allowed | denied
	)

	// trackedIdentifiers reports how many identifiers the limiter holds.
	trackedIdentifiers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ratelimit_tracked_identifiers",
			Help: "Number of identifiers currently tracked by the rate limiter",
		},
	)
)

// RecordDecision records a rate limit decision outcome.
func RecordDecision(d *Decision) {
	if d.Allowed {
		decisionsTotal.WithLabelValues("allowed").Inc()
	} else {
		decisionsTotal.WithLabelValues("denied").Inc()
	}
}

// RecordTrackedIdentifiers updates the tracked identifier gauge.
func RecordTrackedIdentifiers(n int) {
	trackedIdentifiers.Set(float64(n))
}
