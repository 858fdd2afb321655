package conformance

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	casesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "softcheck_cases_total",
		Help: "Total number of conformance cases executed",
	}, []string{"op"})

	mismatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "softcheck_mismatches_total",
		Help: "Total number of cases disagreeing with the oracle",
	}, []string{"op"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "softcheck_run_duration_seconds",
		Help:    "Time spent running conformance batches",
		Buckets: prometheus.DefBuckets,
	})
)
