package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submitterSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "submitter",
		Name:      "submissions_total",
		Help:      "Count of transaction submissions by outcome.",
	}, []string{"outcome"})

	submitterSubmissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "submitter",
		Name:      "submission_duration_seconds",
		Help:      "Duration of a submission including the confirmation wait.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60},
	}, []string{"outcome"})
)

// Submitter tracks transaction submissions.
type Submitter struct{}

func NewSubmitter() *Submitter {
	return &Submitter{}
}

// ObserveSubmit records a finished submission.
func (m Submitter) ObserveSubmit(outcome string, started time.Time) {
	submitterSubmissionsTotal.WithLabelValues(outcome).Inc()
	submitterSubmissionDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}
