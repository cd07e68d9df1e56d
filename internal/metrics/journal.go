package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	journalFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "flush_total",
		Help:      "Count of journal batch flushes by record kind.",
	}, []string{"kind", "status"})

	journalFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "flush_size",
		Help:      "Number of records per journal flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"kind"})

	journalFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "flush_duration_seconds",
		Help:      "Duration of journal flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})

	journalDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "dropped_total",
		Help:      "Count of records dropped because the journal buffer was full.",
	}, []string{"kind"})
)

// Journal tracks the event journal batchers.
type Journal struct{}

func NewJournal() *Journal {
	return &Journal{}
}

func (m Journal) ObserveFlush(kind string, records int, err error, started time.Time) {
	status := statusOf(err)
	journalFlushTotal.WithLabelValues(kind, status).Inc()
	journalFlushDuration.WithLabelValues(kind, status).Observe(time.Since(started).Seconds())
	journalFlushSize.WithLabelValues(kind).Observe(float64(records))
}

func (m Journal) ObserveDropped(kind string) {
	journalDroppedTotal.WithLabelValues(kind).Inc()
}
