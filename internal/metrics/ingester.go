package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "events_total",
		Help:      "Count of head events handled by tag.",
	}, []string{"tag", "status"})

	ingesterEventDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "event_duration_seconds",
		Help:      "Duration of applying a head event.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
	}, []string{"tag"})

	ingesterSnapshotUtxos = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "snapshot_utxos",
		Help:      "Number of UTXOs in the latest confirmed snapshot.",
	})

	ingesterSnapshotSeq = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "snapshot_seq",
		Help:      "Sequence number of the latest confirmed snapshot.",
	})
)

// Ingester tracks metrics for the head event loop.
type Ingester struct{}

func NewIngester() *Ingester {
	return &Ingester{}
}

// ObserveEvent records one handled event.
func (m Ingester) ObserveEvent(tag string, err error, started time.Time) {
	if tag == "" {
		tag = "unknown"
	}
	ingesterEventsTotal.WithLabelValues(tag, statusOf(err)).Inc()
	ingesterEventDuration.WithLabelValues(tag).Observe(time.Since(started).Seconds())
}

// ObserveSnapshot records the size and sequence of a confirmed snapshot.
func (m Ingester) ObserveSnapshot(utxos int, seq uint64) {
	ingesterSnapshotUtxos.Set(float64(utxos))
	ingesterSnapshotSeq.Set(float64(seq))
}
