package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	protocolParamsFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "protocol_params",
		Name:      "fetch_total",
		Help:      "Count of protocol parameter fetches from the head.",
	}, []string{"status"})

	protocolParamsFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "protocol_params",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of protocol parameter fetches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// ProtocolParams tracks the HTTP parameters endpoint.
type ProtocolParams struct{}

func NewProtocolParams() *ProtocolParams {
	return &ProtocolParams{}
}

func (m ProtocolParams) ObserveFetch(err error, started time.Time) {
	status := statusOf(err)
	protocolParamsFetchTotal.WithLabelValues(status).Inc()
	protocolParamsFetchDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
