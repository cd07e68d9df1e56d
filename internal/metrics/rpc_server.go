package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcServerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc_server",
		Name:      "requests_total",
		Help:      "Count of JSON-RPC requests by method.",
	}, []string{"method", "status"})

	rpcServerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rpc_server",
		Name:      "request_duration_seconds",
		Help:      "Duration of JSON-RPC requests by method.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"method", "status"})
)

// RPCServer tracks TRP JSON-RPC requests.
type RPCServer struct{}

func NewRPCServer() *RPCServer {
	return &RPCServer{}
}

// ObserveRequest records one handled request.
func (m RPCServer) ObserveRequest(method string, err error, started time.Time) {
	status := statusOf(err)
	rpcServerRequestsTotal.WithLabelValues(method, status).Inc()
	rpcServerRequestDuration.WithLabelValues(method, status).Observe(time.Since(started).Seconds())
}
