package trp

const (
	MethodResolve = "trp.resolve"
	MethodSubmit  = "trp.submit"
	MethodHealth  = "health"

	// DefaultMaxOptimizeRounds bounds the compiler's fee optimization passes.
	DefaultMaxOptimizeRounds = 10

	jsonrpcVersion     = "2.0"
	maxRequestBodySize = 8 << 20
	unknownMethod      = "unknown"
	batchWorkers       = 4
)
