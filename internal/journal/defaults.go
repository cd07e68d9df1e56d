package journal

import "time"

const (
	DefaultFlushSize     = 100
	DefaultFlushInterval = 5 * time.Second
	DefaultRPS           = 10

	kindSnapshot  = "snapshot"
	kindTxOutcome = "tx_outcome"
)
