package hydra

import "time"

const (
	// DefaultConfirmTimeout bounds the wait for a TxValid or TxInvalid verdict.
	DefaultConfirmTimeout = 30 * time.Second
	// DefaultKeepAliveInterval is the period between keep-alive pings.
	DefaultKeepAliveInterval = 30 * time.Second

	defaultHandshakeTimeout = 10 * time.Second
	pingWriteTimeout        = 5 * time.Second
	closeWriteTimeout       = time.Second

	protocolParametersPath = "/protocol-parameters"
	maxParamsBodySize      = 4 << 20
)
