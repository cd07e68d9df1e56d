package trp

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Submitter interface {
		Submit(ctx context.Context, raw []byte, confirm bool) (string, error)
	}
	HealthChecker interface {
		CheckHealth(ctx context.Context) bool
	}
	RequestMetrics interface {
		ObserveRequest(method string, err error, started time.Time)
	}
)
