package journal

import (
	"context"
	"time"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
	"github.com/goodnatureofminers/hydra-trp/pkg/broadcast"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertSnapshots(ctx context.Context, snapshots []model.SnapshotRecord) error
		InsertTxOutcomes(ctx context.Context, outcomes []model.TxOutcomeRecord) error
	}
	OutcomeSubscriber interface {
		Subscribe() *broadcast.Subscription[model.Event]
	}
	Metrics interface {
		ObserveFlush(kind string, records int, err error, started time.Time)
		ObserveDropped(kind string)
	}
)
