package hydra

import (
	"context"
	"time"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
	"github.com/goodnatureofminers/hydra-trp/pkg/broadcast"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Conn is the subset of *websocket.Conn the adapter uses.
	Conn interface {
		ReadMessage() (messageType int, p []byte, err error)
		WriteMessage(messageType int, data []byte) error
		WriteControl(messageType int, data []byte, deadline time.Time) error
		SetWriteDeadline(t time.Time) error
		Close() error
	}
	OutcomePublisher interface {
		Publish(event model.Event) (int, error)
	}
	OutcomeSubscriber interface {
		Subscribe() *broadcast.Subscription[model.Event]
	}
	TxSender interface {
		Send(ctx context.Context, msg model.NewTxMessage) error
	}
	SnapshotRecorder interface {
		RecordSnapshot(ctx context.Context, record model.SnapshotRecord)
	}

	IngesterMetrics interface {
		ObserveEvent(tag string, err error, started time.Time)
		ObserveSnapshot(utxos int, seq uint64)
	}
	SubmitterMetrics interface {
		ObserveSubmit(outcome string, started time.Time)
	}
	ProtocolParamsMetrics interface {
		ObserveFetch(err error, started time.Time)
	}
)
