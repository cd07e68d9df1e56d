package hydra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
	"github.com/goodnatureofminers/hydra-trp/pkg/safe"
)

const (
	tagMalformed = "malformed"
	tagUnknown   = "unknown"
)

type frame struct {
	data []byte
	err  error
}

// Subscribe consumes the head event feed until a close frame arrives, the
// context is canceled or the connection fails. Only the failure case returns
// an error; the adapter does not reconnect.
func (a *Adapter) Subscribe(ctx context.Context) error {
	a.readMu.Lock()
	defer a.readMu.Unlock()

	if a.state.Current() != StateRunning {
		return ErrIngestionStopped
	}

	// transitions must not be skipped because ctx is already done
	fsmCtx := context.WithoutCancel(ctx)

	done := make(chan struct{})
	defer close(done)
	frames := make(chan frame)
	go a.readFrames(frames, done)

	a.logger.Info("head event feed subscribed")
	for {
		select {
		case <-ctx.Done():
			a.transition(fsmCtx, eventCancel)
			a.closeConn()
			a.transition(fsmCtx, eventTerminate)
			a.logger.Info("head event feed stopped", zap.String("reason", "canceled"))
			return nil
		case f := <-frames:
			if f.err == nil {
				a.apply(ctx, f.data)
				continue
			}

			var closeErr *websocket.CloseError
			if errors.As(f.err, &closeErr) {
				a.transition(fsmCtx, eventClose)
				a.release()
				a.transition(fsmCtx, eventTerminate)
				a.logger.Info("head event feed stopped",
					zap.String("reason", "closed"),
					zap.Int("code", closeErr.Code),
				)
				return nil
			}

			a.transition(fsmCtx, eventFail)
			a.release()
			a.logger.Error("head event feed failed", zap.Error(f.err))
			return fmt.Errorf("read head event: %w", f.err)
		}
	}
}

func (a *Adapter) readFrames(frames chan<- frame, done <-chan struct{}) {
	for {
		messageType, data, err := a.conn.ReadMessage()
		if err == nil && messageType != websocket.TextMessage && messageType != websocket.BinaryMessage {
			continue
		}
		select {
		case frames <- frame{data: data, err: err}:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

func (a *Adapter) transition(ctx context.Context, event string) {
	if err := a.state.Event(ctx, event); err != nil {
		a.logger.Warn("ingestion transition failed", zap.String("event", event), zap.Error(err))
	}
}

func (a *Adapter) apply(ctx context.Context, data []byte) {
	started := time.Now()

	event, err := model.ParseEvent(data)
	if err != nil {
		a.metrics.ObserveEvent(tagMalformed, err, started)
		a.logger.Debug("skipping unparseable head message", zap.Error(err))
		return
	}

	tag := event.Tag()
	switch e := event.(type) {
	case model.Greetings:
		utxos := e.UTXOs()
		a.store.ApplyBootstrap(e.HeadStatus, utxos)
		a.logger.Info("applied greetings",
			zap.String("head_status", string(e.HeadStatus)),
			zap.Int("utxos", len(utxos)),
		)
	case model.SnapshotConfirmed:
		a.store.ApplySnapshot(e.Snapshot.Utxo)
		a.store.SetProgress(Progress{Seq: e.Seq, Timestamp: e.Timestamp})
		a.metrics.ObserveSnapshot(len(e.Snapshot.Utxo), e.Seq)
		a.logger.Info("applied confirmed snapshot",
			zap.Uint64("seq", e.Seq),
			zap.Uint64("snapshot", e.Snapshot.Number),
			zap.Int("utxos", len(e.Snapshot.Utxo)),
		)
		a.record(ctx, e)
	case model.HeadIsOpen:
		a.store.ApplySnapshot(e.Utxo)
		a.store.SetHeadStatus(model.HeadOpen)
		a.logger.Info("head is open", zap.Int("utxos", len(e.Utxo)))
	case model.TxValid, model.TxInvalid:
		a.publish(event)
	case model.UnknownEvent:
		tag = tagUnknown
		a.logger.Debug("ignoring head event", zap.String("tag", e.Name))
	}

	a.metrics.ObserveEvent(tag, nil, started)
}

func (a *Adapter) publish(event model.Event) {
	delivered, err := a.outcomes.Publish(event)
	if err != nil {
		a.logger.Debug("validation outcome not delivered", zap.String("tag", event.Tag()), zap.Error(err))
		return
	}
	a.logger.Debug("validation outcome published", zap.String("tag", event.Tag()), zap.Int("subscribers", delivered))
}

func (a *Adapter) record(ctx context.Context, e model.SnapshotConfirmed) {
	if a.recorder == nil {
		return
	}
	count, err := safe.Uint32(len(e.Snapshot.Utxo))
	if err != nil {
		a.logger.Warn("snapshot size out of range", zap.Error(err))
		return
	}
	a.recorder.RecordSnapshot(ctx, model.SnapshotRecord{
		Seq:        e.Seq,
		Timestamp:  e.Timestamp,
		HeadStatus: a.store.HeadStatus(),
		UtxoCount:  count,
		ObservedAt: time.Now().UTC(),
	})
}
