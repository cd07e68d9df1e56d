// Package hydra mirrors a Hydra head over its WebSocket feed and submits
// transactions to it.
package hydra

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/hydra-trp/internal/clock"
	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
)

// Adapter owns the head connection. Reads are exclusive to Subscribe; writes
// are serialized one message at a time.
type Adapter struct {
	logger   *zap.Logger
	conn     Conn
	store    *Store
	outcomes OutcomePublisher
	recorder SnapshotRecorder
	metrics  IngesterMetrics
	sleep    func(context.Context, time.Duration) error

	readMu  sync.Mutex
	writeMu sync.Mutex
	state   *fsm.FSM
}

// Dial opens the head WebSocket.
func Dial(ctx context.Context, url string) (*websocket.Conn, error) {
	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = defaultHandshakeTimeout

	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial head %s: %w", url, err)
	}
	return conn, nil
}

// NewAdapter wires an adapter around an open connection. recorder may be nil.
func NewAdapter(
	conn Conn,
	store *Store,
	outcomes OutcomePublisher,
	recorder SnapshotRecorder,
	metrics IngesterMetrics,
	logger *zap.Logger,
) (*Adapter, error) {
	if conn == nil {
		return nil, errors.New("head connection is required")
	}
	if store == nil {
		return nil, errors.New("ledger store is required")
	}
	if outcomes == nil {
		return nil, errors.New("outcome publisher is required")
	}
	if metrics == nil {
		return nil, errors.New("ingester metrics is required")
	}

	return &Adapter{
		logger:   logger,
		conn:     conn,
		store:    store,
		outcomes: outcomes,
		recorder: recorder,
		metrics:  metrics,
		sleep:    clock.Sleep,
		state:    newIngestionFSM(logger),
	}, nil
}

// Store returns the ledger store fed by the adapter.
func (a *Adapter) Store() *Store {
	return a.store
}

// State returns the ingestion state.
func (a *Adapter) State() string {
	return a.state.Current()
}

// Send writes a transaction submission to the head.
func (a *Adapter) Send(ctx context.Context, msg model.NewTxMessage) error {
	payload, err := msg.Encode()
	if err != nil {
		return fmt.Errorf("encode %s message: %w", msg.Tag, err)
	}

	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	deadline, _ := ctx.Deadline()
	if err := a.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	if err := a.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("write %s message: %w", msg.Tag, err)
	}
	return nil
}

// CheckHealth reports whether a ping can be written to the head.
func (a *Adapter) CheckHealth(_ context.Context) bool {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	err := a.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(pingWriteTimeout))
	if err != nil {
		a.logger.Debug("health ping failed", zap.Error(err))
		return false
	}
	return true
}

// KeepAlive pings the head every interval until the context is canceled.
func (a *Adapter) KeepAlive(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultKeepAliveInterval
	}
	for {
		if err := a.sleep(ctx, interval); err != nil {
			return err
		}
		if !a.CheckHealth(ctx) {
			a.logger.Warn("keep-alive ping failed")
		}
	}
}

func (a *Adapter) closeConn() {
	a.writeMu.Lock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := a.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteTimeout)); err != nil {
		a.logger.Debug("write close frame failed", zap.Error(err))
	}
	a.writeMu.Unlock()

	a.release()
}

func (a *Adapter) release() {
	if err := a.conn.Close(); err != nil {
		a.logger.Debug("close head connection failed", zap.Error(err))
	}
}
