// Package journal persists confirmed snapshots and transaction verdicts.
package journal

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
	"github.com/goodnatureofminers/hydra-trp/pkg/batcher"
)

var errSubscriptionClosed = errors.New("outcome subscription closed")

// Config tunes the journal batchers.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// Journal batches records into the repository. Recording never blocks the
// caller: records that do not fit in the buffer are dropped and counted.
type Journal struct {
	outcomes OutcomeSubscriber
	metrics  Metrics
	logger   *zap.Logger
	now      func() time.Time

	snapshots *batcher.Batcher[model.SnapshotRecord]
	verdicts  *batcher.Batcher[model.TxOutcomeRecord]
}

func New(
	repo Repository,
	outcomes OutcomeSubscriber,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) (*Journal, error) {
	if repo == nil {
		return nil, errors.New("repository is required")
	}
	if outcomes == nil {
		return nil, errors.New("outcome subscriber is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = DefaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultFlushInterval
	}
	if cfg.RPS <= 0 {
		cfg.RPS = DefaultRPS
	}

	return &Journal{
		outcomes: outcomes,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
		snapshots: batcher.New[model.SnapshotRecord](
			logger.Named("snapshotBatcher"),
			func(ctx context.Context, records []model.SnapshotRecord) error {
				started := time.Now()
				err := repo.InsertSnapshots(ctx, records)
				metrics.ObserveFlush(kindSnapshot, len(records), err, started)
				return err
			},
			cfg.FlushSize,
			cfg.FlushInterval,
			cfg.RPS,
		),
		verdicts: batcher.New[model.TxOutcomeRecord](
			logger.Named("outcomeBatcher"),
			func(ctx context.Context, records []model.TxOutcomeRecord) error {
				started := time.Now()
				err := repo.InsertTxOutcomes(ctx, records)
				metrics.ObserveFlush(kindTxOutcome, len(records), err, started)
				return err
			},
			cfg.FlushSize,
			cfg.FlushInterval,
			cfg.RPS,
		),
	}, nil
}

// RecordSnapshot queues a snapshot row. It is called from the ingestion loop.
func (j *Journal) RecordSnapshot(_ context.Context, record model.SnapshotRecord) {
	if err := j.snapshots.Offer(record); err != nil {
		j.metrics.ObserveDropped(kindSnapshot)
		j.logger.Warn("snapshot not journaled", zap.Uint64("seq", record.Seq), zap.Error(err))
	}
}

// Run records every verdict published on the outcome bus until ctx is done,
// then flushes what is buffered.
func (j *Journal) Run(ctx context.Context) error {
	sub := j.outcomes.Subscribe()
	defer sub.Close()

	j.snapshots.Start(ctx)
	defer j.snapshots.Stop()
	j.verdicts.Start(ctx)
	defer j.verdicts.Stop()

	j.logger.Info("journal started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info("journal stopped")
			return nil
		case event, ok := <-sub.C:
			if !ok {
				return errSubscriptionClosed
			}
			record, ok := j.outcomeRecord(event)
			if !ok {
				continue
			}
			if err := j.verdicts.Offer(record); err != nil {
				j.metrics.ObserveDropped(kindTxOutcome)
				j.logger.Warn("tx outcome not journaled", zap.String("tx", record.TxID), zap.Error(err))
			}
		}
	}
}

func (j *Journal) outcomeRecord(event model.Event) (model.TxOutcomeRecord, bool) {
	switch e := event.(type) {
	case model.TxValid:
		return model.TxOutcomeRecord{
			TxID:       e.ID(),
			Status:     model.OutcomeValid,
			ObservedAt: j.now().UTC(),
		}, true
	case model.TxInvalid:
		return model.TxOutcomeRecord{
			TxID:       e.ID(),
			Status:     model.OutcomeInvalid,
			Reason:     e.ValidationError.Reason,
			ObservedAt: j.now().UTC(),
		}, true
	default:
		return model.TxOutcomeRecord{}, false
	}
}
