package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/hydra-trp/internal/tx3"
)

// HydraLedger resolves compiler queries against the latest head snapshot.
type HydraLedger struct {
	params    ParamsSource
	snapshots SnapshotSource
	selector  InputSelector
	logger    *zap.Logger
}

var _ tx3.Ledger = (*HydraLedger)(nil)

// NewHydraLedger wires the ledger view handed to the transaction compiler.
func NewHydraLedger(
	params ParamsSource,
	snapshots SnapshotSource,
	selector InputSelector,
	logger *zap.Logger,
) (*HydraLedger, error) {
	if params == nil {
		return nil, errors.New("params source is required")
	}
	if snapshots == nil {
		return nil, errors.New("snapshot source is required")
	}
	if selector == nil {
		return nil, errors.New("selector is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &HydraLedger{
		params:    params,
		snapshots: snapshots,
		selector:  selector,
		logger:    logger,
	}, nil
}

// ProtocolParams fetches fresh parameters from the head on every call.
func (l *HydraLedger) ProtocolParams(ctx context.Context) (tx3.PParams, error) {
	params, err := l.params.ProtocolParams(ctx)
	if err != nil {
		return tx3.PParams{}, fmt.Errorf("protocol parameters: %w", err)
	}
	return params, nil
}

// ResolveInput selects UTXOs for query from a single consistent snapshot.
func (l *HydraLedger) ResolveInput(ctx context.Context, query tx3.InputQuery) (tx3.UtxoSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := l.snapshots.Snapshot()
	utxos, err := l.selector.Select(view, query)
	if err != nil {
		l.logger.Debug("input resolution failed",
			zap.Int("utxos", view.Len()),
			zap.Bool("collateral", query.Collateral),
			zap.Error(err),
		)
		return nil, err
	}

	l.logger.Debug("input resolved",
		zap.Int("utxos", view.Len()),
		zap.Int("selected", len(utxos)),
		zap.Bool("collateral", query.Collateral),
	)
	return utxos, nil
}
