package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
)

const insertTxOutcomesQuery = `
INSERT INTO hydra_tx_outcomes (
	tx_id,
	status,
	reason,
	observed_at
) VALUES`

// InsertTxOutcomes stores validation verdicts reported by the head.
func (r *Repository) InsertTxOutcomes(ctx context.Context, outcomes []model.TxOutcomeRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_tx_outcomes", err, start)
	}()

	if len(outcomes) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTxOutcomesQuery)
	if err != nil {
		return fmt.Errorf("prepare tx outcomes batch: %w", err)
	}

	for _, outcome := range outcomes {
		if err = batch.Append(
			outcome.TxID,
			string(outcome.Status),
			outcome.Reason,
			outcome.ObservedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append tx outcome %s: %w", outcome.TxID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert tx outcomes: %w", err)
	}
	return nil
}
