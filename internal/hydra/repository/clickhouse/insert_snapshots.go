package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
)

const insertSnapshotsQuery = `
INSERT INTO hydra_snapshots (
	seq,
	timestamp,
	head_status,
	utxo_count,
	observed_at
) VALUES`

// InsertSnapshots stores confirmed snapshot rows.
func (r *Repository) InsertSnapshots(ctx context.Context, snapshots []model.SnapshotRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_snapshots", err, start)
	}()

	if len(snapshots) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertSnapshotsQuery)
	if err != nil {
		return fmt.Errorf("prepare snapshots batch: %w", err)
	}

	for _, snapshot := range snapshots {
		if err = batch.Append(
			snapshot.Seq,
			snapshot.Timestamp,
			string(snapshot.HeadStatus),
			snapshot.UtxoCount,
			snapshot.ObservedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append snapshot %d: %w", snapshot.Seq, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert snapshots: %w", err)
	}
	return nil
}
