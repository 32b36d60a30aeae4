package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
)

const insertRecordsQuery = `
INSERT INTO owned_records (
	network,
	owner,
	commitment,
	block_height,
	record,
	scanned_at
) VALUES`

// InsertRecords stores owned records. Rows are deduplicated by
// (network, owner, commitment), keeping the latest scan.
func (r *Repository) InsertRecords(ctx context.Context, records []model.OwnedRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_records", firstNetwork(records), err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertRecordsQuery)
	if err != nil {
		return fmt.Errorf("prepare records batch: %w", err)
	}

	for _, rec := range records {
		if err = batch.Append(
			string(rec.Network),
			rec.Owner,
			rec.Commitment,
			rec.BlockHeight,
			rec.Record,
			rec.ScannedAt,
		); err != nil {
			return fmt.Errorf("append record: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert records: %w", err)
	}
	return nil
}

func firstNetwork(records []model.OwnedRecord) model.Network {
	if len(records) == 0 {
		return ""
	}
	return records[0].Network
}
