package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
)

const ownedRecordsQuery = `
SELECT
	commitment,
	block_height,
	record,
	scanned_at
FROM owned_records FINAL
WHERE network = ? AND owner = ?
ORDER BY block_height ASC, commitment ASC`

// OwnedRecords returns the stored records of owner in block height order.
func (r *Repository) OwnedRecords(ctx context.Context, network model.Network, owner string) (records []model.OwnedRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("owned_records", network, err, start)
	}()

	rows, err := r.conn.Query(ctx, ownedRecordsQuery, string(network), owner)
	if err != nil {
		return nil, fmt.Errorf("query owned records: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		rec := model.OwnedRecord{Network: network, Owner: owner}
		if err = rows.Scan(
			&rec.Commitment,
			&rec.BlockHeight,
			&rec.Record,
			&rec.ScannedAt,
		); err != nil {
			return nil, fmt.Errorf("scan owned record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate owned records: %w", err)
	}

	return records, nil
}
