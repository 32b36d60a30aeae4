package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
	"github.com/goodnatureofminers/ledgerscan/pkg/batcher"
)

const (
	recordBatcherCapacity      = 500
	recordBatcherFlushInterval = 5 * time.Second
	recordBatcherRPS           = 2
)

// BatchWriter queues owned records and inserts them into a RecordStore in
// batches. Records queued before Stop are always flushed.
type BatchWriter struct {
	store         RecordStore
	logger        *zap.Logger
	recordBatcher *batcher.Batcher[model.OwnedRecord]
}

// NewBatchWriter constructs a BatchWriter on store.
func NewBatchWriter(store RecordStore, logger *zap.Logger) *BatchWriter {
	w := &BatchWriter{
		store:  store,
		logger: logger,
	}
	w.recordBatcher = batcher.New[model.OwnedRecord](
		logger.Named("recordBatcher"),
		w.flush,
		recordBatcherCapacity,
		recordBatcherFlushInterval,
		recordBatcherRPS,
	)
	return w
}

func (w *BatchWriter) Start(ctx context.Context) {
	w.recordBatcher.Start(ctx)
}

// Stop flushes queued records. It reports the last insert that failed, in
// which case some records were not exported.
func (w *BatchWriter) Stop() error {
	if err := w.recordBatcher.Stop(); err != nil {
		return fmt.Errorf("insert records: %w", err)
	}
	return nil
}

// WriteRecords queues records for insertion.
func (w *BatchWriter) WriteRecords(ctx context.Context, records []model.OwnedRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, rec := range records {
		if err := w.recordBatcher.Add(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *BatchWriter) flush(ctx context.Context, records []model.OwnedRecord) error {
	if err := w.store.InsertRecords(ctx, records); err != nil {
		return err
	}
	w.logger.Debug("InsertRecords", zap.Int("count", len(records)))
	return nil
}
