// Package service runs scans for several keys at once and exports what they
// find.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgerscan/internal/clock"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/record"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/scanner"
	"github.com/goodnatureofminers/ledgerscan/pkg/workerpool"
)

// ErrNoKeys is returned by ScanKeys when called without keys.
var ErrNoKeys = errors.New("at least one key is required")

// KeyResult holds the records found for one key.
type KeyResult struct {
	Address string
	Records scanner.Result
}

// ScanService scans a height range for several keys concurrently. Every key
// gets its own scan; windows inside one scan stay sequential.
type ScanService struct {
	scanner RangeScanner
	network model.Network
	workers int
	writer  RecordWriter
	clock   clock.Clock
	metrics Metrics
	logger  *zap.Logger
}

// NewScanService constructs a ScanService. writer may be nil, in which case
// found records are only returned.
func NewScanService(
	rangeScanner RangeScanner,
	network model.Network,
	workers int,
	writer RecordWriter,
	metrics Metrics,
	logger *zap.Logger,
) (*ScanService, error) {
	if rangeScanner == nil {
		return nil, errors.New("range scanner is required")
	}
	if network == "" {
		return nil, errors.New("network is required")
	}
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScanService{
		scanner: rangeScanner,
		network: network,
		workers: workers,
		writer:  writer,
		clock:   clock.System,
		metrics: metrics,
		logger:  logger.Named("scan_service").With(zap.String("network", string(network))),
	}, nil
}

// ScanKeys scans heights once per key and returns the results in key order.
// Every key is parsed before any block is fetched. With exact set, records
// outside heights are dropped. The first failing key fails the whole call.
func (s *ScanService) ScanKeys(ctx context.Context, keys []string, heights model.HeightRange, exact bool) (results []KeyResult, err error) {
	started := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveScanKeys(err, len(keys), started)
		}
	}()

	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	creds := make([]*record.ViewingCredential, len(keys))
	for i, key := range keys {
		cred, err := record.ParseCredential(key)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w: %w", i, scanner.ErrInvalidCredential, err)
		}
		creds[i] = cred
	}

	results, err = workerpool.Map(ctx, s.workers, creds, func(ctx context.Context, cred *record.ViewingCredential) (KeyResult, error) {
		address := cred.Address().String()
		found, err := s.scanner.ScanCredential(ctx, cred, heights)
		if err != nil {
			return KeyResult{}, fmt.Errorf("scan %s: %w", address, err)
		}
		if exact {
			found = scanner.Narrow(found, heights)
		}
		return KeyResult{Address: address, Records: found}, nil
	})
	if err != nil {
		return nil, err
	}

	if s.writer != nil {
		owned, err := s.ownedRecords(results)
		if err != nil {
			return nil, err
		}
		if err := s.writer.WriteRecords(ctx, owned); err != nil {
			return nil, fmt.Errorf("write records: %w", err)
		}
	}

	s.logger.Info("keys scanned",
		zap.Int("keys", len(keys)),
		zap.Stringer("heights", heights),
		zap.Duration("elapsed", time.Since(started)),
	)
	return results, nil
}

func (s *ScanService) ownedRecords(results []KeyResult) ([]model.OwnedRecord, error) {
	scannedAt := s.clock.Now()

	var owned []model.OwnedRecord
	for _, res := range results {
		for _, entry := range res.Records {
			text, err := entry.Record.Text()
			if err != nil {
				return nil, fmt.Errorf("encode record %s: %w", entry.Commitment, err)
			}
			owned = append(owned, model.OwnedRecord{
				Network:     s.network,
				Owner:       res.Address,
				Commitment:  entry.Commitment.String(),
				BlockHeight: entry.BlockHeight,
				Record:      text,
				ScannedAt:   scannedAt,
			})
		}
	}
	return owned, nil
}
