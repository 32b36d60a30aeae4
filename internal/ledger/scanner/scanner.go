// Package scanner finds the ledger records owned by a viewing credential
// within a range of block heights.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/account"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/record"
)

// ErrInvalidCredential is returned when the key text is neither a private
// key nor a view key. No block is fetched in that case.
var ErrInvalidCredential = errors.New("invalid credential")

// FetchError reports the window whose fetch aborted a scan.
type FetchError struct {
	Window model.BatchWindow
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch blocks %s: %v", e.Window, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Result is the ordered list of owned records found by a scan: ascending
// block height, then extraction order within a block.
type Result []model.RecordEntry

// Narrow keeps the records whose block height lies in heights. Scans cover
// whole aligned windows, so callers that need the exact range filter with it.
func Narrow(result Result, heights model.HeightRange) Result {
	narrowed := make(Result, 0, len(result))
	for _, entry := range result {
		if heights.Contains(entry.BlockHeight) {
			narrowed = append(narrowed, entry)
		}
	}
	return narrowed
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithExtractor replaces the record extractor.
func WithExtractor(extractor RecordExtractor) Option {
	return func(s *Scanner) {
		s.extractor = extractor
	}
}

// WithCredentialParser replaces how key text becomes a credential.
func WithCredentialParser(parse func(string) (Credential, error)) Option {
	return func(s *Scanner) {
		s.parse = parse
	}
}

// WithBatchSize overrides the window width. It must not exceed what the
// fetcher serves in one call.
func WithBatchSize(size uint32) Option {
	return func(s *Scanner) {
		s.batchSize = size
	}
}

// Scanner pages through aligned height windows and filters records by
// ownership. It holds no per-scan state and is safe for concurrent use.
type Scanner struct {
	fetcher   BlockFetcher
	extractor RecordExtractor
	parse     func(string) (Credential, error)
	batchSize uint32
	metrics   Metrics
	logger    *zap.Logger
}

// NewScanner constructs a Scanner reading blocks from fetcher.
func NewScanner(fetcher BlockFetcher, metrics Metrics, logger *zap.Logger, opts ...Option) (*Scanner, error) {
	if fetcher == nil {
		return nil, errors.New("block fetcher is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scanner{
		fetcher:   fetcher,
		extractor: blockRecordExtractor{},
		parse:     parseCredential,
		batchSize: model.MaxBlocksPerRequest,
		metrics:   metrics,
		logger:    logger.Named("scanner"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.batchSize == 0 {
		return nil, ErrInvalidBatchSize
	}
	return s, nil
}

// Scan converts key into a viewing credential and scans heights with it.
func (s *Scanner) Scan(ctx context.Context, key string, heights model.HeightRange) (Result, error) {
	cred, err := s.parse(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	return s.ScanCredential(ctx, cred, heights)
}

// ScanCredential returns the records owned by cred in the blocks of every
// aligned window covering heights. The result may include records from
// outside heights (see AlignUp); use Narrow for the exact range.
//
// Windows are fetched one at a time. ctx is checked between windows only; a
// window that has started is always finished, and a canceled scan returns
// the context error. Any failure discards the records collected so far.
func (s *Scanner) ScanCredential(ctx context.Context, cred Credential, heights model.HeightRange) (result Result, err error) {
	started := time.Now()
	windows, err := Windows(heights, s.batchSize)
	if err != nil {
		return nil, err
	}
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveScan(err, windows.Len(), started)
		}
	}()

	coordinate := cred.AddressCoordinate()

	for window := range windows.All() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scan stopped before %s: %w", window, err)
		}
		found, err := s.scanWindow(context.WithoutCancel(ctx), cred, coordinate, window)
		if err != nil {
			return nil, err
		}
		result = append(result, found...)
	}

	s.logger.Info("scan completed",
		zap.Stringer("heights", heights),
		zap.Int("windows", windows.Len()),
		zap.Int("records", len(result)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return result, nil
}

func (s *Scanner) scanWindow(ctx context.Context, cred Credential, coordinate account.Coordinate, window model.BatchWindow) (found Result, err error) {
	started := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveWindow(err, len(found), started)
		}
	}()

	blocks, err := s.fetcher.GetBlocks(ctx, window.Start, window.End)
	if err != nil {
		return nil, &FetchError{Window: window, Err: err}
	}

	for _, block := range blocks {
		for _, entry := range s.extractor.Extract(block) {
			if cred.IsOwner(entry.Record, coordinate) {
				found = append(found, entry)
			}
		}
	}

	s.logger.Debug("window scanned",
		zap.Stringer("window", window),
		zap.Int("blocks", len(blocks)),
		zap.Int("records", len(found)),
	)
	return found, nil
}

type blockRecordExtractor struct{}

func (blockRecordExtractor) Extract(block model.Block) []model.RecordEntry {
	return block.Records()
}

func parseCredential(key string) (Credential, error) {
	cred, err := record.ParseCredential(key)
	if err != nil {
		return nil, err
	}
	return cred, nil
}
