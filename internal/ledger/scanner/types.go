package scanner

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/account"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/record"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockFetcher returns the blocks in [start, end). Implementations reject
	// start >= end and pages wider than model.MaxBlocksPerRequest.
	BlockFetcher interface {
		GetBlocks(ctx context.Context, start, end uint32) ([]model.Block, error)
	}

	// RecordExtractor lists the records of a block in order.
	RecordExtractor interface {
		Extract(block model.Block) []model.RecordEntry
	}

	// Credential is the part of a viewing credential the scanner needs.
	Credential interface {
		AddressCoordinate() account.Coordinate
		IsOwner(rec record.Ciphertext, coordinate account.Coordinate) bool
	}

	// Metrics records scan progress.
	Metrics interface {
		ObserveWindow(err error, records int, started time.Time)
		ObserveScan(err error, windows int, started time.Time)
	}
)
