package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/scanner"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RangeScanner interface {
		ScanCredential(ctx context.Context, cred scanner.Credential, heights model.HeightRange) (scanner.Result, error)
	}

	HeightSource interface {
		LatestHeight(ctx context.Context) (uint32, error)
	}

	RecordWriter interface {
		WriteRecords(ctx context.Context, records []model.OwnedRecord) error
	}

	RecordStore interface {
		InsertRecords(ctx context.Context, records []model.OwnedRecord) error
	}
)

type (
	Metrics interface {
		ObserveScanKeys(err error, keys int, started time.Time)
	}
)
