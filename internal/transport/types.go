package transport

import (
	"context"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	KeyScanner interface {
		ScanKeys(ctx context.Context, keys []string, heights model.HeightRange, exact bool) ([]service.KeyResult, error)
	}

	RecordLister interface {
		OwnedRecords(ctx context.Context, network model.Network, owner string) ([]model.OwnedRecord, error)
	}
)
