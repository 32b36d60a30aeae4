package model

import "time"

type Network string

var (
	Testnet3 Network = "testnet3"
	Mainnet  Network = "mainnet"
)

// OwnedRecord is a record found by a scan, as persisted to ClickHouse.
type OwnedRecord struct {
	Network     Network
	Owner       string
	Commitment  string
	BlockHeight uint32
	Record      string
	ScannedAt   time.Time
}
