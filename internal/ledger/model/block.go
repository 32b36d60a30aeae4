// Package model defines domain models for ledger scanning.
package model

import (
	"time"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/record"
)

// OutputType describes what a transition output carries.
type OutputType string

var (
	// OutputRecord marks an output holding an encrypted record.
	OutputRecord OutputType = "record"
	// OutputPublic marks a plaintext public output.
	OutputPublic OutputType = "public"
	// OutputPrivate marks an encrypted non-record output.
	OutputPrivate OutputType = "private"
)

// Block is a ledger block as returned by the node.
type Block struct {
	Height       uint32
	Hash         string
	PreviousHash string
	Timestamp    time.Time
	Transactions []Transaction
}

// Transaction groups the transitions executed together.
type Transaction struct {
	ID          string
	Type        string
	Transitions []Transition
}

// Transition is a single program function call and its outputs.
type Transition struct {
	ID       string
	Program  string
	Function string
	Outputs  []Output
}

// Output is a transition output. Record is set only for OutputRecord.
type Output struct {
	Type   OutputType
	ID     record.Field
	Value  string
	Record *record.Ciphertext
}

// RecordEntry pairs a record with its commitment and the height of the
// block that carried it.
type RecordEntry struct {
	Commitment  record.Field
	Record      record.Ciphertext
	BlockHeight uint32
}

// Records extracts the record outputs of the block in transaction,
// transition and output order.
func (b Block) Records() []RecordEntry {
	var entries []RecordEntry
	for _, tx := range b.Transactions {
		for _, transition := range tx.Transitions {
			for _, output := range transition.Outputs {
				if output.Type != OutputRecord || output.Record == nil {
					continue
				}
				entries = append(entries, RecordEntry{
					Commitment:  output.ID,
					Record:      *output.Record,
					BlockHeight: b.Height,
				})
			}
		}
	}
	return entries
}
