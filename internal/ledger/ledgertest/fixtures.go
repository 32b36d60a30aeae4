// Package ledgertest builds deterministic keys, records and blocks for tests.
package ledgertest

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/account"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/record"
)

// PrivateKey returns the key whose seed is fill repeated.
func PrivateKey(tb testing.TB, fill byte) account.PrivateKey {
	tb.Helper()
	pk, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{fill}, account.SeedSize))
	require.NoError(tb, err)
	return pk
}

// Record seals gates for owner using randomness derived from fill and
// returns it with its commitment.
func Record(tb testing.TB, owner account.Address, gates uint64, fill byte) (record.Field, record.Ciphertext) {
	tb.Helper()
	ct, err := record.Encrypt(owner, gates, bytes.NewReader(bytes.Repeat([]byte{fill}, 64)))
	require.NoError(tb, err)
	commitment, err := ct.Commitment()
	require.NoError(tb, err)
	return commitment, ct
}

// RecordOutput wraps a record into a transition output.
func RecordOutput(commitment record.Field, ct record.Ciphertext) model.Output {
	return model.Output{Type: model.OutputRecord, ID: commitment, Record: &ct}
}

// Block builds a block at height with one execute transaction per output group.
func Block(height uint32, outputs ...[]model.Output) model.Block {
	block := model.Block{
		Height:    height,
		Timestamp: time.Unix(1_700_000_000+int64(height), 0).UTC(),
	}
	for i, group := range outputs {
		block.Transactions = append(block.Transactions, model.Transaction{
			ID:   fmt.Sprintf("at%d_%d", height, i),
			Type: "execute",
			Transitions: []model.Transition{{
				ID:       fmt.Sprintf("au%d_%d", height, i),
				Program:  "credits.aleo",
				Function: "transfer",
				Outputs:  group,
			}},
		})
	}
	return block
}
