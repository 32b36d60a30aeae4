package node

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/record"
	"github.com/goodnatureofminers/ledgerscan/pkg/safe"
)

func convertBlock(raw blockJSON) (model.Block, error) {
	height, err := safe.Uint32(raw.Header.Metadata.Height)
	if err != nil {
		return model.Block{}, fmt.Errorf("block height: %w", err)
	}

	txs := make([]model.Transaction, 0, len(raw.Transactions))
	for _, confirmed := range raw.Transactions {
		tx, err := convertTransaction(confirmed.Transaction)
		if err != nil {
			return model.Block{}, fmt.Errorf("block %d: %w", height, err)
		}
		txs = append(txs, tx)
	}

	return model.Block{
		Height:       height,
		Hash:         raw.BlockHash,
		PreviousHash: raw.PreviousHash,
		Timestamp:    time.Unix(raw.Header.Metadata.Timestamp, 0).UTC(),
		Transactions: txs,
	}, nil
}

func convertTransaction(raw transactionJSON) (model.Transaction, error) {
	tx := model.Transaction{ID: raw.ID, Type: raw.Type}
	if raw.Execution == nil {
		return tx, nil
	}

	tx.Transitions = make([]model.Transition, 0, len(raw.Execution.Transitions))
	for _, rawTransition := range raw.Execution.Transitions {
		transition, err := convertTransition(rawTransition)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("transaction %s: %w", raw.ID, err)
		}
		tx.Transitions = append(tx.Transitions, transition)
	}
	return tx, nil
}

func convertTransition(raw transitionJSON) (model.Transition, error) {
	outputs := make([]model.Output, 0, len(raw.Outputs))
	for i, rawOutput := range raw.Outputs {
		output, err := convertOutput(rawOutput)
		if err != nil {
			return model.Transition{}, fmt.Errorf("transition %s output %d: %w", raw.ID, i, err)
		}
		outputs = append(outputs, output)
	}
	return model.Transition{
		ID:       raw.ID,
		Program:  raw.Program,
		Function: raw.Function,
		Outputs:  outputs,
	}, nil
}

func convertOutput(raw outputJSON) (model.Output, error) {
	id, err := record.ParseField(raw.ID)
	if err != nil {
		return model.Output{}, err
	}
	output := model.Output{Type: model.OutputType(raw.Type), ID: id}
	if output.Type != model.OutputRecord {
		output.Value = raw.Value
		return output, nil
	}

	ct, err := record.ParseCiphertext(raw.Value)
	if err != nil {
		return model.Output{}, err
	}
	commitment, err := ct.Commitment()
	if err != nil {
		return model.Output{}, err
	}
	if commitment != id {
		return model.Output{}, fmt.Errorf("record commitment %s does not match output id %s", commitment, id)
	}
	output.Record = &ct
	return output, nil
}
