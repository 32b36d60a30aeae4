package node

// JSON shapes served by the ledger node.

type blockJSON struct {
	BlockHash    string                `json:"block_hash"`
	PreviousHash string                `json:"previous_hash"`
	Header       headerJSON            `json:"header"`
	Transactions []confirmedTransaction `json:"transactions"`
}

type headerJSON struct {
	Metadata metadataJSON `json:"metadata"`
}

type metadataJSON struct {
	Height    int64 `json:"height"`
	Timestamp int64 `json:"timestamp"`
}

type confirmedTransaction struct {
	Status      string          `json:"status"`
	Type        string          `json:"type"`
	Index       int64           `json:"index"`
	Transaction transactionJSON `json:"transaction"`
}

type transactionJSON struct {
	Type      string         `json:"type"`
	ID        string         `json:"id"`
	Execution *executionJSON `json:"execution,omitempty"`
}

type executionJSON struct {
	Transitions []transitionJSON `json:"transitions"`
}

type transitionJSON struct {
	ID       string       `json:"id"`
	Program  string       `json:"program"`
	Function string       `json:"function"`
	Outputs  []outputJSON `json:"outputs"`
}

type outputJSON struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Value string `json:"value"`
}
