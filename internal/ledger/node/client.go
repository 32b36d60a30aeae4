// Package node is an HTTP client for the ledger node API.
package node

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/record"
)

const maxErrorBody = 512

var (
	// ErrInvalidHeightRange is returned by GetBlocks when start >= end.
	ErrInvalidHeightRange = errors.New("start height must be less than end height")
	// ErrTooManyBlocks is returned by GetBlocks for pages wider than model.MaxBlocksPerRequest.
	ErrTooManyBlocks = fmt.Errorf("cannot request more than %d blocks at a time", model.MaxBlocksPerRequest)
	// ErrInvalidProgramID is returned by GetProgram before any request is made.
	ErrInvalidProgramID = errors.New("invalid program ID")

	programIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*\.aleo$`)
)

// StatusError is returned when the node answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("node responded %d: %s", e.StatusCode, e.Body)
}

// Client talks to a single ledger node for one network.
type Client struct {
	http    HTTPDoer
	baseURL string
	network model.Network
	rl      ratelimit.Limiter
	metrics Metrics
}

// NewClient constructs a Client. rps <= 0 disables pacing.
func NewClient(httpClient HTTPDoer, rawURL string, network model.Network, rps int, metrics Metrics) (*Client, error) {
	if httpClient == nil {
		return nil, errors.New("http client is required")
	}
	if network == "" {
		return nil, errors.New("network is required")
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse node url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("node url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("node url missing host")
	}

	rl := ratelimit.NewUnlimited()
	if rps > 0 {
		rl = ratelimit.New(rps)
	}

	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(parsed.String(), "/"),
		network: network,
		rl:      rl,
		metrics: metrics,
	}, nil
}

// Network returns the network the client queries.
func (c *Client) Network() model.Network {
	return c.network
}

// LatestHeight returns the height of the chain tip.
func (c *Client) LatestHeight(ctx context.Context) (height uint32, err error) {
	defer c.observe("latest_height", &err, time.Now())

	if err := c.get(ctx, "latest/height", nil, &height); err != nil {
		return 0, fmt.Errorf("failed to parse the latest block height: %w", err)
	}
	return height, nil
}

// LatestHash returns the hash of the chain tip.
func (c *Client) LatestHash(ctx context.Context) (hash string, err error) {
	defer c.observe("latest_hash", &err, time.Now())

	if err := c.get(ctx, "latest/hash", nil, &hash); err != nil {
		return "", fmt.Errorf("failed to parse the latest block hash: %w", err)
	}
	return hash, nil
}

// LatestBlock returns the chain tip.
func (c *Client) LatestBlock(ctx context.Context) (block model.Block, err error) {
	defer c.observe("latest_block", &err, time.Now())

	var raw blockJSON
	if err := c.get(ctx, "latest/block", nil, &raw); err != nil {
		return model.Block{}, fmt.Errorf("failed to parse the latest block: %w", err)
	}
	block, err = convertBlock(raw)
	if err != nil {
		return model.Block{}, fmt.Errorf("failed to parse the latest block: %w", err)
	}
	return block, nil
}

// GetBlock returns the block at height.
func (c *Client) GetBlock(ctx context.Context, height uint32) (block model.Block, err error) {
	defer c.observe("get_block", &err, time.Now())

	var raw blockJSON
	if err := c.get(ctx, "block/"+strconv.FormatUint(uint64(height), 10), nil, &raw); err != nil {
		return model.Block{}, fmt.Errorf("failed to parse block %d: %w", height, err)
	}
	block, err = convertBlock(raw)
	if err != nil {
		return model.Block{}, fmt.Errorf("failed to parse block %d: %w", height, err)
	}
	return block, nil
}

// GetBlocks returns the blocks in [start, end). The page may not be empty and
// may not be wider than model.MaxBlocksPerRequest; both are checked before any
// request is made.
func (c *Client) GetBlocks(ctx context.Context, start, end uint32) (blocks []model.Block, err error) {
	defer c.observe("get_blocks", &err, time.Now())

	if start >= end {
		return nil, ErrInvalidHeightRange
	}
	if end-start > model.MaxBlocksPerRequest {
		return nil, ErrTooManyBlocks
	}

	query := url.Values{}
	query.Set("start", strconv.FormatUint(uint64(start), 10))
	query.Set("end", strconv.FormatUint(uint64(end), 10))

	var raw []blockJSON
	if err := c.get(ctx, "blocks", query, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse blocks %d (inclusive) to %d (exclusive): %w", start, end, err)
	}
	blocks = make([]model.Block, 0, len(raw))
	for _, rawBlock := range raw {
		block, err := convertBlock(rawBlock)
		if err != nil {
			return nil, fmt.Errorf("failed to parse blocks %d (inclusive) to %d (exclusive): %w", start, end, err)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// GetTransaction returns a confirmed transaction by id.
func (c *Client) GetTransaction(ctx context.Context, id string) (tx model.Transaction, err error) {
	defer c.observe("get_transaction", &err, time.Now())

	var raw transactionJSON
	if err := c.get(ctx, "transaction/"+url.PathEscape(id), nil, &raw); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse transaction '%s': %w", id, err)
	}
	tx, err = convertTransaction(raw)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse transaction '%s': %w", id, err)
	}
	return tx, nil
}

// GetMemoryPoolTransactions returns the unconfirmed transactions known to the node.
func (c *Client) GetMemoryPoolTransactions(ctx context.Context) (txs []model.Transaction, err error) {
	defer c.observe("get_memory_pool_transactions", &err, time.Now())

	var raw []transactionJSON
	if err := c.get(ctx, "memoryPool/transactions", nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse memory pool transactions: %w", err)
	}
	txs = make([]model.Transaction, 0, len(raw))
	for _, rawTx := range raw {
		tx, err := convertTransaction(rawTx)
		if err != nil {
			return nil, fmt.Errorf("failed to parse memory pool transactions: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// GetProgram returns the source of a deployed program.
func (c *Client) GetProgram(ctx context.Context, programID string) (program string, err error) {
	defer c.observe("get_program", &err, time.Now())

	if !programIDPattern.MatchString(programID) {
		return "", ErrInvalidProgramID
	}
	if err := c.get(ctx, "program/"+programID, nil, &program); err != nil {
		return "", fmt.Errorf("failed to parse program %s: %w", programID, err)
	}
	return program, nil
}

// FindBlockHash returns the hash of the block holding the transaction.
func (c *Client) FindBlockHash(ctx context.Context, txID string) (hash string, err error) {
	defer c.observe("find_block_hash", &err, time.Now())

	if err := c.get(ctx, "find/blockHash/"+url.PathEscape(txID), nil, &hash); err != nil {
		return "", fmt.Errorf("failed to parse block hash: %w", err)
	}
	return hash, nil
}

// FindTransitionID returns the id of the transition that consumed or produced id.
func (c *Client) FindTransitionID(ctx context.Context, id record.Field) (transitionID string, err error) {
	defer c.observe("find_transition_id", &err, time.Now())

	if err := c.get(ctx, "find/transitionID/"+id.String(), nil, &transitionID); err != nil {
		return "", fmt.Errorf("failed to parse transition ID: %w", err)
	}
	return transitionID, nil
}

// TransactionBroadcast submits a transaction and returns the id the node
// accepted it under.
func (c *Client) TransactionBroadcast(ctx context.Context, tx json.RawMessage) (id string, err error) {
	defer c.observe("transaction_broadcast", &err, time.Now())

	if !json.Valid(tx) {
		return "", errors.New("transaction is not valid json")
	}
	req, err := c.newRequest(ctx, http.MethodPost, "transaction/broadcast", nil, bytes.NewReader(tx))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if err := c.do(req, &id); err != nil {
		return "", fmt.Errorf("failed to parse broadcast response: %w", err)
	}
	return id, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	target := c.baseURL + "/" + string(c.network) + "/" + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	c.rl.Take()

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) observe(operation string, err *error, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.Observe(operation, *err, started)
}
