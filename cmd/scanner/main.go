// Package main scans a range of ledger heights for the records owned by one
// or more keys and prints them as JSON lines.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/account"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/node"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/record"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/repository/clickhouse"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/scanner"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/service"
	"github.com/goodnatureofminers/ledgerscan/internal/metrics"
)

type config struct {
	NodeURL       string        `long:"node-url" env:"LEDGERSCAN_NODE_URL" description:"ledger node API URL" default:"https://api.explorer.aleo.org/v1"`
	Network       model.Network `long:"network" env:"LEDGERSCAN_NETWORK" description:"network name" default:"testnet3"`
	Keys          []string      `long:"key" env:"LEDGERSCAN_KEYS" env-delim:"," description:"private key or view key, repeatable" required:"true"`
	Start         uint32        `long:"start" env:"LEDGERSCAN_START" description:"first height to scan"`
	End           uint32        `long:"end" env:"LEDGERSCAN_END" description:"height to stop before, 0 for the node's latest height"`
	Exact         bool          `long:"exact" env:"LEDGERSCAN_EXACT" description:"drop records outside [start, end)"`
	Decrypt       bool          `long:"decrypt" env:"LEDGERSCAN_DECRYPT" description:"print decrypted records"`
	Wait          bool          `long:"wait" env:"LEDGERSCAN_WAIT" description:"wait until the node reaches end before scanning"`
	PollInterval  time.Duration `long:"poll-interval" env:"LEDGERSCAN_POLL_INTERVAL" description:"latest height poll interval used with --wait" default:"10s"`
	Workers       int           `long:"workers" env:"LEDGERSCAN_WORKERS" description:"keys scanned concurrently" default:"4"`
	RPS           int           `long:"rps" env:"LEDGERSCAN_RPS" description:"node requests per second, 0 for unlimited" default:"10"`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"LEDGERSCAN_HTTP_TIMEOUT" description:"HTTP timeout for node requests" default:"30s"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"LEDGERSCAN_CLICKHOUSE_DSN" description:"ClickHouse DSN, found records are exported when set"`
	MetricsAddr   string        `long:"metrics-addr" env:"LEDGERSCAN_METRICS_ADDR" description:"address for metrics server, empty to disable"`
}

type recordLine struct {
	Address     string `json:"address"`
	Commitment  string `json:"commitment"`
	BlockHeight uint32 `json:"block_height"`
	Record      string `json:"record"`
	Gates       uint64 `json:"gates,omitempty"`
	Nonce       string `json:"nonce,omitempty"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Fatal("ledger scan failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, out io.Writer, logger *zap.Logger) (err error) {
	logger = logger.With(zap.String("network", string(cfg.Network)))
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	viewKeys, err := viewKeysByAddress(cfg.Keys)
	if err != nil {
		return err
	}

	client, err := node.NewClient(
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.NodeURL,
		cfg.Network,
		cfg.RPS,
		metrics.NewNodeClient(cfg.Network),
	)
	if err != nil {
		return fmt.Errorf("init node client: %w", err)
	}

	heights, err := resolveHeights(ctx, cfg, client, logger)
	if err != nil {
		return err
	}

	rangeScanner, err := scanner.NewScanner(client, metrics.NewScanner(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init scanner: %w", err)
	}

	var writer service.RecordWriter
	if cfg.ClickhouseDSN != "" {
		repo, repoErr := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if repoErr != nil {
			return fmt.Errorf("init repository: %w", repoErr)
		}
		defer func() {
			if closeErr := repo.Close(); closeErr != nil {
				logger.Warn("failed to close repository", zap.Error(closeErr))
			}
		}()
		batchWriter := service.NewBatchWriter(repo, logger)
		batchWriter.Start(ctx)
		defer func() {
			if stopErr := batchWriter.Stop(); stopErr != nil && err == nil {
				err = fmt.Errorf("export records: %w", stopErr)
			}
		}()
		writer = batchWriter
	}

	svc, err := service.NewScanService(rangeScanner, cfg.Network, cfg.Workers, writer, metrics.NewScanService(cfg.Network), logger)
	if err != nil {
		return err
	}

	results, err := svc.ScanKeys(ctx, cfg.Keys, heights, cfg.Exact)
	if err != nil {
		return err
	}
	return printResults(out, results, viewKeys, cfg.Decrypt)
}

// resolveHeights fills in a missing end from the node and, with --wait,
// blocks until the node has produced every requested height.
func resolveHeights(ctx context.Context, cfg config, client *node.Client, logger *zap.Logger) (model.HeightRange, error) {
	heights := model.HeightRange{Start: cfg.Start, End: cfg.End}
	if heights.End == 0 {
		latest, err := client.LatestHeight(ctx)
		if err != nil {
			return heights, fmt.Errorf("latest height: %w", err)
		}
		heights.End = latest + 1
		return heights, nil
	}

	if cfg.Wait {
		latest, err := service.WaitForHeight(ctx, client, heights.End-1, cfg.PollInterval, logger)
		if err != nil {
			return heights, err
		}
		logger.Info("node reached end height", zap.Uint32("latest", latest))
	}
	return heights, nil
}

func viewKeysByAddress(keys []string) (map[string]account.ViewKey, error) {
	viewKeys := make(map[string]account.ViewKey, len(keys))
	for i, key := range keys {
		cred, err := record.ParseCredential(key)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w: %w", i, scanner.ErrInvalidCredential, err)
		}
		viewKeys[cred.Address().String()] = cred.ViewKey()
	}
	return viewKeys, nil
}

func printResults(out io.Writer, results []service.KeyResult, viewKeys map[string]account.ViewKey, decrypt bool) error {
	enc := json.NewEncoder(out)
	for _, res := range results {
		for _, entry := range res.Records {
			text, err := entry.Record.Text()
			if err != nil {
				return fmt.Errorf("encode record %s: %w", entry.Commitment, err)
			}
			line := recordLine{
				Address:     res.Address,
				Commitment:  entry.Commitment.String(),
				BlockHeight: entry.BlockHeight,
				Record:      text,
			}
			if decrypt {
				plain, err := entry.Record.Decrypt(viewKeys[res.Address])
				if err != nil {
					return fmt.Errorf("decrypt record %s: %w", entry.Commitment, err)
				}
				line.Gates = plain.Gates
				line.Nonce = record.Field(plain.Nonce).String()
			}
			if err := enc.Encode(line); err != nil {
				return err
			}
		}
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
