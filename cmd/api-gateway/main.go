package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/node"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/repository/clickhouse"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/scanner"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/service"
	"github.com/goodnatureofminers/ledgerscan/internal/metrics"
	"github.com/goodnatureofminers/ledgerscan/internal/transport"
)

type config struct {
	Addr          string        `long:"addr" env:"LEDGERSCAN_API_ADDR" description:"addr" default:":8001"`
	NodeURL       string        `long:"node-url" env:"LEDGERSCAN_NODE_URL" description:"ledger node API URL" default:"https://api.explorer.aleo.org/v1"`
	Network       model.Network `long:"network" env:"LEDGERSCAN_NETWORK" description:"network name" default:"testnet3"`
	Workers       int           `long:"workers" env:"LEDGERSCAN_WORKERS" description:"keys scanned concurrently per request" default:"4"`
	RPS           int           `long:"rps" env:"LEDGERSCAN_RPS" description:"node requests per second, 0 for unlimited" default:"10"`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"LEDGERSCAN_HTTP_TIMEOUT" description:"HTTP timeout for node requests" default:"30s"`
	WriteTimeout  time.Duration `long:"write-timeout" env:"LEDGERSCAN_API_WRITE_TIMEOUT" description:"response write timeout, keep above scan-timeout" default:"5m"`
	ScanTimeout   time.Duration `long:"scan-timeout" env:"LEDGERSCAN_API_SCAN_TIMEOUT" description:"deadline for one scan request, 0 for none" default:"4m"`
	MaxHeights    uint32        `long:"max-scan-heights" env:"LEDGERSCAN_API_MAX_SCAN_HEIGHTS" description:"widest height range one request may scan, 0 for unlimited" default:"100000"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"LEDGERSCAN_CLICKHOUSE_DSN" description:"ClickHouse DSN, found records are exported when set"`
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
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(zap.String("network", string(cfg.Network)))

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

	rangeScanner, err := scanner.NewScanner(client, metrics.NewScanner(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init scanner: %w", err)
	}

	mux := http.NewServeMux()

	var writer service.RecordWriter
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("failed to close repository", zap.Error(err))
			}
		}()
		batchWriter := service.NewBatchWriter(repo, logger)
		batchWriter.Start(ctx)
		defer func() {
			if err := batchWriter.Stop(); err != nil {
				logger.Error("records not exported", zap.Error(err))
			}
		}()
		writer = batchWriter
		transport.NewRecordsHandler(repo, cfg.Network, logger).Register(mux)
	}

	svc, err := service.NewScanService(rangeScanner, cfg.Network, cfg.Workers, writer, metrics.NewScanService(cfg.Network), logger)
	if err != nil {
		return err
	}

	limits := transport.ScanLimits{MaxHeights: cfg.MaxHeights, Timeout: cfg.ScanTimeout}
	transport.NewScanHandler(svc, limits, logger).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
