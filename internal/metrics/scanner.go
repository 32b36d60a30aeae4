package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
)

var (
	scannerWindowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledgerscan",
		Subsystem: "scanner",
		Name:      "windows_total",
		Help:      "Count of scanned height windows.",
	}, []string{"network", "status"})

	scannerWindowDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledgerscan",
		Subsystem: "scanner",
		Name:      "window_duration_seconds",
		Help:      "Duration of fetching and filtering one height window.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scannerRecordsFound = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledgerscan",
		Subsystem: "scanner",
		Name:      "records_found_total",
		Help:      "Count of owned records found.",
	}, []string{"network"})

	scannerScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledgerscan",
		Subsystem: "scanner",
		Name:      "scans_total",
		Help:      "Count of range scans.",
	}, []string{"network", "status"})

	scannerScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledgerscan",
		Subsystem: "scanner",
		Name:      "scan_duration_seconds",
		Help:      "Duration of a whole range scan.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"network", "status"})

	scannerScanWindows = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledgerscan",
		Subsystem: "scanner",
		Name:      "scan_windows",
		Help:      "Number of windows per range scan.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16), // 1..32768
	}, []string{"network"})
)

// Scanner tracks metrics for range scans.
type Scanner struct {
	network model.Network
}

// NewScanner constructs a Scanner metrics collector.
func NewScanner(network model.Network) *Scanner {
	if network == "" {
		network = "unknown"
	}
	return &Scanner{network: network}
}

// ObserveWindow records one window outcome and the records it kept.
func (m Scanner) ObserveWindow(err error, records int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerWindowsTotal.WithLabelValues(string(m.network), status).Inc()
	scannerWindowDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	scannerRecordsFound.WithLabelValues(string(m.network)).Add(float64(records))
}

// ObserveScan records a whole scan.
func (m Scanner) ObserveScan(err error, windows int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerScansTotal.WithLabelValues(string(m.network), status).Inc()
	scannerScanDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	scannerScanWindows.WithLabelValues(string(m.network)).Observe(float64(windows))
}
