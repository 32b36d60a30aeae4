package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
)

var (
	scanServiceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledgerscan",
		Subsystem: "scan_service",
		Name:      "requests_total",
		Help:      "Count of multi-key scan requests.",
	}, []string{"network", "status"})

	scanServiceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledgerscan",
		Subsystem: "scan_service",
		Name:      "request_duration_seconds",
		Help:      "Duration of multi-key scan requests.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"network", "status"})

	scanServiceKeys = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledgerscan",
		Subsystem: "scan_service",
		Name:      "request_keys",
		Help:      "Number of keys per scan request.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1..128
	}, []string{"network"})
)

// ScanService tracks metrics for multi-key scan requests.
type ScanService struct {
	network model.Network
}

// NewScanService constructs a ScanService metrics collector.
func NewScanService(network model.Network) *ScanService {
	if network == "" {
		network = "unknown"
	}
	return &ScanService{network: network}
}

// ObserveScanKeys records one request covering keys credentials.
func (m ScanService) ObserveScanKeys(err error, keys int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scanServiceRequestsTotal.WithLabelValues(string(m.network), status).Inc()
	scanServiceRequestDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	scanServiceKeys.WithLabelValues(string(m.network)).Observe(float64(keys))
}
