// Package transport exposes the HTTP handlers.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/scanner"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/service"
)

const (
	maxRequestBytes = 1 << 20

	// statusClientClosedRequest is reported when the caller went away
	// before the scan finished.
	statusClientClosedRequest = 499
)

// ErrRangeTooWide is returned for a request spanning more heights than the
// handler allows.
var ErrRangeTooWide = errors.New("height range too wide")

type scanRequest struct {
	Keys  []string `json:"keys"`
	Start uint32   `json:"start"`
	End   uint32   `json:"end"`
	Exact bool     `json:"exact"`
}

type scanResponse struct {
	Results []keyResultJSON `json:"results"`
}

type keyResultJSON struct {
	Address string       `json:"address"`
	Records []recordJSON `json:"records"`
}

type recordJSON struct {
	Commitment  string `json:"commitment"`
	BlockHeight uint32 `json:"block_height"`
	Record      string `json:"record"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ScanLimits bounds the work a single request may cause. Zero values
// disable a limit.
type ScanLimits struct {
	// MaxHeights is the widest end-start a request may ask for.
	MaxHeights uint32
	// Timeout bounds a whole request; a scan past it stops at the next window.
	Timeout time.Duration
}

// ScanHandler serves scan requests over HTTP.
type ScanHandler struct {
	scanner KeyScanner
	limits  ScanLimits
	logger  *zap.Logger
}

// NewScanHandler returns a ScanHandler backed by keyScanner.
func NewScanHandler(keyScanner KeyScanner, limits ScanLimits, logger *zap.Logger) *ScanHandler {
	return &ScanHandler{
		scanner: keyScanner,
		limits:  limits,
		logger:  logger.Named("scan_handler"),
	}
}

// Register mounts the handler routes on mux.
func (h *ScanHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/scan", h.Scan)
	mux.HandleFunc("GET /v1/health", h.Health)
}

// Scan runs one scan for every key in the request body.
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	heights := model.HeightRange{Start: req.Start, End: req.End}
	if limit := h.limits.MaxHeights; limit > 0 && heights.End > heights.Start && heights.End-heights.Start > limit {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %s spans more than %d heights", ErrRangeTooWide, heights, limit))
		return
	}

	ctx := r.Context()
	if h.limits.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.limits.Timeout)
		defer cancel()
	}

	results, err := h.scanner.ScanKeys(ctx, req.Keys, heights, req.Exact)
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}

	resp := scanResponse{Results: make([]keyResultJSON, 0, len(results))}
	for _, res := range results {
		out := keyResultJSON{Address: res.Address, Records: make([]recordJSON, 0, len(res.Records))}
		for _, entry := range res.Records {
			text, err := entry.Record.Text()
			if err != nil {
				h.writeError(w, http.StatusInternalServerError, err)
				return
			}
			out.Records = append(out.Records, recordJSON{
				Commitment:  entry.Commitment.String(),
				BlockHeight: entry.BlockHeight,
				Record:      text,
			})
		}
		resp.Results = append(resp.Results, out)
	}

	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Health reports server health.
func (h *ScanHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"}, h.logger)
}

func statusFor(err error) int {
	var fetchErr *scanner.FetchError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	case errors.Is(err, scanner.ErrInvalidCredential),
		errors.Is(err, service.ErrNoKeys),
		errors.Is(err, scanner.ErrHeightOverflow):
		return http.StatusBadRequest
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *ScanHandler) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("scan request failed", zap.Int("status", status), zap.Error(err))
	} else {
		h.logger.Debug("scan request rejected", zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()}, h.logger)
}

func writeJSON(w http.ResponseWriter, status int, body any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("write response", zap.Error(err))
	}
}
