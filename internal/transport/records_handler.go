package transport

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/account"
	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
)

type ownedRecordsResponse struct {
	Owner   string            `json:"owner"`
	Records []ownedRecordJSON `json:"records"`
}

type ownedRecordJSON struct {
	Commitment  string    `json:"commitment"`
	BlockHeight uint32    `json:"block_height"`
	Record      string    `json:"record"`
	ScannedAt   time.Time `json:"scanned_at"`
}

// RecordsHandler serves records exported by earlier scans.
type RecordsHandler struct {
	lister  RecordLister
	network model.Network
	logger  *zap.Logger
}

func NewRecordsHandler(lister RecordLister, network model.Network, logger *zap.Logger) *RecordsHandler {
	return &RecordsHandler{
		lister:  lister,
		network: network,
		logger:  logger.Named("records_handler"),
	}
}

func (h *RecordsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/records/{owner}", h.OwnedRecords)
}

// OwnedRecords lists the stored records of the address in the path.
func (h *RecordsHandler) OwnedRecords(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	if _, err := account.ParseAddress(owner); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid owner address: %w", err))
		return
	}

	records, err := h.lister.OwnedRecords(r.Context(), h.network, owner)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := ownedRecordsResponse{Owner: owner, Records: make([]ownedRecordJSON, 0, len(records))}
	for _, rec := range records {
		resp.Records = append(resp.Records, ownedRecordJSON{
			Commitment:  rec.Commitment,
			BlockHeight: rec.BlockHeight,
			Record:      rec.Record,
			ScannedAt:   rec.ScannedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

func (h *RecordsHandler) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("records request failed", zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()}, h.logger)
}
