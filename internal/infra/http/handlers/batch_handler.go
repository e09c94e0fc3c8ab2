package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/udaanx/coldflow/internal/entity"
	"github.com/udaanx/coldflow/internal/infra/http/middleware"
	"github.com/udaanx/coldflow/internal/usecase"
)

type BatchHandler struct {
	Batches  entity.BatchRepositoryInterface
	Importer *usecase.ImportBatchUseCase
	Sender   *usecase.SendBatchUseCase
}

func NewBatchHandler(
	batches entity.BatchRepositoryInterface,
	importer *usecase.ImportBatchUseCase,
	sender *usecase.SendBatchUseCase,
) *BatchHandler {
	return &BatchHandler{
		Batches:  batches,
		Importer: importer,
		Sender:   sender,
	}
}

// ImportRequest carries one raw lead file from the dashboard.
type ImportRequest struct {
	Filename string `json:"filename"`
	Data     string `json:"data"`
}

func (h *BatchHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	batches, err := h.Batches.All(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, batches)
}

// HandlePreview stages an import without persisting anything, so the
// dashboard can show lead and drop counts before the operator commits.
func (h *BatchHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.Importer.Stage(req.Filename, req.Data))
}

func (h *BatchHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	staged := h.Importer.Stage(req.Filename, req.Data)
	batch, err := h.Importer.Commit(r.Context(), staged)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordImport(len(batch.Leads))
	writeJSON(w, http.StatusCreated, batch)
}

func (h *BatchHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchId")

	batch, err := h.Sender.Execute(r.Context(), batchID)
	if err != nil {
		middleware.RecordTransmission(transmissionResult(err))
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordTransmission("ok")
	writeJSON(w, http.StatusOK, batch)
}

func transmissionResult(err error) string {
	switch usecase.ErrorCode(err) {
	case usecase.CodeRemoteRejected:
		return "rejected"
	case usecase.CodeNetworkUnreachable:
		return "network_error"
	case usecase.CodeConfigMissing:
		return "not_configured"
	default:
		return "error"
	}
}
