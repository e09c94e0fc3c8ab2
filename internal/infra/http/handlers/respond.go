package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/udaanx/coldflow/internal/usecase"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeUseCaseError maps the error taxonomy onto HTTP statuses.
func writeUseCaseError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch usecase.ErrorCode(err) {
	case usecase.CodeConfigMissing:
		status = http.StatusUnprocessableEntity
	case usecase.CodeBatchNotFound:
		status = http.StatusNotFound
	case usecase.CodeAlreadySent:
		status = http.StatusConflict
	case usecase.CodeRemoteRejected:
		status = http.StatusBadGateway
	case usecase.CodeNetworkUnreachable:
		status = http.StatusGatewayTimeout
	}

	writeJSON(w, status, errorResponse{
		Success: false,
		Code:    usecase.ErrorCode(err),
		Message: err.Error(),
	})
}
