package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/udaanx/coldflow/internal/entity"
)

// SendEmailHandler is a stub dispatch target: it acknowledges a batch
// the way the real mail worker would, without sending anything.
type SendEmailHandler struct{}

func NewSendEmailHandler() *SendEmailHandler {
	return &SendEmailHandler{}
}

type sendEmailRequest struct {
	Leads       []entity.Lead `json:"leads"`
	BatchID     string        `json:"batch_id"`
	Filename    string        `json:"filename"`
	Timestamp   string        `json:"timestamp"`
	SenderEmail string        `json:"sender_email"`
}

type sendEmailResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BatchID   string `json:"batch_id"`
	Timestamp string `json:"timestamp"`
}

func (h *SendEmailHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	log.Printf("📥 [SEND-EMAIL] batch=%s file=%s leads=%d", req.BatchID, req.Filename, len(req.Leads))

	writeJSON(w, http.StatusOK, sendEmailResponse{
		Success:   true,
		Message:   fmt.Sprintf("Batch received: %d leads", len(req.Leads)),
		BatchID:   req.BatchID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
